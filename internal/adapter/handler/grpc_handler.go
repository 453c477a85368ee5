package handler

import (
	"context"
	"errors"

	"github.com/dkaya/relief-ledger/internal/adapter/handler/pb"
	"github.com/dkaya/relief-ledger/internal/core/domain"
	"github.com/dkaya/relief-ledger/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedReliefServiceServer
	requests *service.RequestService
}

func NewGRPCHandler(requests *service.RequestService) *GRPCHandler {
	return &GRPCHandler{requests: requests}
}

func (h *GRPCHandler) SubmitRequest(ctx context.Context, req *pb.SubmitRequestRequest) (*pb.SubmitRequestResponse, error) {
	request, err := h.requests.Submit(ctx, service.SubmitInput{
		Type:         req.GetType(),
		Subtype:      req.GetSubtype(),
		Size:         req.GetSize(),
		Latitude:     req.GetLatitude(),
		Longitude:    req.GetLongitude(),
		Quantity:     int(req.GetQuantity()),
		TCKN:         req.GetTckn(),
		Notes:        req.GetNotes(),
		SpecificItem: req.GetSpecificItem(),
	})
	if err != nil {
		return &pb.SubmitRequestResponse{
			Success: false,
			Message: recoverableMessage(err),
		}, nil
	}

	return &pb.SubmitRequestResponse{
		Success:   true,
		Message:   "request submitted",
		RequestId: request.ID,
	}, nil
}

func (h *GRPCHandler) ResolveRequest(ctx context.Context, req *pb.ResolveRequestRequest) (*pb.ResolveRequestResponse, error) {
	session := domain.Session{Token: req.GetToken(), Role: req.GetRole()}

	_, _, err := h.requests.Resolve(ctx, session, req.GetRequestId(), req.GetDistrictId())
	if err != nil {
		return &pb.ResolveRequestResponse{
			Success: false,
			Message: recoverableMessage(err),
		}, nil
	}

	return &pb.ResolveRequestResponse{
		Success: true,
		Message: "request resolved",
	}, nil
}

// recoverableMessage surfaces the precise reason for the documented outcomes
// and hides everything else.
func recoverableMessage(err error) string {
	for _, known := range []error{
		domain.ErrInvalidSelection,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidTCKN,
		domain.ErrInsufficientStock,
		domain.ErrSameDistrict,
		domain.ErrUnknownDistrict,
		domain.ErrNotFound,
		domain.ErrAlreadyResolved,
		domain.ErrDuplicateRequest,
		domain.ErrForbidden,
	} {
		if errors.Is(err, known) {
			return err.Error()
		}
	}
	return "internal error"
}
