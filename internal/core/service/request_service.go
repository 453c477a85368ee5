package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/dkaya/relief-ledger/internal/core/catalog"
	"github.com/dkaya/relief-ledger/internal/core/domain"
	"github.com/dkaya/relief-ledger/internal/port"
)

var tcknPattern = regexp.MustCompile(`^[0-9]{11}$`)

// RequestService tracks citizen requests from submission to fulfillment. A
// request is resolved at most once: a cache guard rejects concurrent resolves
// early, and the status flip plus ledger debit commit as one transaction.
type RequestService struct {
	db        port.DatabaseRepository
	cache     port.CacheRepository
	inventory *InventoryService
}

func NewRequestService(db port.DatabaseRepository, cache port.CacheRepository, inventory *InventoryService) *RequestService {
	return &RequestService{db: db, cache: cache, inventory: inventory}
}

type SubmitInput struct {
	Type         string
	Subtype      string
	Size         string
	SpecificItem string
	Latitude     float64
	Longitude    float64
	Quantity     int
	TCKN         string
	Notes        string
}

// Submit stores a new pending request. The selection may still be partial at
// this point; completeness is enforced when stock is actually touched. The
// nearest district is recorded as advisory context for operators.
func (s *RequestService) Submit(ctx context.Context, in SubmitInput) (domain.Request, error) {
	if !catalog.KnownType(in.Type) {
		return domain.Request{}, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidSelection, in.Type)
	}
	if in.Subtype == "" {
		return domain.Request{}, fmt.Errorf("%w: subtype not selected", domain.ErrInvalidSelection)
	}
	if in.Quantity <= 0 {
		return domain.Request{}, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidQuantity, in.Quantity)
	}
	if in.TCKN != "" && !tcknPattern.MatchString(in.TCKN) {
		return domain.Request{}, domain.ErrInvalidTCKN
	}

	subtype := in.Subtype
	if in.Size != "" {
		subtype = in.Subtype + " " + in.Size
	} else if in.SpecificItem != "" {
		subtype = in.Subtype + " - " + in.SpecificItem
	}

	request := domain.Request{
		Type:      in.Type,
		Subtype:   subtype,
		Quantity:  in.Quantity,
		Priority:  domain.DefaultPriority(in.Type),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		TCKN:      in.TCKN,
		Notes:     in.Notes,
		Status:    domain.RequestStatusPending,
		Timestamp: time.Now(),
	}

	if districts, err := s.db.ListDistricts(ctx); err == nil {
		if id, ok := domain.ClosestDistrict(in.Latitude, in.Longitude, districts); ok {
			request.RelatedDistrict = id
		}
	} else {
		log.Printf("nearest district lookup failed: %v", err)
	}

	return s.db.CreateRequest(context.WithoutCancel(ctx), request)
}

func (s *RequestService) ListAll(ctx context.Context) ([]domain.Request, error) {
	return s.db.ListRequests(ctx)
}

func (s *RequestService) ListForDistrict(ctx context.Context, districtID int64) ([]domain.Request, error) {
	if _, err := s.db.GetDistrict(ctx, districtID); err != nil {
		return nil, err
	}
	return s.db.ListRequestsByDistrict(ctx, districtID)
}

func (s *RequestService) Get(ctx context.Context, id int64) (domain.Request, error) {
	return s.db.GetRequest(ctx, id)
}

// Resolve fulfills a pending request from the chosen district's stock. The
// ledger debit and the pending→resolved flip are atomic as a pair; on any
// failure the request stays pending and the ledger is untouched.
func (s *RequestService) Resolve(ctx context.Context, session domain.Session, requestID, districtID int64) (domain.Request, domain.Inventory, error) {
	if !session.CanResolveRequests() {
		return domain.Request{}, nil, domain.ErrForbidden
	}

	// Once started, the resolve runs to a definite outcome even if the
	// caller abandons the call.
	ctx = context.WithoutCancel(ctx)

	ok, err := s.cache.AcquireResolveGuard(ctx, requestID)
	if err != nil {
		return domain.Request{}, nil, fmt.Errorf("resolve guard: %w", err)
	}
	if !ok {
		// Either a concurrent resolve is in flight or an earlier one
		// succeeded; the stored status tells them apart.
		if request, getErr := s.db.GetRequest(ctx, requestID); getErr == nil && request.Status == domain.RequestStatusResolved {
			return domain.Request{}, nil, domain.ErrAlreadyResolved
		}
		return domain.Request{}, nil, domain.ErrDuplicateRequest
	}

	request, inventory, err := s.resolveLocked(ctx, requestID, districtID)
	if err != nil {
		// Failed resolves must stay retryable.
		if releaseErr := s.cache.ReleaseResolveGuard(ctx, requestID); releaseErr != nil {
			log.Printf("resolve guard release failed for request %d: %v", requestID, releaseErr)
		}
		return domain.Request{}, nil, err
	}

	return request, inventory, nil
}

func (s *RequestService) resolveLocked(ctx context.Context, requestID, districtID int64) (domain.Request, domain.Inventory, error) {
	request, err := s.db.GetRequest(ctx, requestID)
	if err != nil {
		return domain.Request{}, nil, err
	}
	if request.Status == domain.RequestStatusResolved {
		return domain.Request{}, nil, domain.ErrAlreadyResolved
	}

	itemKey, err := catalog.ResolveRequestKey(request.Type, request.Subtype)
	if err != nil {
		return domain.Request{}, nil, err
	}

	release := s.inventory.locks.acquire(districtID)
	defer release()

	resolved, inventory, err := s.db.ResolveRequest(ctx, requestID, districtID, itemKey, request.Quantity)
	if err != nil {
		return domain.Request{}, nil, err
	}

	s.inventory.syncSnapshot(ctx, districtID, inventory)
	return resolved, inventory, nil
}

// EscalatePriorities bumps the priority of pending requests by type-specific
// growth over whole hours pending. Returns how many rows changed.
func (s *RequestService) EscalatePriorities(ctx context.Context, now time.Time) (int, error) {
	pending, err := s.db.ListPendingRequests(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending requests: %w", err)
	}

	updated := 0
	for _, request := range pending {
		hours := int(now.Sub(request.Timestamp).Hours())
		increase := domain.PriorityIncrease(request.Type, hours)
		if increase == 0 {
			continue
		}
		err := s.db.UpdateRequestPriority(ctx, request.ID, domain.DefaultPriority(request.Type)+increase)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue // resolved underneath us
			}
			return updated, fmt.Errorf("escalate request %d: %w", request.ID, err)
		}
		updated++
	}
	return updated, nil
}
