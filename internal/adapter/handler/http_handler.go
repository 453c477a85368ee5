package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dkaya/relief-ledger/internal/core/domain"
	"github.com/dkaya/relief-ledger/internal/core/service"
)

type HTTPHandler struct {
	inventory *service.InventoryService
	requests  *service.RequestService
}

func NewHTTPHandler(inventory *service.InventoryService, requests *service.RequestService) *HTTPHandler {
	return &HTTPHandler{inventory: inventory, requests: requests}
}

type districtResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	Inventory    domain.Inventory `json:"inventory"`
	RequestCount int              `json:"request_count"`
}

type requestResponse struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	Subtype         string  `json:"subtype"`
	Quantity        int     `json:"quantity"`
	Priority        int     `json:"priority"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	TCKN            string  `json:"tckn,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	Status          string  `json:"status"`
	Timestamp       string  `json:"timestamp"`
	RelatedDistrict int64   `json:"related_district,omitempty"`
}

type submitRequestBody struct {
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	Size         string  `json:"size,omitempty"`
	SpecificItem string  `json:"specific_item,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Quantity     int     `json:"quantity"`
	TCKN         string  `json:"tckn,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type inventoryUpdateResponse struct {
	Message   string           `json:"message"`
	Inventory domain.Inventory `json:"inventory"`
}

type transferResponse struct {
	Message         string           `json:"message"`
	SourceInventory domain.Inventory `json:"source_inventory"`
	TargetInventory domain.Inventory `json:"target_inventory"`
}

func toDistrictResponse(d domain.District) districtResponse {
	inv := d.Inventory
	if inv == nil {
		inv = domain.Inventory{}
	}
	return districtResponse{
		ID:           d.ID,
		Name:         d.Name,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Inventory:    inv,
		RequestCount: d.RequestCount,
	}
}

func toRequestResponse(r domain.Request) requestResponse {
	return requestResponse{
		ID:              r.ID,
		Type:            r.Type,
		Subtype:         r.Subtype,
		Quantity:        r.Quantity,
		Priority:        r.Priority,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		TCKN:            r.TCKN,
		Notes:           r.Notes,
		Status:          string(r.Status),
		Timestamp:       r.Timestamp.Format(time.RFC3339),
		RelatedDistrict: r.RelatedDistrict,
	}
}

func toRequestResponses(requests []domain.Request) []requestResponse {
	out := make([]requestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, toRequestResponse(r))
	}
	return out
}

// sessionFromRequest builds the explicit actor context from the bearer token
// and role header. Token validation itself belongs to the auth collaborator;
// the core only needs presence plus the role string.
func sessionFromRequest(r *http.Request) domain.Session {
	var token string
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	}
	return domain.Session{
		Token: token,
		Role:  r.Header.Get("X-Actor-Role"),
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil && id > 0
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.inventory.ListDistricts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]districtResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, toDistrictResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) GetDistrict(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid district id"})
		return
	}
	district, err := h.inventory.GetDistrict(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDistrictResponse(district))
}

func (h *HTTPHandler) ListDistrictRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid district id"})
		return
	}
	requests, err := h.requests.ListForDistrict(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponses(requests))
}

func (h *HTTPHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requests.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponses(requests))
}

func (h *HTTPHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	request, err := h.requests.Submit(r.Context(), service.SubmitInput{
		Type:         body.Type,
		Subtype:      body.Subtype,
		Size:         body.Size,
		SpecificItem: body.SpecificItem,
		Latitude:     body.Latitude,
		Longitude:    body.Longitude,
		Quantity:     body.Quantity,
		TCKN:         body.TCKN,
		Notes:        body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(request))
}

func (h *HTTPHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid district id"})
		return
	}

	var deltas map[string]int
	if err := json.NewDecoder(r.Body).Decode(&deltas); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	inventory, err := h.inventory.UpdateInventory(r.Context(), sessionFromRequest(r), id, deltas)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inventoryUpdateResponse{
		Message:   "inventory updated",
		Inventory: inventory,
	})
}

func (h *HTTPHandler) TransferInventory(w http.ResponseWriter, r *http.Request) {
	sourceID, okFrom := pathID(r, "from")
	targetID, okTo := pathID(r, "to")
	if !okFrom || !okTo {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid district id"})
		return
	}

	var payload map[string]int
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload) != 1 {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "body must be a single {itemKey: quantity} pair"})
		return
	}

	var itemKey string
	var quantity int
	for k, v := range payload {
		itemKey, quantity = k, v
	}

	sourceInv, targetInv, err := h.inventory.Transfer(r.Context(), sessionFromRequest(r), sourceID, targetID, itemKey, quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transferResponse{
		Message:         "transfer completed",
		SourceInventory: sourceInv,
		TargetInventory: targetInv,
	})
}

func (h *HTTPHandler) ResolveRequest(w http.ResponseWriter, r *http.Request) {
	districtID, okDistrict := pathID(r, "id")
	requestID, okRequest := pathID(r, "requestID")
	if !okDistrict || !okRequest {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid id"})
		return
	}

	_, _, err := h.requests.Resolve(r.Context(), sessionFromRequest(r), requestID, districtID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "request resolved"})
}

// writeError surfaces the specific recoverable reason so operators can fix
// quantity or selection without guessing.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidSelection),
		errors.Is(err, domain.ErrInvalidTCKN),
		errors.Is(err, domain.ErrSameDistrict):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnknownDistrict),
		errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrAlreadyResolved),
		errors.Is(err, domain.ErrDuplicateRequest):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	default:
		log.Printf("internal error: %v", err)
	}

	writeJSON(w, status, messageResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
