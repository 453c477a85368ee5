package port

import (
	"context"

	"github.com/dkaya/relief-ledger/internal/core/domain"
)

// DatabaseRepository is the durable store for districts, ledgers and request
// lifecycle. Multi-step mutations (batch deltas, transfers, resolve+debit)
// commit inside a single transaction: either every step is durable or none is.
type DatabaseRepository interface {
	// ListDistricts returns all districts with inventory and pending request counts
	ListDistricts(ctx context.Context) ([]domain.District, error)

	// GetDistrict returns one district with its full inventory, or ErrUnknownDistrict
	GetDistrict(ctx context.Context, id int64) (domain.District, error)

	// SeedDistricts inserts districts that do not exist yet, keyed by name
	SeedDistricts(ctx context.Context, districts []domain.District) error

	// ApplyDeltas applies signed stock deltas all-or-nothing and returns the
	// refreshed inventory; ErrInsufficientStock if any debit would go negative
	ApplyDeltas(ctx context.Context, districtID int64, deltas map[string]int) (domain.Inventory, error)

	// TransferStock debits source and credits target atomically, returning
	// both refreshed inventories
	TransferStock(ctx context.Context, sourceID, targetID int64, itemKey string, quantity int) (domain.Inventory, domain.Inventory, error)

	// CreateRequest persists a new pending request and assigns its id
	CreateRequest(ctx context.Context, request domain.Request) (domain.Request, error)

	// GetRequest returns one request, or ErrNotFound
	GetRequest(ctx context.Context, id int64) (domain.Request, error)

	// ListRequests returns every request, newest first
	ListRequests(ctx context.Context) ([]domain.Request, error)

	// ListRequestsByDistrict returns requests whose nearest district matches
	ListRequestsByDistrict(ctx context.Context, districtID int64) ([]domain.Request, error)

	// ListPendingRequests returns requests still awaiting fulfillment
	ListPendingRequests(ctx context.Context) ([]domain.Request, error)

	// UpdateRequestPriority rewrites the priority of a pending request
	UpdateRequestPriority(ctx context.Context, id int64, priority int) error

	// ResolveRequest flips a pending request to resolved and debits the
	// district ledger in the same transaction; ErrAlreadyResolved if the
	// status flip loses a race, ErrInsufficientStock if the debit would go
	// negative; in both cases nothing is committed
	ResolveRequest(ctx context.Context, requestID, districtID int64, itemKey string, quantity int) (domain.Request, domain.Inventory, error)

	// CreateTransfer persists a transfer audit record
	CreateTransfer(ctx context.Context, transfer domain.Transfer) error
}
