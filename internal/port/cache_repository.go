package port

import (
	"context"

	"github.com/dkaya/relief-ledger/internal/core/domain"
)

type CacheRepository interface {
	// AcquireResolveGuard claims the in-flight marker for a request, returns
	// false if another resolve already holds it
	AcquireResolveGuard(ctx context.Context, requestID int64) (bool, error)

	// ReleaseResolveGuard frees the marker after a failed resolve
	ReleaseResolveGuard(ctx context.Context, requestID int64) error

	// SetInventorySnapshot replaces the cached inventory view of a district
	SetInventorySnapshot(ctx context.Context, districtID int64, inventory domain.Inventory) error

	// GetInventorySnapshot returns the cached inventory view, with a hit flag
	GetInventorySnapshot(ctx context.Context, districtID int64) (domain.Inventory, bool, error)
}
