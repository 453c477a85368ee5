package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dkaya/relief-ledger/internal/core/catalog"
	"github.com/dkaya/relief-ledger/internal/core/domain"
	"github.com/dkaya/relief-ledger/internal/port"
)

// InventoryService owns every district ledger mutation: batch deltas from
// operators and atomic transfers between districts. Mutations against the
// same district are serialized; different districts proceed in parallel.
type InventoryService struct {
	db         port.DatabaseRepository
	cache      port.CacheRepository
	locks      *districtLocks
	auditQueue chan domain.Transfer
}

func NewInventoryService(db port.DatabaseRepository, cache port.CacheRepository, auditQueueSize int) *InventoryService {
	return &InventoryService{
		db:         db,
		cache:      cache,
		locks:      newDistrictLocks(),
		auditQueue: make(chan domain.Transfer, auditQueueSize),
	}
}

func (s *InventoryService) ListDistricts(ctx context.Context) ([]domain.District, error) {
	return s.db.ListDistricts(ctx)
}

// GetDistrict reads district metadata from the database; the inventory view
// comes from the snapshot cache when warm.
func (s *InventoryService) GetDistrict(ctx context.Context, id int64) (domain.District, error) {
	district, err := s.db.GetDistrict(ctx, id)
	if err != nil {
		return domain.District{}, err
	}

	if cached, ok, cacheErr := s.cache.GetInventorySnapshot(ctx, id); cacheErr == nil && ok {
		district.Inventory = cached
	} else {
		s.syncSnapshot(ctx, id, district.Inventory)
	}
	return district, nil
}

// UpdateInventory applies a batch of signed deltas to one district. Every key
// is validated against the catalog first and the whole batch commits
// all-or-nothing; a single debit past current stock rejects the entire call.
func (s *InventoryService) UpdateInventory(ctx context.Context, session domain.Session, districtID int64, deltas map[string]int) (domain.Inventory, error) {
	if !session.CanManageInventory() {
		return nil, domain.ErrForbidden
	}
	if len(deltas) == 0 {
		return nil, fmt.Errorf("%w: no deltas given", domain.ErrInvalidQuantity)
	}

	applied := make(map[string]int, len(deltas))
	for key, delta := range deltas {
		if err := catalog.ValidateKey(key); err != nil {
			return nil, err
		}
		if delta == 0 {
			continue // no-op by contract
		}
		applied[key] = delta
	}

	// Run to completion even if the caller goes away mid-commit.
	ctx = context.WithoutCancel(ctx)

	release := s.locks.acquire(districtID)
	defer release()

	if len(applied) == 0 {
		return s.db.ApplyDeltas(ctx, districtID, nil)
	}

	inventory, err := s.db.ApplyDeltas(ctx, districtID, applied)
	if err != nil {
		return nil, err
	}
	s.syncSnapshot(ctx, districtID, inventory)
	return inventory, nil
}

// Transfer moves quantity units of one item key between two districts as a
// single logical transaction: the debit and credit are either both durable or
// neither is observable. Returns both post-transfer inventories.
func (s *InventoryService) Transfer(ctx context.Context, session domain.Session, sourceID, targetID int64, itemKey string, quantity int) (domain.Inventory, domain.Inventory, error) {
	if !session.CanManageInventory() {
		return nil, nil, domain.ErrForbidden
	}
	if sourceID == targetID {
		return nil, nil, domain.ErrSameDistrict
	}
	if quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: transfer quantity must be positive, got %d", domain.ErrInvalidQuantity, quantity)
	}
	if err := catalog.ValidateKey(itemKey); err != nil {
		return nil, nil, err
	}

	ctx = context.WithoutCancel(ctx)

	release := s.locks.acquire(sourceID, targetID)
	defer release()

	sourceInv, targetInv, err := s.db.TransferStock(ctx, sourceID, targetID, itemKey, quantity)
	if err != nil {
		return nil, nil, err
	}

	s.syncSnapshot(ctx, sourceID, sourceInv)
	s.syncSnapshot(ctx, targetID, targetInv)

	s.auditQueue <- domain.Transfer{
		ID:               uuid.New().String(),
		SourceDistrictID: sourceID,
		TargetDistrictID: targetID,
		ItemKey:          itemKey,
		Quantity:         quantity,
		CreatedAt:        time.Now(),
	}

	return sourceInv, targetInv, nil
}

// AuditQueue exposes completed transfers for asynchronous persistence.
func (s *InventoryService) AuditQueue() <-chan domain.Transfer {
	return s.auditQueue
}

func (s *InventoryService) Close() {
	close(s.auditQueue)
}

// syncSnapshot refreshes the cached inventory view. Cache failures never fail
// the ledger operation; the database already committed.
func (s *InventoryService) syncSnapshot(ctx context.Context, districtID int64, inventory domain.Inventory) {
	if err := s.cache.SetInventorySnapshot(ctx, districtID, inventory); err != nil {
		log.Printf("inventory snapshot sync failed for district %d: %v", districtID, err)
	}
}
