package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkaya/relief-ledger/internal/core/domain"
)

// mockDB implements port.DatabaseRepository in memory with the same
// all-or-nothing semantics as the MySQL adapter.
type mockDB struct {
	mu            sync.Mutex
	districts     map[int64]*domain.District
	requests      map[int64]*domain.Request
	transfers     []domain.Transfer
	nextRequestID int64
}

func newMockDB() *mockDB {
	return &mockDB{
		districts: make(map[int64]*domain.District),
		requests:  make(map[int64]*domain.Request),
	}
}

func (m *mockDB) addDistrict(id int64, name string, lat, lon float64, inventory domain.Inventory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inventory == nil {
		inventory = domain.Inventory{}
	}
	m.districts[id] = &domain.District{
		ID: id, Name: name, Latitude: lat, Longitude: lon, Inventory: inventory,
	}
}

func (m *mockDB) stock(districtID int64, itemKey string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.districts[districtID].Inventory.Get(itemKey)
}

func (m *mockDB) requestStatus(id int64) domain.RequestStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[id].Status
}

func (m *mockDB) ListDistricts(ctx context.Context) ([]domain.District, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.District, 0, len(m.districts))
	for _, d := range m.districts {
		copied := *d
		copied.Inventory = d.Inventory.Clone()
		out = append(out, copied)
	}
	return out, nil
}

func (m *mockDB) GetDistrict(ctx context.Context, id int64) (domain.District, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.districts[id]
	if !ok {
		return domain.District{}, fmt.Errorf("%w: district %d", domain.ErrUnknownDistrict, id)
	}
	copied := *d
	copied.Inventory = d.Inventory.Clone()
	return copied, nil
}

func (m *mockDB) SeedDistricts(ctx context.Context, districts []domain.District) error {
	return nil
}

func (m *mockDB) ApplyDeltas(ctx context.Context, districtID int64, deltas map[string]int) (domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.districts[districtID]
	if !ok {
		return nil, fmt.Errorf("%w: district %d", domain.ErrUnknownDistrict, districtID)
	}

	next := d.Inventory.Clone()
	for key, delta := range deltas {
		updated := next.Get(key) + delta
		if updated < 0 {
			return nil, fmt.Errorf("%w: %q has %d, need %d",
				domain.ErrInsufficientStock, key, next.Get(key), -delta)
		}
		next[key] = updated
	}

	d.Inventory = next
	return next.Clone(), nil
}

func (m *mockDB) TransferStock(ctx context.Context, sourceID, targetID int64, itemKey string, quantity int) (domain.Inventory, domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	source, ok := m.districts[sourceID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: district %d", domain.ErrUnknownDistrict, sourceID)
	}
	target, ok := m.districts[targetID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: district %d", domain.ErrUnknownDistrict, targetID)
	}

	if source.Inventory.Get(itemKey) < quantity {
		return nil, nil, fmt.Errorf("%w: %q has %d, need %d",
			domain.ErrInsufficientStock, itemKey, source.Inventory.Get(itemKey), quantity)
	}

	source.Inventory[itemKey] -= quantity
	target.Inventory[itemKey] += quantity
	return source.Inventory.Clone(), target.Inventory.Clone(), nil
}

func (m *mockDB) CreateRequest(ctx context.Context, request domain.Request) (domain.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRequestID++
	request.ID = m.nextRequestID
	stored := request
	m.requests[request.ID] = &stored
	return request, nil
}

func (m *mockDB) GetRequest(ctx context.Context, id int64) (domain.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok {
		return domain.Request{}, fmt.Errorf("%w: request %d", domain.ErrNotFound, id)
	}
	return *r, nil
}

func (m *mockDB) ListRequests(ctx context.Context) ([]domain.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Request, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockDB) ListRequestsByDistrict(ctx context.Context, districtID int64) ([]domain.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Request
	for _, r := range m.requests {
		if r.RelatedDistrict == districtID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockDB) ListPendingRequests(ctx context.Context) ([]domain.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Request
	for _, r := range m.requests {
		if r.Status == domain.RequestStatusPending {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockDB) UpdateRequestPriority(ctx context.Context, id int64, priority int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.requests[id]
	if !ok || r.Status != domain.RequestStatusPending {
		return fmt.Errorf("%w: pending request %d", domain.ErrNotFound, id)
	}
	r.Priority = priority
	return nil
}

func (m *mockDB) ResolveRequest(ctx context.Context, requestID, districtID int64, itemKey string, quantity int) (domain.Request, domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.districts[districtID]
	if !ok {
		return domain.Request{}, nil, fmt.Errorf("%w: district %d", domain.ErrUnknownDistrict, districtID)
	}
	r, ok := m.requests[requestID]
	if !ok {
		return domain.Request{}, nil, fmt.Errorf("%w: request %d", domain.ErrNotFound, requestID)
	}
	if r.Status == domain.RequestStatusResolved {
		return domain.Request{}, nil, domain.ErrAlreadyResolved
	}

	if d.Inventory.Get(itemKey) < quantity {
		return domain.Request{}, nil, fmt.Errorf("%w: %q has %d, need %d",
			domain.ErrInsufficientStock, itemKey, d.Inventory.Get(itemKey), quantity)
	}

	d.Inventory[itemKey] -= quantity
	r.Status = domain.RequestStatusResolved
	return *r, d.Inventory.Clone(), nil
}

func (m *mockDB) CreateTransfer(ctx context.Context, transfer domain.Transfer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers = append(m.transfers, transfer)
	return nil
}

// mockCache implements port.CacheRepository in memory.
type mockCache struct {
	mu        sync.Mutex
	guards    map[int64]bool
	snapshots map[int64]domain.Inventory
}

func newMockCache() *mockCache {
	return &mockCache{
		guards:    make(map[int64]bool),
		snapshots: make(map[int64]domain.Inventory),
	}
}

func (m *mockCache) AcquireResolveGuard(ctx context.Context, requestID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.guards[requestID] {
		return false, nil
	}
	m.guards[requestID] = true
	return true, nil
}

func (m *mockCache) ReleaseResolveGuard(ctx context.Context, requestID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.guards, requestID)
	return nil
}

func (m *mockCache) SetInventorySnapshot(ctx context.Context, districtID int64, inventory domain.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[districtID] = inventory.Clone()
	return nil
}

func (m *mockCache) GetInventorySnapshot(ctx context.Context, districtID int64) (domain.Inventory, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.snapshots[districtID]
	if !ok {
		return nil, false, nil
	}
	return inv.Clone(), true, nil
}

func adminSession() domain.Session {
	return domain.Session{Token: "test-token", Role: domain.RoleAdministrator}
}

func volunteerSession() domain.Session {
	return domain.Session{Token: "test-token", Role: domain.RoleFieldVolunteer}
}

func newTestServices(db *mockDB, cache *mockCache) (*InventoryService, *RequestService) {
	inventory := NewInventoryService(db, cache, 100)
	requests := NewRequestService(db, cache, inventory)
	go func() {
		for range inventory.AuditQueue() {
		}
	}()
	return inventory, requests
}

func pendingRequest(db *mockDB, reqType, subtype string, quantity int) domain.Request {
	request, _ := db.CreateRequest(context.Background(), domain.Request{
		Type:      reqType,
		Subtype:   subtype,
		Quantity:  quantity,
		Priority:  domain.DefaultPriority(reqType),
		Status:    domain.RequestStatusPending,
		Timestamp: time.Now(),
	})
	return request
}
