package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/dkaya/relief-ledger/internal/core/domain"
)

// MySQLAdapter is the durable store. Stock debits use conditional updates
// (WHERE stock >= ?) so a failed precondition never mutates the row, and all
// multi-step mutations run inside one transaction.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) ListDistricts(ctx context.Context) ([]domain.District, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT d.id, d.name, d.latitude, d.longitude,
		       (SELECT COUNT(*) FROM requests r
		        WHERE r.related_district = d.id AND r.status = 'pending')
		FROM districts d ORDER BY d.id`)
	if err != nil {
		return nil, fmt.Errorf("query districts: %w", err)
	}
	defer rows.Close()

	var districts []domain.District
	for rows.Next() {
		var d domain.District
		if err := rows.Scan(&d.ID, &d.Name, &d.Latitude, &d.Longitude, &d.RequestCount); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate districts: %w", err)
	}

	for i := range districts {
		inv, err := m.loadInventory(ctx, m.db, districts[i].ID)
		if err != nil {
			return nil, err
		}
		districts[i].Inventory = inv
	}
	return districts, nil
}

func (m *MySQLAdapter) GetDistrict(ctx context.Context, id int64) (domain.District, error) {
	var d domain.District
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, latitude, longitude FROM districts WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.Latitude, &d.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.District{}, fmt.Errorf("%w: district %d", domain.ErrUnknownDistrict, id)
	}
	if err != nil {
		return domain.District{}, fmt.Errorf("query district: %w", err)
	}

	if err := m.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM requests WHERE related_district = ? AND status = 'pending'`, id,
	).Scan(&d.RequestCount); err != nil {
		return domain.District{}, fmt.Errorf("count requests: %w", err)
	}

	inv, err := m.loadInventory(ctx, m.db, id)
	if err != nil {
		return domain.District{}, err
	}
	d.Inventory = inv
	return d, nil
}

func (m *MySQLAdapter) SeedDistricts(ctx context.Context, districts []domain.District) error {
	for _, d := range districts {
		_, err := m.db.ExecContext(ctx, `
			INSERT INTO districts (name, latitude, longitude) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE latitude = latitude`,
			d.Name, d.Latitude, d.Longitude,
		)
		if err != nil {
			return fmt.Errorf("seed district %q: %w", d.Name, err)
		}
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (m *MySQLAdapter) loadInventory(ctx context.Context, q execer, districtID int64) (domain.Inventory, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT item_key, stock FROM inventory WHERE district_id = ?`, districtID)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	inv := make(domain.Inventory)
	for rows.Next() {
		var key string
		var stock int
		if err := rows.Scan(&key, &stock); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		inv[key] = stock
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return inv, nil
}

func (m *MySQLAdapter) districtExists(ctx context.Context, q execer, id int64) error {
	var found int64
	err := q.QueryRowContext(ctx, `SELECT id FROM districts WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: district %d", domain.ErrUnknownDistrict, id)
	}
	if err != nil {
		return fmt.Errorf("check district: %w", err)
	}
	return nil
}

// credit upserts stock for one item key.
func (m *MySQLAdapter) credit(ctx context.Context, q execer, districtID int64, itemKey string, amount int) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO inventory (district_id, item_key, stock) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE stock = stock + ?`,
		districtID, itemKey, amount, amount,
	)
	if err != nil {
		return fmt.Errorf("credit %q: %w", itemKey, err)
	}
	return nil
}

// debit decrements stock only when enough is present; on shortfall it reads
// the current quantity so the caller can report the exact gap.
func (m *MySQLAdapter) debit(ctx context.Context, q execer, districtID int64, itemKey string, amount int) error {
	result, err := q.ExecContext(ctx, `
		UPDATE inventory SET stock = stock - ?
		WHERE district_id = ? AND item_key = ? AND stock >= ?`,
		amount, districtID, itemKey, amount,
	)
	if err != nil {
		return fmt.Errorf("debit %q: %w", itemKey, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		current := 0
		q.QueryRowContext(ctx, `
			SELECT stock FROM inventory WHERE district_id = ? AND item_key = ?`,
			districtID, itemKey,
		).Scan(&current)
		return fmt.Errorf("%w: %q has %d, need %d", domain.ErrInsufficientStock, itemKey, current, amount)
	}
	return nil
}

func (m *MySQLAdapter) ApplyDeltas(ctx context.Context, districtID int64, deltas map[string]int) (domain.Inventory, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := m.districtExists(ctx, tx, districtID); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(deltas))
	for key := range deltas {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		delta := deltas[key]
		if delta > 0 {
			err = m.credit(ctx, tx, districtID, key, delta)
		} else if delta < 0 {
			err = m.debit(ctx, tx, districtID, key, -delta)
		}
		if err != nil {
			return nil, err
		}
	}

	inv, err := m.loadInventory(ctx, tx, districtID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit deltas: %w", err)
	}
	return inv, nil
}

func (m *MySQLAdapter) TransferStock(ctx context.Context, sourceID, targetID int64, itemKey string, quantity int) (domain.Inventory, domain.Inventory, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := m.districtExists(ctx, tx, sourceID); err != nil {
		return nil, nil, err
	}
	if err := m.districtExists(ctx, tx, targetID); err != nil {
		return nil, nil, err
	}

	if err := m.debit(ctx, tx, sourceID, itemKey, quantity); err != nil {
		return nil, nil, err
	}
	if err := m.credit(ctx, tx, targetID, itemKey, quantity); err != nil {
		return nil, nil, err
	}

	sourceInv, err := m.loadInventory(ctx, tx, sourceID)
	if err != nil {
		return nil, nil, err
	}
	targetInv, err := m.loadInventory(ctx, tx, targetID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit transfer: %w", err)
	}
	return sourceInv, targetInv, nil
}

const requestColumns = `id, type, subtype, quantity, priority, latitude, longitude,
	COALESCE(tckn, ''), COALESCE(notes, ''), status, created_at, COALESCE(related_district, 0)`

func scanRequest(row interface{ Scan(...any) error }) (domain.Request, error) {
	var r domain.Request
	err := row.Scan(&r.ID, &r.Type, &r.Subtype, &r.Quantity, &r.Priority,
		&r.Latitude, &r.Longitude, &r.TCKN, &r.Notes, &r.Status, &r.Timestamp,
		&r.RelatedDistrict)
	return r, err
}

func (m *MySQLAdapter) CreateRequest(ctx context.Context, request domain.Request) (domain.Request, error) {
	var tckn, related any
	if request.TCKN != "" {
		tckn = request.TCKN
	}
	if request.RelatedDistrict != 0 {
		related = request.RelatedDistrict
	}

	result, err := m.db.ExecContext(ctx, `
		INSERT INTO requests
			(type, subtype, quantity, priority, latitude, longitude, tckn, notes, status, created_at, related_district)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		request.Type, request.Subtype, request.Quantity, request.Priority,
		request.Latitude, request.Longitude, tckn, request.Notes,
		request.Status, request.Timestamp, related,
	)
	if err != nil {
		return domain.Request{}, fmt.Errorf("insert request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Request{}, fmt.Errorf("request id: %w", err)
	}
	request.ID = id
	return request, nil
}

func (m *MySQLAdapter) GetRequest(ctx context.Context, id int64) (domain.Request, error) {
	request, err := scanRequest(m.db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Request{}, fmt.Errorf("%w: request %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return domain.Request{}, fmt.Errorf("query request: %w", err)
	}
	return request, nil
}

func (m *MySQLAdapter) listRequests(ctx context.Context, query string, args ...any) ([]domain.Request, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return requests, nil
}

func (m *MySQLAdapter) ListRequests(ctx context.Context) ([]domain.Request, error) {
	return m.listRequests(ctx,
		`SELECT `+requestColumns+` FROM requests ORDER BY id DESC`)
}

func (m *MySQLAdapter) ListRequestsByDistrict(ctx context.Context, districtID int64) ([]domain.Request, error) {
	return m.listRequests(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE related_district = ? ORDER BY priority DESC, id`,
		districtID)
}

func (m *MySQLAdapter) ListPendingRequests(ctx context.Context) ([]domain.Request, error) {
	return m.listRequests(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE status = 'pending' ORDER BY id`)
}

func (m *MySQLAdapter) UpdateRequestPriority(ctx context.Context, id int64, priority int) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE requests SET priority = ? WHERE id = ? AND status = 'pending'`,
		priority, id,
	)
	if err != nil {
		return fmt.Errorf("update priority: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: pending request %d", domain.ErrNotFound, id)
	}
	return nil
}

// ResolveRequest flips the status and debits the ledger in one transaction.
// The conditional status update catches a lost race with another resolve; the
// conditional debit catches a shortfall. Either failure rolls everything back.
func (m *MySQLAdapter) ResolveRequest(ctx context.Context, requestID, districtID int64, itemKey string, quantity int) (domain.Request, domain.Inventory, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Request{}, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := m.districtExists(ctx, tx, districtID); err != nil {
		return domain.Request{}, nil, err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE requests SET status = 'resolved' WHERE id = ? AND status = 'pending'`,
		requestID,
	)
	if err != nil {
		return domain.Request{}, nil, fmt.Errorf("resolve request: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var status string
		err := tx.QueryRowContext(ctx, `SELECT status FROM requests WHERE id = ?`, requestID).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Request{}, nil, fmt.Errorf("%w: request %d", domain.ErrNotFound, requestID)
		}
		if err != nil {
			return domain.Request{}, nil, fmt.Errorf("query request status: %w", err)
		}
		return domain.Request{}, nil, domain.ErrAlreadyResolved
	}

	if err := m.debit(ctx, tx, districtID, itemKey, quantity); err != nil {
		return domain.Request{}, nil, err
	}

	request, err := scanRequest(tx.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM requests WHERE id = ?`, requestID))
	if err != nil {
		return domain.Request{}, nil, fmt.Errorf("reload request: %w", err)
	}

	inv, err := m.loadInventory(ctx, tx, districtID)
	if err != nil {
		return domain.Request{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Request{}, nil, fmt.Errorf("commit resolve: %w", err)
	}
	return request, inv, nil
}

func (m *MySQLAdapter) CreateTransfer(ctx context.Context, transfer domain.Transfer) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO transfers (id, source_district_id, target_district_id, item_key, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		transfer.ID, transfer.SourceDistrictID, transfer.TargetDistrictID,
		transfer.ItemKey, transfer.Quantity, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}
