package stock

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
)

// StockRepository is the only writer of stock_level and stock_movement.
// Every *Tx lookup locks the rows it returns until the transaction ends.
type StockRepository interface {
	NextID() string
	FindByLocationTx(ctx context.Context, tx *sqlx.Tx, tenantID, itemID, locationID uint64) (*model.StockLevel, error)
	FindPickableStocksTx(ctx context.Context, tx *sqlx.Tx, tenantID, itemID, warehouseID uint64) ([]model.PickableStock, error)
	SaveTx(ctx context.Context, tx *sqlx.Tx, level *model.StockLevel, movements []*model.Movement) error
	FindPickableStocks(ctx context.Context, tenantID, itemID, warehouseID uint64) ([]model.PickableStock, error)
	GetByLocation(ctx context.Context, tenantID, itemID, locationID uint64) (*model.StockLevel, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	stockLevelColumns = `sl.id, sl.tenant_id, sl.item_id, sl.warehouse_id, sl.location_id, sl.quantity_on_hand, sl.quantity_reserved, sl.quantity_soft_reserved, sl.version, sl.created_at, sl.updated_at`

	findByLocationQuery = `SELECT ` + stockLevelColumns + ` FROM stock_level sl WHERE sl.tenant_id = ? AND sl.item_id = ? AND sl.location_id = ?`

	// picking locations first, damaged last; ties keep insertion order
	findPickableQuery = `SELECT ` + stockLevelColumns + `, l.code AS location_code, l.type AS location_type
FROM stock_level sl
JOIN storage_location l ON l.id = sl.location_id
WHERE sl.tenant_id = ? AND sl.item_id = ? AND sl.warehouse_id = ?
ORDER BY FIELD(l.type, 'picking', 'bulk', 'inbound', 'return', 'outbound', 'damaged'), sl.created_at, sl.id`

	insertStockLevelQuery = `INSERT INTO stock_level (id, tenant_id, item_id, warehouse_id, location_id, quantity_on_hand, quantity_reserved, quantity_soft_reserved, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)`

	updateStockLevelQuery = `UPDATE stock_level SET quantity_on_hand = ?, quantity_reserved = ?, quantity_soft_reserved = ?, version = version + 1, updated_at = ? WHERE id = ? AND tenant_id = ? AND version = ?`

	insertMovementQuery = `INSERT INTO stock_movement (id, stock_level_id, actor_id, type, quantity_change, quantity_after_move, reference, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	listMovementsBase = `SELECT m.id, m.stock_level_id, m.actor_id, m.type, m.quantity_change, m.quantity_after_move, m.reference, m.notes, m.created_at
FROM stock_movement m
JOIN stock_level sl ON sl.id = m.stock_level_id
WHERE sl.tenant_id = ?`

	defaultMovementLimit = 100
	maxMovementLimit     = 1000
)

func (r *SQL) NextID() string {
	return uuid.NewString()
}

func (r *SQL) FindByLocationTx(ctx context.Context, tx *sqlx.Tx, tenantID, itemID, locationID uint64) (*model.StockLevel, error) {
	var level model.StockLevel
	err := tx.GetContext(ctx, &level, findByLocationQuery+" FOR UPDATE", tenantID, itemID, locationID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find stock level: %w", err)
	}
	return &level, nil
}

func (r *SQL) FindPickableStocksTx(ctx context.Context, tx *sqlx.Tx, tenantID, itemID, warehouseID uint64) ([]model.PickableStock, error) {
	stocks := make([]model.PickableStock, 0)
	if err := tx.SelectContext(ctx, &stocks, findPickableQuery+" FOR UPDATE", tenantID, itemID, warehouseID); err != nil {
		return nil, fmt.Errorf("find pickable stocks: %w", err)
	}
	return stocks, nil
}

func (r *SQL) FindPickableStocks(ctx context.Context, tenantID, itemID, warehouseID uint64) ([]model.PickableStock, error) {
	stocks := make([]model.PickableStock, 0)
	if err := r.conn.SelectContext(ctx, &stocks, findPickableQuery, tenantID, itemID, warehouseID); err != nil {
		return nil, fmt.Errorf("find pickable stocks: %w", err)
	}
	return stocks, nil
}

func (r *SQL) GetByLocation(ctx context.Context, tenantID, itemID, locationID uint64) (*model.StockLevel, error) {
	var level model.StockLevel
	err := r.conn.GetContext(ctx, &level, findByLocationQuery, tenantID, itemID, locationID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &level, nil
}

// SaveTx inserts a new stock level or updates an existing one guarded by its version,
// then appends the movements. A lost race on either path returns ErrConcurrencyConflict.
func (r *SQL) SaveTx(ctx context.Context, tx *sqlx.Tx, level *model.StockLevel, movements []*model.Movement) error {
	if level.IsNew() {
		_, err := tx.ExecContext(ctx, insertStockLevelQuery,
			level.ID, level.TenantID, level.ItemID, level.WarehouseID, level.LocationID,
			level.QuantityOnHand, level.QuantityReserved, level.QuantitySoftReserved,
			level.CreatedAt, level.UpdatedAt)
		if txrepo.IsDuplicateKey(err) {
			return errors.SetCustomError(constant.ErrConcurrencyConflict)
		}
		if err != nil {
			return fmt.Errorf("insert stock level: %w", err)
		}
	} else {
		res, err := tx.ExecContext(ctx, updateStockLevelQuery,
			level.QuantityOnHand, level.QuantityReserved, level.QuantitySoftReserved,
			level.UpdatedAt, level.ID, level.TenantID, level.Version)
		if err != nil {
			return fmt.Errorf("update stock level: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update stock level: %w", err)
		}
		if affected == 0 {
			return errors.SetCustomError(constant.ErrConcurrencyConflict)
		}
	}

	for _, m := range movements {
		if m == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx, insertMovementQuery,
			m.ID, level.ID, m.ActorID, m.Type, m.QuantityChange, m.QuantityAfterMove,
			m.Reference, m.Notes, m.CreatedAt); err != nil {
			return fmt.Errorf("insert movement: %w", err)
		}
	}

	level.Version++
	return nil
}

func (r *SQL) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, error) {
	query := listMovementsBase
	args := make([]any, 0, 5)
	args = append(args, filter.TenantID)

	if filter.StockLevelID != "" {
		query += " AND m.stock_level_id = ?"
		args = append(args, filter.StockLevelID)
	}
	if filter.ItemID != 0 {
		query += " AND sl.item_id = ?"
		args = append(args, filter.ItemID)
	}
	if filter.LocationID != 0 {
		query += " AND sl.location_id = ?"
		args = append(args, filter.LocationID)
	}
	if filter.Reference != "" {
		query += " AND m.reference = ?"
		args = append(args, filter.Reference)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	if limit > maxMovementLimit {
		limit = maxMovementLimit
	}
	query += " ORDER BY m.created_at DESC, m.id DESC LIMIT ?"
	args = append(args, limit)

	movements := make([]model.Movement, 0)
	if err := r.conn.SelectContext(ctx, &movements, query, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}
