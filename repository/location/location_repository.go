package location

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
)

// LocationRepository reads the storage locations administered by the warehouse service.
// CreateTx exists only to materialize the fallback location on demand.
type LocationRepository interface {
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (*model.StorageLocation, error)
	FindByCodeTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, code string) (*model.StorageLocation, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, code string, locationType constant.LocationType) (uint64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLocationRepository(conn *sqlx.DB) LocationRepository {
	return &SQL{conn: conn}
}

const (
	getLocationBase     = `SELECT id, warehouse_id, code, type, created_at FROM storage_location`
	insertLocationQuery = `INSERT INTO storage_location (warehouse_id, code, type, created_at) VALUES (?, ?, ?, UTC_TIMESTAMP())`
)

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (*model.StorageLocation, error) {
	return r.get(ctx, tx, getLocationBase+" WHERE id = ?", locationID)
}

func (r *SQL) FindByCodeTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, code string) (*model.StorageLocation, error) {
	return r.get(ctx, tx, getLocationBase+" WHERE warehouse_id = ? AND code = ?", warehouseID, code)
}

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, code string, locationType constant.LocationType) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertLocationQuery, warehouseID, code, locationType)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) get(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (*model.StorageLocation, error) {
	var loc model.StorageLocation
	err := tx.GetContext(ctx, &loc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	return &loc, nil
}
