package orderevent

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
)

// OrderEventRepository stores durable idempotency keys (tenant, order, event type, version)
// for consumed order lifecycle events.
type OrderEventRepository interface {
	// MarkProcessedTx records the event and returns false if it was already recorded.
	MarkProcessedTx(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent) (bool, error)
	// LatestVersionTx returns the highest version applied for the order and whether any event was applied.
	LatestVersionTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) (int64, bool, error)
	IsCancelledTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewOrderEventRepository(conn *sqlx.DB) OrderEventRepository {
	return &SQL{conn: conn}
}

const (
	insertProcessedQuery = `INSERT INTO processed_order_event (tenant_id, order_id, event_type, version, processed_at) VALUES (?, ?, ?, ?, UTC_TIMESTAMP())`
	latestVersionQuery   = `SELECT MAX(version) FROM processed_order_event WHERE tenant_id = ? AND order_id = ?`
	cancelledCountQuery  = `SELECT COUNT(*) FROM processed_order_event WHERE tenant_id = ? AND order_id = ? AND event_type = ?`
)

func (r *SQL) MarkProcessedTx(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent) (bool, error) {
	_, err := tx.ExecContext(ctx, insertProcessedQuery, ev.TenantID, ev.OrderID, ev.EventType, ev.Version)
	if txrepo.IsDuplicateKey(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mark order event processed: %w", err)
	}
	return true, nil
}

func (r *SQL) LatestVersionTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) (int64, bool, error) {
	var latest sql.NullInt64
	if err := tx.GetContext(ctx, &latest, latestVersionQuery, tenantID, orderID); err != nil {
		return 0, false, fmt.Errorf("latest order event version: %w", err)
	}
	if !latest.Valid {
		return 0, false, nil
	}
	return latest.Int64, true, nil
}

func (r *SQL) IsCancelledTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) (bool, error) {
	var count int64
	if err := tx.GetContext(ctx, &count, cancelledCountQuery, tenantID, orderID, constant.OrderEventCancelled); err != nil {
		return false, fmt.Errorf("check order cancelled: %w", err)
	}
	return count > 0, nil
}
