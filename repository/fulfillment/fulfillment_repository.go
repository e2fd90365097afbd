package fulfillment

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/shopspring/decimal"
)

// FulfillmentRepository keeps the record of which soft reservations were made for
// each order line, and where. It is the source of the previously requested quantity.
type FulfillmentRepository interface {
	ListByOrderTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) ([]model.OrderReservation, error)
	AddTx(ctx context.Context, tx *sqlx.Tx, reservation *model.OrderReservation) error
	ReduceTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, remaining decimal.Decimal) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewFulfillmentRepository(conn *sqlx.DB) FulfillmentRepository {
	return &SQL{conn: conn}
}

const (
	listByOrderQuery = `SELECT id, tenant_id, order_id, product_ref, item_id, location_id, quantity, created_at
FROM order_reservation
WHERE tenant_id = ? AND order_id = ?
ORDER BY id
FOR UPDATE`

	insertReservationQuery = `INSERT INTO order_reservation (tenant_id, order_id, product_ref, item_id, location_id, quantity, created_at) VALUES (?, ?, ?, ?, ?, ?, UTC_TIMESTAMP())`

	updateReservationQuery = `UPDATE order_reservation SET quantity = ? WHERE id = ?`

	deleteReservationQuery = `DELETE FROM order_reservation WHERE id = ?`
)

func (r *SQL) ListByOrderTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) ([]model.OrderReservation, error) {
	res := make([]model.OrderReservation, 0)
	if err := tx.SelectContext(ctx, &res, listByOrderQuery, tenantID, orderID); err != nil {
		return nil, fmt.Errorf("list order reservations: %w", err)
	}
	return res, nil
}

func (r *SQL) AddTx(ctx context.Context, tx *sqlx.Tx, reservation *model.OrderReservation) error {
	result, err := tx.ExecContext(ctx, insertReservationQuery,
		reservation.TenantID, reservation.OrderID, reservation.ProductRef,
		reservation.ItemID, reservation.LocationID, reservation.Quantity)
	if err != nil {
		return fmt.Errorf("insert order reservation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert order reservation: %w", err)
	}
	reservation.ID = uint64(id)
	return nil
}

// ReduceTx sets the remaining quantity of a reservation, deleting it once nothing is left.
func (r *SQL) ReduceTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, remaining decimal.Decimal) error {
	if !remaining.IsPositive() {
		if _, err := tx.ExecContext(ctx, deleteReservationQuery, reservationID); err != nil {
			return fmt.Errorf("delete order reservation: %w", err)
		}
		return nil
	}
	if _, err := tx.ExecContext(ctx, updateReservationQuery, remaining, reservationID); err != nil {
		return fmt.Errorf("update order reservation: %w", err)
	}
	return nil
}
