package model

import (
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/shopspring/decimal"
)

type OrderLine struct {
	ProductRef string          `json:"product_ref" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"qty_gte0"`
}

// OrderEvent is a lifecycle notification from the order service.
// Version increases with every change of the order and, together with OrderID and
// EventType, identifies a delivery for deduplication.
type OrderEvent struct {
	EventType   constant.OrderEventType `json:"event_type" validate:"required,oneof=order.confirmed order.updated order.cancelled"`
	OrderID     uint64                  `json:"order_id" validate:"required"`
	TenantID    uint64                  `json:"tenant_id" validate:"required"`
	WarehouseID uint64                  `json:"warehouse_id" validate:"required"`
	Version     int64                   `json:"version" validate:"gte=0"`
	Lines       []OrderLine             `json:"lines" validate:"dive"`
}

// RequestedByProduct sums line quantities per product, keeping first-seen order.
func (e *OrderEvent) RequestedByProduct() ([]string, map[string]decimal.Decimal) {
	refs := make([]string, 0, len(e.Lines))
	totals := make(map[string]decimal.Decimal, len(e.Lines))
	for _, line := range e.Lines {
		if _, ok := totals[line.ProductRef]; !ok {
			refs = append(refs, line.ProductRef)
			totals[line.ProductRef] = decimal.Zero
		}
		totals[line.ProductRef] = totals[line.ProductRef].Add(line.Quantity)
	}
	return refs, totals
}

type CatalogItem struct {
	ItemID     uint64          `db:"id" json:"item_id"`
	TenantID   uint64          `db:"tenant_id" json:"tenant_id"`
	ProductRef string          `db:"product_ref" json:"product_ref"`
	Name       string          `db:"name" json:"name"`
	Price      decimal.Decimal `db:"price" json:"price"`
}

// OrderReservation is one soft reservation this service made for an order line.
type OrderReservation struct {
	ID         uint64          `db:"id"`
	TenantID   uint64          `db:"tenant_id"`
	OrderID    uint64          `db:"order_id"`
	ProductRef string          `db:"product_ref"`
	ItemID     uint64          `db:"item_id"`
	LocationID uint64          `db:"location_id"`
	Quantity   decimal.Decimal `db:"quantity"`
	CreatedAt  time.Time       `db:"created_at"`
}

type LineReservation struct {
	ProductRef string                      `json:"product_ref"`
	ItemID     uint64                      `json:"item_id,omitempty"`
	Requested  decimal.Decimal             `json:"requested"`
	Reserved   decimal.Decimal             `json:"reserved"`
	Released   decimal.Decimal             `json:"released"`
	Backorder  decimal.Decimal             `json:"backorder"`
	Outcome    constant.ReservationOutcome `json:"outcome"`
	Reason     string                      `json:"reason,omitempty"`
}

type ReservationResult struct {
	OrderID   uint64                      `json:"order_id"`
	TenantID  uint64                      `json:"tenant_id"`
	EventType constant.OrderEventType     `json:"event_type"`
	Version   int64                       `json:"version"`
	Outcome   constant.ReservationOutcome `json:"outcome"`
	Lines     []LineReservation           `json:"lines"`
}
