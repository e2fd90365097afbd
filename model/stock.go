package model

import "github.com/shopspring/decimal"

type ReceiveStockRequest struct {
	TenantID    uint64          `json:"tenant_id" validate:"required"`
	ItemID      uint64          `json:"item_id" validate:"required"`
	WarehouseID uint64          `json:"warehouse_id" validate:"required"`
	LocationID  uint64          `json:"location_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"qty_gt0"`
	ActorID     *uint64         `json:"actor_id,omitempty"`
	Reference   string          `json:"reference,omitempty" validate:"max=100"`
}

type IssueStockRequest struct {
	TenantID    uint64          `json:"tenant_id" validate:"required"`
	ItemID      uint64          `json:"item_id" validate:"required"`
	WarehouseID uint64          `json:"warehouse_id" validate:"required"`
	LocationID  uint64          `json:"location_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"qty_gt0"`
	ActorID     *uint64         `json:"actor_id,omitempty"`
	Reference   string          `json:"reference,omitempty" validate:"max=100"`
}

type AdjustStockRequest struct {
	TenantID    uint64          `json:"tenant_id" validate:"required"`
	ItemID      uint64          `json:"item_id" validate:"required"`
	WarehouseID uint64          `json:"warehouse_id" validate:"required"`
	LocationID  uint64          `json:"location_id" validate:"required"`
	NewQuantity decimal.Decimal `json:"new_quantity" validate:"qty_gte0"`
	ActorID     *uint64         `json:"actor_id,omitempty"`
	Reason      string          `json:"reason" validate:"required,max=255"`
}

type TransferStockRequest struct {
	TenantID       uint64          `json:"tenant_id" validate:"required"`
	ItemID         uint64          `json:"item_id" validate:"required"`
	WarehouseID    uint64          `json:"warehouse_id" validate:"required"`
	FromLocationID uint64          `json:"from_location_id" validate:"required"`
	ToLocationID   uint64          `json:"to_location_id" validate:"required,nefield=FromLocationID"`
	Quantity       decimal.Decimal `json:"quantity" validate:"qty_gt0"`
	ActorID        *uint64         `json:"actor_id,omitempty"`
	Reference      string          `json:"reference,omitempty" validate:"max=100"`
	Reason         string          `json:"reason,omitempty" validate:"max=255"`
}

// StockMutationResponse is returned by the single-location commands.
// Movement is nil when an adjustment matched the current count.
type StockMutationResponse struct {
	StockLevel *StockLevel `json:"stock_level"`
	Movement   *Movement   `json:"movement,omitempty"`
}

type TransferStockResponse struct {
	From      *StockLevel `json:"from"`
	To        *StockLevel `json:"to"`
	Movements []*Movement `json:"movements"`
}

type StockLevelQuery struct {
	TenantID   uint64 `json:"tenant_id" validate:"required"`
	ItemID     uint64 `json:"item_id" validate:"required"`
	LocationID uint64 `json:"location_id" validate:"required"`
}
