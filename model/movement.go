package model

import (
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/shopspring/decimal"
)

// Column widths of stock_movement.
const (
	MaxReferenceLength = 100
	MaxNotesLength     = 255
)

// Movement is an immutable ledger entry documenting one change of a StockLevel.
type Movement struct {
	ID                string                `db:"id" json:"id"`
	StockLevelID      string                `db:"stock_level_id" json:"stock_level_id"`
	ActorID           *uint64               `db:"actor_id" json:"actor_id,omitempty"`
	Type              constant.MovementType `db:"type" json:"type"`
	QuantityChange    decimal.Decimal       `db:"quantity_change" json:"quantity_change"`
	QuantityAfterMove decimal.Decimal       `db:"quantity_after_move" json:"quantity_after_move"`
	Reference         *string               `db:"reference" json:"reference,omitempty"`
	Notes             *string               `db:"notes" json:"notes,omitempty"`
	CreatedAt         time.Time             `db:"created_at" json:"created_at"`
}

type MovementFilter struct {
	TenantID     uint64
	StockLevelID string
	ItemID       uint64
	LocationID   uint64
	Reference    string
	Limit        int
}
