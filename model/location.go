package model

import (
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
)

type StorageLocation struct {
	ID          uint64                `db:"id" json:"id"`
	WarehouseID uint64                `db:"warehouse_id" json:"warehouse_id"`
	Code        string                `db:"code" json:"code"`
	Type        constant.LocationType `db:"type" json:"type"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

// PickableStock is a stock level joined with the type of the location holding it.
type PickableStock struct {
	StockLevel
	LocationCode string                `db:"location_code"`
	LocationType constant.LocationType `db:"location_type"`
}
