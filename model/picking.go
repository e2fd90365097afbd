package model

import (
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/shopspring/decimal"
)

// PlanStep allocates Quantity from LocationID. A nil LocationID marks the backorder remainder.
type PlanStep struct {
	LocationID *uint64         `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

func (p PlanStep) IsBackorder() bool {
	return p.LocationID == nil
}

type PickingPlan struct {
	ItemID      uint64               `json:"item_id"`
	WarehouseID uint64               `json:"warehouse_id"`
	Mode        constant.PickingMode `json:"mode"`
	Required    decimal.Decimal      `json:"required"`
	Steps       []PlanStep           `json:"steps"`
}

// Backorder returns the quantity of the terminal backorder step, or zero.
func (p *PickingPlan) Backorder() decimal.Decimal {
	if n := len(p.Steps); n > 0 && p.Steps[n-1].IsBackorder() {
		return p.Steps[n-1].Quantity
	}
	return decimal.Zero
}

// Allocated is the quantity covered by real locations.
func (p *PickingPlan) Allocated() decimal.Decimal {
	total := decimal.Zero
	for _, step := range p.Steps {
		if !step.IsBackorder() {
			total = total.Add(step.Quantity)
		}
	}
	return total
}

type PickingPlanRequest struct {
	TenantID    uint64               `json:"tenant_id" validate:"required"`
	ItemID      uint64               `json:"item_id" validate:"required"`
	WarehouseID uint64               `json:"warehouse_id" validate:"required"`
	Quantity    decimal.Decimal      `json:"quantity" validate:"qty_gt0"`
	Mode        constant.PickingMode `json:"mode" validate:"omitempty,oneof=picking shipment"`
}
