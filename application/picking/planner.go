package picking

import (
	"sort"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/shopspring/decimal"
)

// BuildPlan allocates required across candidates. Candidates arrive in repository order,
// which is kept as the tie-break. Scarcity never fails: the uncovered remainder becomes a
// trailing backorder step. A non-positive required quantity yields an empty plan.
func BuildPlan(candidates []model.PickableStock, required decimal.Decimal, mode constant.PickingMode) []model.PlanStep {
	steps := make([]model.PlanStep, 0, len(candidates)+1)
	if !required.IsPositive() {
		return steps
	}

	remaining := required
	for _, stock := range rank(candidates, mode) {
		if !remaining.IsPositive() {
			break
		}
		supply := stock.Available()
		if mode == constant.PickingModeShipment {
			// at shipment the reservation is being consumed, so raw on hand counts
			supply = stock.QuantityOnHand
		}
		if !supply.IsPositive() {
			continue
		}
		take := decimal.Min(supply, remaining)
		locationID := stock.LocationID
		steps = append(steps, model.PlanStep{LocationID: &locationID, Quantity: take})
		remaining = remaining.Sub(take)
	}

	if remaining.IsPositive() {
		steps = append(steps, model.PlanStep{LocationID: nil, Quantity: remaining})
	}
	return steps
}

func rank(candidates []model.PickableStock, mode constant.PickingMode) []model.PickableStock {
	ranked := make([]model.PickableStock, len(candidates))
	copy(ranked, candidates)

	if mode == constant.PickingModeShipment {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].QuantityReserved.GreaterThan(ranked[j].QuantityReserved)
		})
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return typeRank(ranked[i].LocationType) < typeRank(ranked[j].LocationType)
	})
	return ranked
}

// typeRank puts unknown location types after every known one.
func typeRank(t constant.LocationType) int {
	if r, ok := constant.LocationTypeRank[t]; ok {
		return r
	}
	return len(constant.LocationTypeRank) + 1
}
