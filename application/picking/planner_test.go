package picking

import (
	"testing"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func candidate(locationID uint64, t constant.LocationType, onHand, reserved int64) model.PickableStock {
	level := model.NewStockLevel("sl", 1, 10, 100, locationID)
	level.QuantityOnHand = decimal.NewFromInt(onHand)
	level.QuantityReserved = decimal.NewFromInt(reserved)
	return model.PickableStock{StockLevel: *level, LocationType: t}
}

type wantStep struct {
	location uint64 // 0 marks the backorder step
	qty      int64
}

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name       string
		candidates []model.PickableStock
		required   int64
		mode       constant.PickingMode
		want       []wantStep
	}{
		{
			name: "covered by two picking locations",
			candidates: []model.PickableStock{
				candidate(1, constant.LocationPicking, 45, 0),
				candidate(2, constant.LocationPicking, 20, 0),
			},
			required: 60,
			mode:     constant.PickingModePicking,
			want:     []wantStep{{1, 45}, {2, 15}},
		},
		{
			name: "picking locations drain before bulk regardless of input order",
			candidates: []model.PickableStock{
				candidate(1, constant.LocationBulk, 100, 0),
				candidate(2, constant.LocationReturn, 100, 0),
				candidate(3, constant.LocationPicking, 5, 0),
			},
			required: 8,
			mode:     constant.PickingModePicking,
			want:     []wantStep{{3, 5}, {1, 3}},
		},
		{
			name: "hard reservations reduce availability",
			candidates: []model.PickableStock{
				candidate(1, constant.LocationPicking, 10, 8),
				candidate(2, constant.LocationPicking, 10, 10),
				candidate(3, constant.LocationBulk, 10, 0),
			},
			required: 5,
			mode:     constant.PickingModePicking,
			want:     []wantStep{{1, 2}, {3, 3}},
		},
		{
			name: "shortage becomes trailing backorder",
			candidates: []model.PickableStock{
				candidate(1, constant.LocationPicking, 10, 0),
			},
			required: 25,
			mode:     constant.PickingModePicking,
			want:     []wantStep{{1, 10}, {0, 15}},
		},
		{
			name:     "no candidates backorders everything",
			required: 4,
			mode:     constant.PickingModePicking,
			want:     []wantStep{{0, 4}},
		},
		{
			name: "damaged locations are drained last",
			candidates: []model.PickableStock{
				candidate(1, constant.LocationDamaged, 50, 0),
				candidate(2, constant.LocationOutbound, 3, 0),
				candidate(3, constant.LocationPicking, 10, 0),
			},
			required: 30,
			mode:     constant.PickingModePicking,
			want:     []wantStep{{3, 10}, {2, 3}, {1, 17}},
		},
		{
			name: "ties keep repository order",
			candidates: []model.PickableStock{
				candidate(7, constant.LocationPicking, 2, 0),
				candidate(3, constant.LocationPicking, 2, 0),
				candidate(5, constant.LocationPicking, 2, 0),
			},
			required: 5,
			mode:     constant.PickingModePicking,
			want:     []wantStep{{7, 2}, {3, 2}, {5, 1}},
		},
		{
			name: "shipment drains the most reserved location on raw on hand",
			candidates: []model.PickableStock{
				candidate(1, constant.LocationPicking, 10, 1),
				candidate(2, constant.LocationBulk, 6, 6),
				candidate(3, constant.LocationPicking, 0, 9),
			},
			required: 12,
			mode:     constant.PickingModeShipment,
			want:     []wantStep{{2, 6}, {1, 6}},
		},
		{
			name: "non-positive requirement yields empty plan",
			candidates: []model.PickableStock{
				candidate(1, constant.LocationPicking, 10, 0),
			},
			required: 0,
			mode:     constant.PickingModePicking,
			want:     []wantStep{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			steps := BuildPlan(tt.candidates, decimal.NewFromInt(tt.required), tt.mode)

			got := make([]wantStep, 0, len(steps))
			for _, step := range steps {
				ws := wantStep{qty: step.Quantity.IntPart()}
				if !step.IsBackorder() {
					ws.location = *step.LocationID
				}
				got = append(got, ws)
			}
			assert.Equal(t, tt.want, got)

			if tt.required > 0 {
				total := decimal.Zero
				for _, step := range steps {
					total = total.Add(step.Quantity)
				}
				assert.True(t, total.Equal(decimal.NewFromInt(tt.required)), "plan total %s != required %d", total, tt.required)
			}
		})
	}
}
