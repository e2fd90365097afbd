package model_test

import (
	"testing"

	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/stretchr/testify/assert"
)

func TestOrderEvent_RequestedByProduct(t *testing.T) {
	ev := &model.OrderEvent{Lines: []model.OrderLine{
		{ProductRef: "SKU-B", Quantity: qty(2)},
		{ProductRef: "SKU-A", Quantity: qty(5)},
		{ProductRef: "SKU-B", Quantity: qty(3)},
	}}

	refs, totals := ev.RequestedByProduct()

	assert.Equal(t, []string{"SKU-B", "SKU-A"}, refs)
	assert.True(t, totals["SKU-B"].Equal(qty(5)))
	assert.True(t, totals["SKU-A"].Equal(qty(5)))
}

func TestPickingPlan_Totals(t *testing.T) {
	l1 := uint64(1)
	plan := &model.PickingPlan{Steps: []model.PlanStep{
		{LocationID: &l1, Quantity: qty(45)},
		{LocationID: nil, Quantity: qty(15)},
	}}

	assert.True(t, plan.Allocated().Equal(qty(45)))
	assert.True(t, plan.Backorder().Equal(qty(15)))

	empty := &model.PickingPlan{}
	assert.True(t, empty.Backorder().IsZero())
}
