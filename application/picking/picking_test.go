package picking_test

import (
	"context"
	"errors"
	"testing"

	apppicking "github.com/muhammadheryan/stock-ledger/application/picking"
	"github.com/muhammadheryan/stock-ledger/constant"
	stockmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/stock"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPickingApp_GetPickingPlan(t *testing.T) {
	level := func(location uint64, onHand int64) model.PickableStock {
		l := model.NewStockLevel("sl", 1, 10, 100, location)
		l.QuantityOnHand = decimal.NewFromInt(onHand)
		return model.PickableStock{StockLevel: *l, LocationType: constant.LocationPicking}
	}

	tests := []struct {
		name          string
		req           *model.PickingPlanRequest
		mockCall      func(repo *stockmocks.StockRepository)
		wantMode      constant.PickingMode
		wantBackorder int64
		wantErr       constant.ErrorType
	}{
		{
			name: "success: mode defaults to picking",
			req:  &model.PickingPlanRequest{TenantID: 1, ItemID: 10, WarehouseID: 100, Quantity: decimal.NewFromInt(60)},
			mockCall: func(repo *stockmocks.StockRepository) {
				repo.On("FindPickableStocks", mock.Anything, uint64(1), uint64(10), uint64(100)).
					Return([]model.PickableStock{level(1, 45), level(2, 20)}, nil).Once()
			},
			wantMode: constant.PickingModePicking,
		},
		{
			name: "success: scarcity is reported as backorder",
			req:  &model.PickingPlanRequest{TenantID: 1, ItemID: 10, WarehouseID: 100, Quantity: decimal.NewFromInt(70), Mode: constant.PickingModeShipment},
			mockCall: func(repo *stockmocks.StockRepository) {
				repo.On("FindPickableStocks", mock.Anything, uint64(1), uint64(10), uint64(100)).
					Return([]model.PickableStock{level(1, 45), level(2, 20)}, nil).Once()
			},
			wantMode:      constant.PickingModeShipment,
			wantBackorder: 5,
		},
		{
			name:    "error: zero quantity",
			req:     &model.PickingPlanRequest{TenantID: 1, ItemID: 10, WarehouseID: 100},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "error: unknown mode",
			req:     &model.PickingPlanRequest{TenantID: 1, ItemID: 10, WarehouseID: 100, Quantity: decimal.NewFromInt(1), Mode: "fastest"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name: "error: repository failure",
			req:  &model.PickingPlanRequest{TenantID: 1, ItemID: 10, WarehouseID: 100, Quantity: decimal.NewFromInt(1)},
			mockCall: func(repo *stockmocks.StockRepository) {
				repo.On("FindPickableStocks", mock.Anything, uint64(1), uint64(10), uint64(100)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := stockmocks.NewStockRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := apppicking.NewPickingApp(repo)

			plan, err := app.GetPickingPlan(context.Background(), tt.req)
			if tt.wantErr != constant.Successful {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.wantErr), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, plan.Mode)
			assert.True(t, plan.Backorder().Equal(decimal.NewFromInt(tt.wantBackorder)))
			assert.True(t, plan.Allocated().Add(plan.Backorder()).Equal(tt.req.Quantity))
		})
	}
}
