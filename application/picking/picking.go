package picking

import (
	"context"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	stockrepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

type PickingApp interface {
	GetPickingPlan(ctx context.Context, req *model.PickingPlanRequest) (*model.PickingPlan, error)
}

type pickingAppImpl struct {
	stockRepo stockrepo.StockRepository
}

func NewPickingApp(stockRepo stockrepo.StockRepository) PickingApp {
	return &pickingAppImpl{stockRepo: stockRepo}
}

// GetPickingPlan is read only: it plans over a snapshot without taking row locks.
func (s *pickingAppImpl) GetPickingPlan(ctx context.Context, req *model.PickingPlanRequest) (*model.PickingPlan, error) {
	if !req.Quantity.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	mode := req.Mode
	if mode == "" {
		mode = constant.PickingModePicking
	}
	if mode != constant.PickingModePicking && mode != constant.PickingModeShipment {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	stocks, err := s.stockRepo.FindPickableStocks(ctx, req.TenantID, req.ItemID, req.WarehouseID)
	if err != nil {
		logger.Error("[GetPickingPlan] find pickable stocks", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PickingPlan{
		ItemID:      req.ItemID,
		WarehouseID: req.WarehouseID,
		Mode:        mode,
		Required:    req.Quantity,
		Steps:       BuildPlan(stocks, req.Quantity, mode),
	}, nil
}
