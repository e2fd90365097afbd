package stock

import (
	"context"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	locationrepo "github.com/muhammadheryan/stock-ledger/repository/location"
	stockrepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/utils/metrics"
	"go.uber.org/zap"
)

// StockApp runs the operator commands. Each command is one transaction that locks
// the affected stock rows, mutates them and persists the state with its movements.
type StockApp interface {
	ReceiveStock(ctx context.Context, req *model.ReceiveStockRequest) (*model.StockMutationResponse, error)
	IssueStock(ctx context.Context, req *model.IssueStockRequest) (*model.StockMutationResponse, error)
	AdjustStock(ctx context.Context, req *model.AdjustStockRequest) (*model.StockMutationResponse, error)
	TransferStock(ctx context.Context, req *model.TransferStockRequest) (*model.TransferStockResponse, error)
	GetStockLevel(ctx context.Context, req *model.StockLevelQuery) (*model.StockLevel, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, error)
}

type stockAppImpl struct {
	txRepo       txrepo.TxRepository
	stockRepo    stockrepo.StockRepository
	locationRepo locationrepo.LocationRepository
}

func NewStockApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, locationRepo locationrepo.LocationRepository) StockApp {
	return &stockAppImpl{txRepo: txRepo, stockRepo: stockRepo, locationRepo: locationRepo}
}

func (s *stockAppImpl) ReceiveStock(ctx context.Context, req *model.ReceiveStockRequest) (*model.StockMutationResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.mutate(ctx, "ReceiveStock", req.TenantID, req.ItemID, req.WarehouseID, req.LocationID, true,
		func(level *model.StockLevel) (*model.Movement, error) {
			return level.Receive(req.Quantity, req.ActorID, req.Reference)
		})
}

func (s *stockAppImpl) IssueStock(ctx context.Context, req *model.IssueStockRequest) (*model.StockMutationResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.mutate(ctx, "IssueStock", req.TenantID, req.ItemID, req.WarehouseID, req.LocationID, false,
		func(level *model.StockLevel) (*model.Movement, error) {
			return level.Issue(req.Quantity, req.ActorID, req.Reference)
		})
}

// AdjustStock sets an absolute count. Counting the quantity already on hand succeeds
// without a movement.
func (s *stockAppImpl) AdjustStock(ctx context.Context, req *model.AdjustStockRequest) (*model.StockMutationResponse, error) {
	if req.NewQuantity.IsNegative() || req.Reason == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.mutate(ctx, "AdjustStock", req.TenantID, req.ItemID, req.WarehouseID, req.LocationID, true,
		func(level *model.StockLevel) (*model.Movement, error) {
			return level.Adjust(req.NewQuantity, req.ActorID, req.Reason)
		})
}

func (s *stockAppImpl) TransferStock(ctx context.Context, req *model.TransferStockRequest) (*model.TransferStockResponse, error) {
	if req.FromLocationID == req.ToLocationID || !req.Quantity.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[TransferStock] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	fromLoc, err := s.warehouseLocation(ctx, tx, req.WarehouseID, req.FromLocationID)
	if err != nil {
		return nil, s.fail("TransferStock", err)
	}
	toLoc, err := s.warehouseLocation(ctx, tx, req.WarehouseID, req.ToLocationID)
	if err != nil {
		return nil, s.fail("TransferStock", err)
	}

	// lock both rows in location order so opposite transfers cannot deadlock
	levels := make(map[uint64]*model.StockLevel, 2)
	for _, locationID := range orderedPair(req.FromLocationID, req.ToLocationID) {
		level, err := s.stockRepo.FindByLocationTx(ctx, tx, req.TenantID, req.ItemID, locationID)
		if err != nil {
			return nil, s.fail("TransferStock", err)
		}
		levels[locationID] = level
	}

	from := levels[req.FromLocationID]
	if from == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	to := levels[req.ToLocationID]
	if to == nil {
		to = model.NewStockLevel(s.stockRepo.NextID(), req.TenantID, req.ItemID, req.WarehouseID, req.ToLocationID)
	}

	out, err := from.TransferOut(req.Quantity, req.ActorID, toLoc.Code, req.Reference, req.Reason)
	if err != nil {
		return nil, s.fail("TransferStock", err)
	}
	in, err := to.TransferIn(req.Quantity, req.ActorID, fromLoc.Code, req.Reference, req.Reason)
	if err != nil {
		return nil, s.fail("TransferStock", err)
	}

	if err := s.stockRepo.SaveTx(ctx, tx, from, []*model.Movement{out}); err != nil {
		return nil, s.fail("TransferStock", err)
	}
	if err := s.stockRepo.SaveTx(ctx, tx, to, []*model.Movement{in}); err != nil {
		return nil, s.fail("TransferStock", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[TransferStock] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	metrics.ObserveMovements(out, in)

	return &model.TransferStockResponse{From: from, To: to, Movements: []*model.Movement{out, in}}, nil
}

func (s *stockAppImpl) GetStockLevel(ctx context.Context, req *model.StockLevelQuery) (*model.StockLevel, error) {
	level, err := s.stockRepo.GetByLocation(ctx, req.TenantID, req.ItemID, req.LocationID)
	if err != nil {
		logger.Error("[GetStockLevel] get by location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if level == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return level, nil
}

func (s *stockAppImpl) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, error) {
	if filter.TenantID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	movements, err := s.stockRepo.ListMovements(ctx, filter)
	if err != nil {
		logger.Error("[ListMovements] list movements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movements, nil
}

// mutate runs find → apply → save on a single stock level inside one transaction.
// createIfMissing decides between lazily creating the row and failing with ErrNotFound.
func (s *stockAppImpl) mutate(ctx context.Context, op string, tenantID, itemID, warehouseID, locationID uint64, createIfMissing bool,
	apply func(level *model.StockLevel) (*model.Movement, error)) (*model.StockMutationResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if _, err := s.warehouseLocation(ctx, tx, warehouseID, locationID); err != nil {
		return nil, s.fail(op, err)
	}

	level, err := s.stockRepo.FindByLocationTx(ctx, tx, tenantID, itemID, locationID)
	if err != nil {
		return nil, s.fail(op, err)
	}
	if level == nil {
		if !createIfMissing {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		level = model.NewStockLevel(s.stockRepo.NextID(), tenantID, itemID, warehouseID, locationID)
	}

	movement, err := apply(level)
	if errors.IsType(err, constant.ErrNoAdjustmentNeeded) {
		logger.Info("["+op+"] no adjustment needed", zap.String("stock_level_id", level.ID))
		return &model.StockMutationResponse{StockLevel: level}, nil
	}
	if err != nil {
		return nil, s.fail(op, err)
	}

	if err := s.stockRepo.SaveTx(ctx, tx, level, []*model.Movement{movement}); err != nil {
		return nil, s.fail(op, err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	metrics.ObserveMovements(movement)

	return &model.StockMutationResponse{StockLevel: level, Movement: movement}, nil
}

// warehouseLocation loads the location and checks it belongs to the warehouse.
func (s *stockAppImpl) warehouseLocation(ctx context.Context, tx *sqlx.Tx, warehouseID, locationID uint64) (*model.StorageLocation, error) {
	loc, err := s.locationRepo.GetByIDTx(ctx, tx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.WarehouseID != warehouseID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return loc, nil
}

// fail passes typed errors through and hides everything else behind ErrInternal.
func (s *stockAppImpl) fail(op string, err error) error {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		if ce.Type() == constant.ErrConcurrencyConflict {
			metrics.ObserveConflict(op)
			logger.Warn("["+op+"] concurrent stock update", zap.String("error", err.Error()))
		}
		return ce
	}
	logger.Error("["+op+"] failed", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func orderedPair(a, b uint64) [2]uint64 {
	if a < b {
		return [2]uint64{a, b}
	}
	return [2]uint64{b, a}
}
