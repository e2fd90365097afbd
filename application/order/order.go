package order

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	applocation "github.com/muhammadheryan/stock-ledger/application/location"
	"github.com/muhammadheryan/stock-ledger/application/picking"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	catalogrepo "github.com/muhammadheryan/stock-ledger/repository/catalog"
	fulfillmentrepo "github.com/muhammadheryan/stock-ledger/repository/fulfillment"
	ordereventrepo "github.com/muhammadheryan/stock-ledger/repository/orderevent"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	stockrepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/utils/metrics"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultConflictBackoff = 20 * time.Millisecond

// ResultPublisher announces reservation results to downstream services.
type ResultPublisher interface {
	PublishReservationResult(ctx context.Context, result *model.ReservationResult) error
}

// OrderApp keeps soft reservations in step with the lifecycle of external orders.
// Handlers are idempotent under redelivery and ignore events that arrive after a newer version.
type OrderApp interface {
	HandleOrderEvent(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error)
	HandleOrderConfirmed(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error)
	HandleOrderUpdated(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error)
	HandleOrderCancelled(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error)
}

type orderAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	stockRepo       stockrepo.StockRepository
	catalogRepo     catalogrepo.CatalogRepository
	fulfillmentRepo fulfillmentrepo.FulfillmentRepository
	orderEventRepo  ordereventrepo.OrderEventRepository
	redisRepo       redisrepo.Repository
	defaultLocation applocation.DefaultLocationPolicy
	publisher       ResultPublisher
}

func NewOrderApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	stockRepo stockrepo.StockRepository,
	catalogRepo catalogrepo.CatalogRepository,
	fulfillmentRepo fulfillmentrepo.FulfillmentRepository,
	orderEventRepo ordereventrepo.OrderEventRepository,
	redisRepo redisrepo.Repository,
	defaultLocation applocation.DefaultLocationPolicy,
	publisher ResultPublisher,
) OrderApp {
	return &orderAppImpl{
		config:          config,
		txRepo:          txRepo,
		stockRepo:       stockRepo,
		catalogRepo:     catalogRepo,
		fulfillmentRepo: fulfillmentRepo,
		orderEventRepo:  orderEventRepo,
		redisRepo:       redisRepo,
		defaultLocation: defaultLocation,
		publisher:       publisher,
	}
}

func (s *orderAppImpl) HandleOrderEvent(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error) {
	if ev == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	switch ev.EventType {
	case constant.OrderEventConfirmed:
		return s.HandleOrderConfirmed(ctx, ev)
	case constant.OrderEventUpdated:
		return s.HandleOrderUpdated(ctx, ev)
	case constant.OrderEventCancelled:
		return s.HandleOrderCancelled(ctx, ev)
	default:
		logger.Warn("[HandleOrderEvent] unknown event type", zap.String("event_type", string(ev.EventType)), zap.Uint64("order_id", ev.OrderID))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
}

// HandleOrderConfirmed plans each line in picking mode and soft-reserves every step.
// The backorder remainder is reserved on the warehouse GENERAL location. Quantities already
// reserved for the order (an Updated delivered first) are subtracted before planning.
func (s *orderAppImpl) HandleOrderConfirmed(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error) {
	return s.handle(ctx, "HandleOrderConfirmed", constant.OrderEventConfirmed, ev, s.applyConfirmed)
}

// HandleOrderUpdated reserves positive deltas on GENERAL and releases negative ones.
// Products that left the order are released completely.
func (s *orderAppImpl) HandleOrderUpdated(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error) {
	return s.handle(ctx, "HandleOrderUpdated", constant.OrderEventUpdated, ev, s.applyUpdated)
}

// HandleOrderCancelled releases everything recorded for the order, at the locations
// where it was reserved.
func (s *orderAppImpl) HandleOrderCancelled(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error) {
	return s.handle(ctx, "HandleOrderCancelled", constant.OrderEventCancelled, ev, s.applyCancelled)
}

type applyFunc func(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent, book *reservationBook) ([]model.LineReservation, error)

func (s *orderAppImpl) handle(ctx context.Context, op string, eventType constant.OrderEventType, ev *model.OrderEvent, apply applyFunc) (*model.ReservationResult, error) {
	if err := validateEvent(ev, eventType); err != nil {
		return nil, err
	}
	key := eventKey(ev)

	processed, err := s.redisRepo.IsEventProcessed(ctx, key)
	if err != nil {
		logger.Warn("["+op+"] redis lookup failed, falling back to database", zap.String("event", key), zap.String("error", err.Error()))
	}
	if processed {
		logger.Info("["+op+"] duplicate event", zap.String("event", key))
		result := newResult(ev, constant.ReservationDuplicate, nil)
		metrics.ObserveReservation(result)
		return result, nil
	}

	var result *model.ReservationResult
	err = retry.Do(ctx, s.conflictBackoff(), func(ctx context.Context) error {
		var err error
		result, err = s.process(ctx, op, ev, apply)
		if errors.IsType(err, constant.ErrConcurrencyConflict) {
			metrics.ObserveConflict(op)
			logger.Warn("["+op+"] concurrent stock update, retrying", zap.String("event", key))
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Outcome != constant.ReservationStale {
		if err := s.redisRepo.MarkEventProcessed(ctx, key, s.config.Reservation.ProcessedEventTTL); err != nil {
			logger.Warn("["+op+"] mark event processed in redis", zap.String("event", key), zap.String("error", err.Error()))
		}
	}
	metrics.ObserveReservation(result)
	if result.Outcome != constant.ReservationDuplicate && result.Outcome != constant.ReservationStale && s.publisher != nil {
		if err := s.publisher.PublishReservationResult(ctx, result); err != nil {
			logger.Error("["+op+"] publish reservation result", zap.String("event", key), zap.String("error", err.Error()))
		}
	}
	return result, nil
}

// process runs one attempt of an event in a single transaction.
func (s *orderAppImpl) process(ctx context.Context, op string, ev *model.OrderEvent, apply applyFunc) (*model.ReservationResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if ev.EventType != constant.OrderEventCancelled {
		latest, found, err := s.orderEventRepo.LatestVersionTx(ctx, tx, ev.TenantID, ev.OrderID)
		if err != nil {
			return nil, s.fail(op, err)
		}
		if found && ev.Version < latest {
			logger.Info("["+op+"] stale event", zap.Uint64("order_id", ev.OrderID), zap.Int64("version", ev.Version), zap.Int64("latest", latest))
			return newResult(ev, constant.ReservationStale, nil), nil
		}
		cancelled, err := s.orderEventRepo.IsCancelledTx(ctx, tx, ev.TenantID, ev.OrderID)
		if err != nil {
			return nil, s.fail(op, err)
		}
		if cancelled {
			logger.Info("["+op+"] order already cancelled", zap.Uint64("order_id", ev.OrderID))
			return newResult(ev, constant.ReservationStale, nil), nil
		}
	}

	marked, err := s.orderEventRepo.MarkProcessedTx(ctx, tx, ev)
	if err != nil {
		return nil, s.fail(op, err)
	}
	if !marked {
		logger.Info("["+op+"] duplicate event", zap.String("event", eventKey(ev)))
		return newResult(ev, constant.ReservationDuplicate, nil), nil
	}

	records, err := s.fulfillmentRepo.ListByOrderTx(ctx, tx, ev.TenantID, ev.OrderID)
	if err != nil {
		return nil, s.fail(op, err)
	}
	book := newReservationBook(records)

	lines, err := apply(ctx, tx, ev, book)
	if err != nil {
		return nil, s.fail(op, err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	metrics.ObserveMovements(book.movements...)

	result := newResult(ev, overallOutcome(ev.EventType, lines), lines)
	logger.Info("["+op+"] order event applied",
		zap.Uint64("order_id", ev.OrderID),
		zap.Int64("version", ev.Version),
		zap.String("outcome", string(result.Outcome)))
	return result, nil
}

func (s *orderAppImpl) applyConfirmed(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent, book *reservationBook) ([]model.LineReservation, error) {
	refs, requested := ev.RequestedByProduct()
	lines := make([]model.LineReservation, 0, len(refs))
	for _, ref := range refs {
		line := model.LineReservation{ProductRef: ref, Requested: requested[ref]}

		item, err := s.resolveItem(ctx, ev, ref, book)
		if err != nil {
			return nil, err
		}
		if item == 0 {
			lines = append(lines, skippedLine(line, "unknown product"))
			continue
		}
		line.ItemID = item

		need := line.Requested.Sub(book.total(ref))
		if !need.IsPositive() {
			line.Outcome = constant.ReservationUnchanged
			lines = append(lines, line)
			continue
		}

		candidates, err := s.stockRepo.FindPickableStocksTx(ctx, tx, ev.TenantID, item, ev.WarehouseID)
		if err != nil {
			return nil, err
		}
		for i := range candidates {
			if book.level(item, candidates[i].LocationID) == nil {
				book.keep(&candidates[i].StockLevel)
			}
		}

		for _, step := range picking.BuildPlan(candidates, need, constant.PickingModePicking) {
			var locationID uint64
			if step.IsBackorder() {
				if locationID, err = s.defaultLocation.EnsureDefaultLocationTx(ctx, tx, ev.WarehouseID); err != nil {
					return nil, err
				}
			} else {
				locationID = *step.LocationID
			}

			// soft reservations never fail for shortage; the plan already sized every step
			if err := s.reserveAt(ctx, tx, ev, ref, item, locationID, step.Quantity, book); err != nil {
				return nil, err
			}
			line.Reserved = line.Reserved.Add(step.Quantity)
			if step.IsBackorder() {
				line.Backorder = line.Backorder.Add(step.Quantity)
			}
		}
		line.Outcome = reservedOutcome(line)
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *orderAppImpl) applyUpdated(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent, book *reservationBook) ([]model.LineReservation, error) {
	refs, requested := ev.RequestedByProduct()
	lines := make([]model.LineReservation, 0, len(refs))
	for _, ref := range refs {
		line := model.LineReservation{ProductRef: ref, Requested: requested[ref]}
		delta := line.Requested.Sub(book.total(ref))

		switch {
		case delta.IsZero():
			line.ItemID = book.item(ref)
			line.Outcome = constant.ReservationUnchanged

		case delta.IsNegative():
			released, err := s.release(ctx, tx, ev, ref, delta.Neg(), book)
			if err != nil {
				return nil, err
			}
			line.ItemID = book.item(ref)
			line.Released = released
			line.Outcome = constant.ReservationReleased

		default:
			item, err := s.resolveItem(ctx, ev, ref, book)
			if err != nil {
				return nil, err
			}
			if item == 0 {
				lines = append(lines, skippedLine(line, "unknown product"))
				continue
			}
			line.ItemID = item

			locationID, err := s.defaultLocation.EnsureDefaultLocationTx(ctx, tx, ev.WarehouseID)
			if err != nil {
				return nil, err
			}
			level, err := s.loadLevel(ctx, tx, ev.TenantID, item, locationID, book)
			if err != nil {
				return nil, err
			}
			shortage := delta
			if level != nil {
				shortage = decimal.Max(delta.Sub(decimal.Max(level.Available(), decimal.Zero)), decimal.Zero)
			}
			if err := s.reserveAt(ctx, tx, ev, ref, item, locationID, delta, book); err != nil {
				return nil, err
			}
			line.Reserved = delta
			line.Backorder = shortage
			line.Outcome = reservedOutcome(line)
		}
		lines = append(lines, line)
	}

	// products no longer on the order
	for _, ref := range book.products() {
		if _, ok := requested[ref]; ok {
			continue
		}
		total := book.total(ref)
		if !total.IsPositive() {
			continue
		}
		released, err := s.release(ctx, tx, ev, ref, total, book)
		if err != nil {
			return nil, err
		}
		lines = append(lines, model.LineReservation{
			ProductRef: ref,
			ItemID:     book.item(ref),
			Requested:  decimal.Zero,
			Released:   released,
			Outcome:    constant.ReservationReleased,
			Reason:     "removed from order",
		})
	}
	return lines, nil
}

func (s *orderAppImpl) applyCancelled(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent, book *reservationBook) ([]model.LineReservation, error) {
	refs, requested := ev.RequestedByProduct()
	for _, ref := range book.products() {
		if _, ok := requested[ref]; !ok {
			refs = append(refs, ref)
		}
	}

	lines := make([]model.LineReservation, 0, len(refs))
	for _, ref := range refs {
		line := model.LineReservation{ProductRef: ref, Requested: requested[ref], ItemID: book.item(ref)}
		total := book.total(ref)
		if !total.IsPositive() {
			lines = append(lines, skippedLine(line, "nothing reserved"))
			continue
		}
		released, err := s.release(ctx, tx, ev, ref, total, book)
		if err != nil {
			return nil, err
		}
		line.Released = released
		line.Outcome = constant.ReservationReleased
		lines = append(lines, line)
	}
	return lines, nil
}

// loadLevel prefers the copy already saved in this transaction, whose version is current.
func (s *orderAppImpl) loadLevel(ctx context.Context, tx *sqlx.Tx, tenantID, itemID, locationID uint64, book *reservationBook) (*model.StockLevel, error) {
	if level := book.level(itemID, locationID); level != nil {
		return level, nil
	}
	level, err := s.stockRepo.FindByLocationTx(ctx, tx, tenantID, itemID, locationID)
	if err != nil || level == nil {
		return nil, err
	}
	book.keep(level)
	return level, nil
}

// reserveAt soft-reserves qty on the stock level at locationID, creating the level when absent,
// and records the reservation for the order.
func (s *orderAppImpl) reserveAt(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent, ref string, itemID, locationID uint64, qty decimal.Decimal, book *reservationBook) error {
	level, err := s.loadLevel(ctx, tx, ev.TenantID, itemID, locationID, book)
	if err != nil {
		return err
	}
	if level == nil {
		level = model.NewStockLevel(s.stockRepo.NextID(), ev.TenantID, itemID, ev.WarehouseID, locationID)
	}

	movement, err := level.ReserveSoft(qty, orderReference(ev.OrderID))
	if err != nil {
		return err
	}
	if err := s.stockRepo.SaveTx(ctx, tx, level, []*model.Movement{movement}); err != nil {
		return err
	}
	book.keep(level)

	record := &model.OrderReservation{
		TenantID:   ev.TenantID,
		OrderID:    ev.OrderID,
		ProductRef: ref,
		ItemID:     itemID,
		LocationID: locationID,
		Quantity:   qty,
	}
	if err := s.fulfillmentRepo.AddTx(ctx, tx, record); err != nil {
		return err
	}
	book.add(*record, movement)
	return nil
}

// release gives back up to qty of the product's reservations, newest first, at the
// locations where they were made. It returns the quantity taken off the records.
func (s *orderAppImpl) release(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent, ref string, qty decimal.Decimal, book *reservationBook) (decimal.Decimal, error) {
	released := decimal.Zero
	remaining := qty
	for _, rec := range book.newestFirst(ref) {
		if !remaining.IsPositive() {
			break
		}
		take := decimal.Min(rec.Quantity, remaining)

		level, err := s.loadLevel(ctx, tx, ev.TenantID, rec.ItemID, rec.LocationID, book)
		if err != nil {
			return released, err
		}
		if level == nil {
			logger.Warn("[ReleaseReservation] stock level missing, dropping record",
				zap.Uint64("order_id", ev.OrderID), zap.String("product_ref", ref), zap.Uint64("location_id", rec.LocationID))
		} else {
			movement, err := level.ReleaseSoftReservation(take, orderReference(ev.OrderID))
			if err != nil {
				return released, err
			}
			if movement != nil {
				if err := s.stockRepo.SaveTx(ctx, tx, level, []*model.Movement{movement}); err != nil {
					return released, err
				}
				book.movements = append(book.movements, movement)
			}
		}

		left := rec.Quantity.Sub(take)
		if err := s.fulfillmentRepo.ReduceTx(ctx, tx, rec.ID, left); err != nil {
			return released, err
		}
		book.reduce(rec.ID, left)
		released = released.Add(take)
		remaining = remaining.Sub(take)
	}
	return released, nil
}

// resolveItem returns 0 when the product is unknown to the catalog.
func (s *orderAppImpl) resolveItem(ctx context.Context, ev *model.OrderEvent, ref string, book *reservationBook) (uint64, error) {
	if id := book.item(ref); id != 0 {
		return id, nil
	}
	item, err := s.catalogRepo.ResolveItem(ctx, ev.TenantID, ref)
	if err != nil {
		return 0, err
	}
	if item == nil {
		logger.Warn("[ResolveItem] unresolvable product, line skipped", zap.Uint64("order_id", ev.OrderID), zap.String("product_ref", ref))
		return 0, nil
	}
	return item.ItemID, nil
}

func (s *orderAppImpl) conflictBackoff() retry.Backoff {
	base := s.config.Reservation.ConflictBackoff
	if base <= 0 {
		base = defaultConflictBackoff
	}
	return retry.WithMaxRetries(s.config.Reservation.ConflictRetries, retry.WithJitterPercent(20, retry.NewExponential(base)))
}

// fail passes typed errors through and hides everything else behind ErrInternal.
func (s *orderAppImpl) fail(op string, err error) error {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	logger.Error("["+op+"] failed", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func validateEvent(ev *model.OrderEvent, eventType constant.OrderEventType) error {
	if ev == nil || ev.EventType != eventType || ev.TenantID == 0 || ev.OrderID == 0 || ev.WarehouseID == 0 || ev.Version < 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, line := range ev.Lines {
		if line.ProductRef == "" || line.Quantity.IsNegative() {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	return nil
}

func eventKey(ev *model.OrderEvent) string {
	return fmt.Sprintf("%d:%d:%s:%d", ev.TenantID, ev.OrderID, ev.EventType, ev.Version)
}

func orderReference(orderID uint64) string {
	return fmt.Sprintf("order:%d", orderID)
}

func newResult(ev *model.OrderEvent, outcome constant.ReservationOutcome, lines []model.LineReservation) *model.ReservationResult {
	if lines == nil {
		lines = []model.LineReservation{}
	}
	return &model.ReservationResult{
		OrderID:   ev.OrderID,
		TenantID:  ev.TenantID,
		EventType: ev.EventType,
		Version:   ev.Version,
		Outcome:   outcome,
		Lines:     lines,
	}
}

func skippedLine(line model.LineReservation, reason string) model.LineReservation {
	line.Outcome = constant.ReservationSkipped
	line.Reason = reason
	return line
}

func reservedOutcome(line model.LineReservation) constant.ReservationOutcome {
	switch {
	case !line.Reserved.IsPositive():
		return constant.ReservationUnchanged
	case !line.Backorder.IsPositive():
		return constant.ReservationFullyReserved
	case line.Backorder.GreaterThanOrEqual(line.Reserved):
		return constant.ReservationBackordered
	default:
		return constant.ReservationPartiallyReserved
	}
}

func overallOutcome(eventType constant.OrderEventType, lines []model.LineReservation) constant.ReservationOutcome {
	count := make(map[constant.ReservationOutcome]int, len(lines))
	for _, line := range lines {
		count[line.Outcome]++
	}
	full := count[constant.ReservationFullyReserved]
	partial := count[constant.ReservationPartiallyReserved]
	back := count[constant.ReservationBackordered]

	switch {
	case len(lines) == 0:
		return constant.ReservationUnchanged
	case partial > 0 || (back > 0 && full > 0):
		return constant.ReservationPartiallyReserved
	case back > 0:
		return constant.ReservationBackordered
	case full > 0:
		return constant.ReservationFullyReserved
	case count[constant.ReservationReleased] > 0:
		return constant.ReservationReleased
	case eventType != constant.OrderEventCancelled && count[constant.ReservationSkipped] == len(lines):
		return constant.ReservationSkipped
	default:
		return constant.ReservationUnchanged
	}
}
