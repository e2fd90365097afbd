package order_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/shopspring/decimal"
)

// store is an in-memory database shared by the fake repositories. BeginTx snapshots it
// and RollbackTx restores the snapshot, so failed attempts leave no trace.
type store struct {
	locations    map[uint64]model.StorageLocation
	levels       map[string]model.StockLevel
	movements    []model.Movement
	reservations []model.OrderReservation
	processed    map[string]model.OrderEvent
	catalog      map[string]uint64

	nextLocationID    uint64
	nextReservationID uint64
	nextLevelID       int

	// conflicts makes the next SaveTx calls fail with a version conflict.
	conflicts int

	snapshot *store
}

func newStore() *store {
	return &store{
		locations:         make(map[uint64]model.StorageLocation),
		levels:            make(map[string]model.StockLevel),
		processed:         make(map[string]model.OrderEvent),
		catalog:           make(map[string]uint64),
		nextLocationID:    100,
		nextReservationID: 1,
	}
}

func (s *store) clone() *store {
	c := &store{
		locations:         make(map[uint64]model.StorageLocation, len(s.locations)),
		levels:            make(map[string]model.StockLevel, len(s.levels)),
		movements:         append([]model.Movement(nil), s.movements...),
		reservations:      append([]model.OrderReservation(nil), s.reservations...),
		processed:         make(map[string]model.OrderEvent, len(s.processed)),
		catalog:           s.catalog,
		nextLocationID:    s.nextLocationID,
		nextReservationID: s.nextReservationID,
		nextLevelID:       s.nextLevelID,
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	for k, v := range s.levels {
		c.levels[k] = v
	}
	for k, v := range s.processed {
		c.processed[k] = v
	}
	return c
}

func (s *store) addLocation(id, warehouseID uint64, code string, t constant.LocationType) {
	s.locations[id] = model.StorageLocation{ID: id, WarehouseID: warehouseID, Code: code, Type: t}
}

func (s *store) addStock(tenantID, itemID, warehouseID, locationID uint64, onHand int64) {
	s.nextLevelID++
	id := fmt.Sprintf("seed-%d", s.nextLevelID)
	level := model.NewStockLevel(id, tenantID, itemID, warehouseID, locationID)
	level.QuantityOnHand = decimal.NewFromInt(onHand)
	level.Version = 1
	s.levels[id] = *level
}

func (s *store) level(tenantID, itemID, locationID uint64) *model.StockLevel {
	for _, l := range s.levels {
		if l.TenantID == tenantID && l.ItemID == itemID && l.LocationID == locationID {
			c := l
			return &c
		}
	}
	return nil
}

func (s *store) locationByCode(warehouseID uint64, code string) *model.StorageLocation {
	for _, l := range s.locations {
		if l.WarehouseID == warehouseID && l.Code == code {
			c := l
			return &c
		}
	}
	return nil
}

type fakeTxRepo struct{ db *store }

func (r *fakeTxRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	r.db.snapshot = r.db.clone()
	return &sqlx.Tx{}, nil
}

func (r *fakeTxRepo) CommitTx(tx *sqlx.Tx) error {
	r.db.snapshot = nil
	return nil
}

func (r *fakeTxRepo) RollbackTx(tx *sqlx.Tx) error {
	if snap := r.db.snapshot; snap != nil {
		conflicts := r.db.conflicts
		*r.db = *snap
		r.db.conflicts = conflicts
	}
	return nil
}

type fakeStockRepo struct{ db *store }

func (r *fakeStockRepo) NextID() string {
	r.db.nextLevelID++
	return fmt.Sprintf("sl-%d", r.db.nextLevelID)
}

func (r *fakeStockRepo) FindByLocationTx(ctx context.Context, tx *sqlx.Tx, tenantID, itemID, locationID uint64) (*model.StockLevel, error) {
	return r.db.level(tenantID, itemID, locationID), nil
}

func (r *fakeStockRepo) FindPickableStocksTx(ctx context.Context, tx *sqlx.Tx, tenantID, itemID, warehouseID uint64) ([]model.PickableStock, error) {
	out := make([]model.PickableStock, 0)
	for _, l := range r.db.levels {
		if l.TenantID != tenantID || l.ItemID != itemID || l.WarehouseID != warehouseID {
			continue
		}
		loc := r.db.locations[l.LocationID]
		out = append(out, model.PickableStock{StockLevel: l, LocationCode: loc.Code, LocationType: loc.Type})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := constant.LocationTypeRank[out[i].LocationType], constant.LocationTypeRank[out[j].LocationType]
		if ri != rj {
			return ri < rj
		}
		return out[i].LocationID < out[j].LocationID
	})
	return out, nil
}

func (r *fakeStockRepo) SaveTx(ctx context.Context, tx *sqlx.Tx, level *model.StockLevel, movements []*model.Movement) error {
	if r.db.conflicts > 0 {
		r.db.conflicts--
		return errors.SetCustomError(constant.ErrConcurrencyConflict)
	}
	if level.IsNew() {
		if r.db.level(level.TenantID, level.ItemID, level.LocationID) != nil {
			return errors.SetCustomError(constant.ErrConcurrencyConflict)
		}
	} else if stored, ok := r.db.levels[level.ID]; !ok || stored.Version != level.Version {
		return errors.SetCustomError(constant.ErrConcurrencyConflict)
	}
	level.Version++
	r.db.levels[level.ID] = *level
	for _, m := range movements {
		if m != nil {
			r.db.movements = append(r.db.movements, *m)
		}
	}
	return nil
}

func (r *fakeStockRepo) FindPickableStocks(ctx context.Context, tenantID, itemID, warehouseID uint64) ([]model.PickableStock, error) {
	return r.FindPickableStocksTx(ctx, nil, tenantID, itemID, warehouseID)
}

func (r *fakeStockRepo) GetByLocation(ctx context.Context, tenantID, itemID, locationID uint64) (*model.StockLevel, error) {
	return r.db.level(tenantID, itemID, locationID), nil
}

func (r *fakeStockRepo) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.Movement, error) {
	return append([]model.Movement(nil), r.db.movements...), nil
}

type fakeLocationRepo struct{ db *store }

func (r *fakeLocationRepo) GetByIDTx(ctx context.Context, tx *sqlx.Tx, locationID uint64) (*model.StorageLocation, error) {
	loc, ok := r.db.locations[locationID]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (r *fakeLocationRepo) FindByCodeTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, code string) (*model.StorageLocation, error) {
	return r.db.locationByCode(warehouseID, code), nil
}

func (r *fakeLocationRepo) CreateTx(ctx context.Context, tx *sqlx.Tx, warehouseID uint64, code string, locationType constant.LocationType) (uint64, error) {
	if r.db.locationByCode(warehouseID, code) != nil {
		return 0, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	r.db.nextLocationID++
	r.db.addLocation(r.db.nextLocationID, warehouseID, code, locationType)
	return r.db.nextLocationID, nil
}

type fakeCatalogRepo struct{ db *store }

func (r *fakeCatalogRepo) ResolveItem(ctx context.Context, tenantID uint64, productRef string) (*model.CatalogItem, error) {
	id, ok := r.db.catalog[productRef]
	if !ok {
		return nil, nil
	}
	return &model.CatalogItem{ItemID: id, TenantID: tenantID, ProductRef: productRef}, nil
}

type fakeFulfillmentRepo struct{ db *store }

func (r *fakeFulfillmentRepo) ListByOrderTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) ([]model.OrderReservation, error) {
	out := make([]model.OrderReservation, 0)
	for _, rec := range r.db.reservations {
		if rec.TenantID == tenantID && rec.OrderID == orderID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeFulfillmentRepo) AddTx(ctx context.Context, tx *sqlx.Tx, reservation *model.OrderReservation) error {
	reservation.ID = r.db.nextReservationID
	r.db.nextReservationID++
	r.db.reservations = append(r.db.reservations, *reservation)
	return nil
}

func (r *fakeFulfillmentRepo) ReduceTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, remaining decimal.Decimal) error {
	for i := range r.db.reservations {
		if r.db.reservations[i].ID != reservationID {
			continue
		}
		if remaining.IsPositive() {
			r.db.reservations[i].Quantity = remaining
		} else {
			r.db.reservations = append(r.db.reservations[:i], r.db.reservations[i+1:]...)
		}
		return nil
	}
	return nil
}

type fakeOrderEventRepo struct{ db *store }

func processedKey(ev *model.OrderEvent) string {
	return fmt.Sprintf("%d/%d/%s/%d", ev.TenantID, ev.OrderID, ev.EventType, ev.Version)
}

func (r *fakeOrderEventRepo) MarkProcessedTx(ctx context.Context, tx *sqlx.Tx, ev *model.OrderEvent) (bool, error) {
	key := processedKey(ev)
	if _, ok := r.db.processed[key]; ok {
		return false, nil
	}
	r.db.processed[key] = *ev
	return true, nil
}

func (r *fakeOrderEventRepo) LatestVersionTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) (int64, bool, error) {
	var latest int64
	found := false
	for _, ev := range r.db.processed {
		if ev.TenantID == tenantID && ev.OrderID == orderID && (!found || ev.Version > latest) {
			latest, found = ev.Version, true
		}
	}
	return latest, found, nil
}

func (r *fakeOrderEventRepo) IsCancelledTx(ctx context.Context, tx *sqlx.Tx, tenantID, orderID uint64) (bool, error) {
	for _, ev := range r.db.processed {
		if ev.TenantID == tenantID && ev.OrderID == orderID && ev.EventType == constant.OrderEventCancelled {
			return true, nil
		}
	}
	return false, nil
}

type fakePublisher struct {
	results []*model.ReservationResult
}

func (p *fakePublisher) PublishReservationResult(ctx context.Context, result *model.ReservationResult) error {
	p.results = append(p.results, result)
	return nil
}
