package order

import (
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/shopspring/decimal"
)

type levelKey struct {
	itemID     uint64
	locationID uint64
}

// reservationBook is the in-transaction view of an order's reservation records and of the
// stock levels already saved while applying the event.
type reservationBook struct {
	records   []model.OrderReservation
	order     []string
	levels    map[levelKey]*model.StockLevel
	movements []*model.Movement
}

// newReservationBook expects records in insertion order.
func newReservationBook(records []model.OrderReservation) *reservationBook {
	b := &reservationBook{levels: make(map[levelKey]*model.StockLevel)}
	for _, rec := range records {
		b.track(rec)
	}
	return b
}

func (b *reservationBook) track(rec model.OrderReservation) {
	for _, ref := range b.order {
		if ref == rec.ProductRef {
			b.records = append(b.records, rec)
			return
		}
	}
	b.order = append(b.order, rec.ProductRef)
	b.records = append(b.records, rec)
}

func (b *reservationBook) add(rec model.OrderReservation, movement *model.Movement) {
	b.track(rec)
	b.movements = append(b.movements, movement)
}

func (b *reservationBook) products() []string {
	return append([]string(nil), b.order...)
}

func (b *reservationBook) total(ref string) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range b.records {
		if rec.ProductRef == ref {
			total = total.Add(rec.Quantity)
		}
	}
	return total
}

func (b *reservationBook) item(ref string) uint64 {
	for _, rec := range b.records {
		if rec.ProductRef == ref {
			return rec.ItemID
		}
	}
	return 0
}

func (b *reservationBook) newestFirst(ref string) []model.OrderReservation {
	out := make([]model.OrderReservation, 0)
	for i := len(b.records) - 1; i >= 0; i-- {
		if b.records[i].ProductRef == ref {
			out = append(out, b.records[i])
		}
	}
	return out
}

// reduce mirrors FulfillmentRepository.ReduceTx.
func (b *reservationBook) reduce(id uint64, remaining decimal.Decimal) {
	for i := range b.records {
		if b.records[i].ID != id {
			continue
		}
		if remaining.IsPositive() {
			b.records[i].Quantity = remaining
			return
		}
		b.records = append(b.records[:i], b.records[i+1:]...)
		return
	}
}

func (b *reservationBook) level(itemID, locationID uint64) *model.StockLevel {
	return b.levels[levelKey{itemID: itemID, locationID: locationID}]
}

func (b *reservationBook) keep(level *model.StockLevel) {
	b.levels[levelKey{itemID: level.ItemID, locationID: level.LocationID}] = level
}
