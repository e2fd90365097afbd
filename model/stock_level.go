package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/shopspring/decimal"
)

// StockLevel is the quantity record of one item at one location for one tenant.
// All mutations go through its methods, each of which returns the Movement it produced.
type StockLevel struct {
	ID                   string          `db:"id" json:"id"`
	TenantID             uint64          `db:"tenant_id" json:"tenant_id"`
	ItemID               uint64          `db:"item_id" json:"item_id"`
	WarehouseID          uint64          `db:"warehouse_id" json:"warehouse_id"`
	LocationID           uint64          `db:"location_id" json:"location_id"`
	QuantityOnHand       decimal.Decimal `db:"quantity_on_hand" json:"quantity_on_hand"`
	QuantityReserved     decimal.Decimal `db:"quantity_reserved" json:"quantity_reserved"`
	QuantitySoftReserved decimal.Decimal `db:"quantity_soft_reserved" json:"quantity_soft_reserved"`
	Version              int64           `db:"version" json:"version"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updated_at"`
}

// NewStockLevel returns an unsaved, zero-quantity stock level. Version 0 marks it as not yet persisted.
func NewStockLevel(id string, tenantID, itemID, warehouseID, locationID uint64) *StockLevel {
	now := time.Now().UTC()
	return &StockLevel{
		ID:                   id,
		TenantID:             tenantID,
		ItemID:               itemID,
		WarehouseID:          warehouseID,
		LocationID:           locationID,
		QuantityOnHand:       decimal.Zero,
		QuantityReserved:     decimal.Zero,
		QuantitySoftReserved: decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func (s *StockLevel) IsNew() bool {
	return s.Version == 0
}

// Available is on hand minus hard reserved.
func (s *StockLevel) Available() decimal.Decimal {
	return s.QuantityOnHand.Sub(s.QuantityReserved)
}

func (s *StockLevel) Receive(qty decimal.Decimal, actorID *uint64, reference string) (*Movement, error) {
	if !qty.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	s.QuantityOnHand = s.QuantityOnHand.Add(qty)
	return s.record(constant.MovementReceipt, qty, s.QuantityOnHand, actorID, reference, ""), nil
}

// Issue decrements on hand. Only on-hand sufficiency is checked; hard reservations do not block it.
func (s *StockLevel) Issue(qty decimal.Decimal, actorID *uint64, reference string) (*Movement, error) {
	if !qty.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if qty.GreaterThan(s.QuantityOnHand) {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}
	s.QuantityOnHand = s.QuantityOnHand.Sub(qty)
	return s.record(constant.MovementIssue, qty.Neg(), s.QuantityOnHand, actorID, reference, ""), nil
}

// Adjust sets on hand to an absolute count. A count equal to the current on hand
// returns ErrNoAdjustmentNeeded and leaves no ledger entry.
func (s *StockLevel) Adjust(newQty decimal.Decimal, actorID *uint64, reason string) (*Movement, error) {
	if newQty.IsNegative() || strings.TrimSpace(reason) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	delta := newQty.Sub(s.QuantityOnHand)
	if delta.IsZero() {
		return nil, errors.SetCustomError(constant.ErrNoAdjustmentNeeded)
	}
	s.QuantityOnHand = newQty
	return s.record(constant.MovementAdjust, delta, s.QuantityOnHand, actorID, "", reason), nil
}

// TransferOut moves qty off this level towards destination. The reason goes to the notes
// after the destination code; reference stays free for a correlation id.
func (s *StockLevel) TransferOut(qty decimal.Decimal, actorID *uint64, destination, reference, reason string) (*Movement, error) {
	if !qty.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if qty.GreaterThan(s.QuantityOnHand) {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}
	s.QuantityOnHand = s.QuantityOnHand.Sub(qty)
	return s.record(constant.MovementTransferOut, qty.Neg(), s.QuantityOnHand, actorID, reference, transferNote("to "+destination, reason)), nil
}

func (s *StockLevel) TransferIn(qty decimal.Decimal, actorID *uint64, source, reference, reason string) (*Movement, error) {
	if !qty.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	s.QuantityOnHand = s.QuantityOnHand.Add(qty)
	return s.record(constant.MovementTransferIn, qty, s.QuantityOnHand, actorID, reference, transferNote("from "+source, reason)), nil
}

// ReserveSoft records provisional demand. It never checks on hand.
func (s *StockLevel) ReserveSoft(qty decimal.Decimal, reference string) (*Movement, error) {
	if !qty.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	s.QuantitySoftReserved = s.QuantitySoftReserved.Add(qty)
	return s.record(constant.MovementReserveSoft, qty, s.QuantitySoftReserved, nil, reference, ""), nil
}

// ReleaseSoftReservation lowers the soft reservation, clamped at zero. Releasing from an
// already empty reservation is a no-op and yields a nil Movement.
func (s *StockLevel) ReleaseSoftReservation(qty decimal.Decimal, reference string) (*Movement, error) {
	if !qty.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	released := decimal.Min(qty, s.QuantitySoftReserved)
	if released.IsZero() {
		return nil, nil
	}
	s.QuantitySoftReserved = s.QuantitySoftReserved.Sub(released)
	return s.record(constant.MovementReleaseSoft, released.Neg(), s.QuantitySoftReserved, nil, reference, ""), nil
}

func (s *StockLevel) record(t constant.MovementType, change, after decimal.Decimal, actorID *uint64, reference, notes string) *Movement {
	now := time.Now().UTC()
	s.UpdatedAt = now
	return &Movement{
		ID:                uuid.NewString(),
		StockLevelID:      s.ID,
		ActorID:           actorID,
		Type:              t,
		QuantityChange:    change,
		QuantityAfterMove: after,
		Reference:         optionalString(reference),
		Notes:             optionalString(notes),
		CreatedAt:         now,
	}
}

// transferNote joins the direction and the reason, cut to the notes column width.
func transferNote(direction, reason string) string {
	note := direction
	if reason != "" {
		note += ": " + reason
	}
	if r := []rune(note); len(r) > MaxNotesLength {
		note = string(r[:MaxNotesLength])
	}
	return note
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
