package model_test

import (
	"strings"
	"testing"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func newLevel() *model.StockLevel {
	return model.NewStockLevel("sl-1", 1, 10, 100, 1000)
}

func ledgerSum(movements []*model.Movement) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range movements {
		if m.Type.AffectsOnHand() {
			sum = sum.Add(m.QuantityChange)
		}
	}
	return sum
}

func TestStockLevel_ReceiveIssueScenario(t *testing.T) {
	sl := newLevel()
	actor := uint64(7)

	receipt, err := sl.Receive(qty(100), &actor, "PO-1")
	require.NoError(t, err)
	issue, err := sl.Issue(qty(30), nil, "SO-1")
	require.NoError(t, err)

	assert.True(t, sl.QuantityOnHand.Equal(qty(70)))

	assert.Equal(t, constant.MovementReceipt, receipt.Type)
	assert.True(t, receipt.QuantityChange.Equal(qty(100)))
	assert.True(t, receipt.QuantityAfterMove.Equal(qty(100)))
	assert.Equal(t, "PO-1", *receipt.Reference)
	assert.Equal(t, &actor, receipt.ActorID)
	assert.Equal(t, "sl-1", receipt.StockLevelID)

	assert.Equal(t, constant.MovementIssue, issue.Type)
	assert.True(t, issue.QuantityChange.Equal(qty(-30)))
	assert.True(t, issue.QuantityAfterMove.Equal(qty(70)))
	assert.NotEqual(t, receipt.ID, issue.ID)
}

func TestStockLevel_IssueBeyondOnHandLeavesStateUnchanged(t *testing.T) {
	sl := newLevel()
	_, err := sl.Receive(qty(5), nil, "")
	require.NoError(t, err)

	m, err := sl.Issue(qty(6), nil, "")

	assert.Nil(t, m)
	assert.True(t, cerr.IsType(err, constant.ErrInsufficientStock))
	assert.True(t, sl.QuantityOnHand.Equal(qty(5)))
}

func TestStockLevel_IssueIgnoresHardReservation(t *testing.T) {
	sl := newLevel()
	_, err := sl.Receive(qty(10), nil, "")
	require.NoError(t, err)
	sl.QuantityReserved = qty(8)

	_, err = sl.Issue(qty(10), nil, "")

	require.NoError(t, err)
	assert.True(t, sl.QuantityOnHand.IsZero())
}

func TestStockLevel_RejectsNonPositiveQuantities(t *testing.T) {
	sl := newLevel()
	ops := map[string]func() (*model.Movement, error){
		"receive":      func() (*model.Movement, error) { return sl.Receive(qty(0), nil, "") },
		"issue":        func() (*model.Movement, error) { return sl.Issue(qty(-1), nil, "") },
		"transfer out": func() (*model.Movement, error) { return sl.TransferOut(qty(0), nil, "L2", "", "") },
		"transfer in":  func() (*model.Movement, error) { return sl.TransferIn(qty(0), nil, "L1", "", "") },
		"reserve soft": func() (*model.Movement, error) { return sl.ReserveSoft(qty(0), "") },
		"release soft": func() (*model.Movement, error) { return sl.ReleaseSoftReservation(qty(-2), "") },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			m, err := op()
			assert.Nil(t, m)
			assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest), "err = %v", err)
		})
	}
}

func TestStockLevel_Adjust(t *testing.T) {
	sl := newLevel()
	_, err := sl.Receive(qty(50), nil, "")
	require.NoError(t, err)

	m, err := sl.Adjust(qty(45), nil, "cycle count")
	require.NoError(t, err)
	assert.Equal(t, constant.MovementAdjust, m.Type)
	assert.True(t, m.QuantityChange.Equal(qty(-5)))
	assert.True(t, m.QuantityAfterMove.Equal(qty(45)))
	assert.Equal(t, "cycle count", *m.Notes)

	t.Run("same quantity is a no-op", func(t *testing.T) {
		m, err := sl.Adjust(qty(45), nil, "recount")
		assert.Nil(t, m)
		assert.True(t, cerr.IsType(err, constant.ErrNoAdjustmentNeeded))
		assert.True(t, sl.QuantityOnHand.Equal(qty(45)))
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		_, err := sl.Adjust(qty(40), nil, "  ")
		assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest))
	})

	t.Run("negative count rejected", func(t *testing.T) {
		_, err := sl.Adjust(qty(-1), nil, "broken")
		assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest))
	})
}

func TestStockLevel_TransferConservesOnHand(t *testing.T) {
	from := model.NewStockLevel("a", 1, 10, 100, 1)
	to := model.NewStockLevel("b", 1, 10, 100, 2)
	_, err := from.Receive(qty(70), nil, "")
	require.NoError(t, err)
	before := from.QuantityOnHand.Add(to.QuantityOnHand)

	out, err := from.TransferOut(qty(20), nil, "L2", "", "move")
	require.NoError(t, err)
	in, err := to.TransferIn(qty(20), nil, "L1", "", "move")
	require.NoError(t, err)

	assert.True(t, from.QuantityOnHand.Add(to.QuantityOnHand).Equal(before))
	assert.True(t, from.QuantityOnHand.Equal(qty(50)))
	assert.True(t, to.QuantityOnHand.Equal(qty(20)))
	assert.True(t, out.QuantityChange.Add(in.QuantityChange).IsZero())
	assert.Equal(t, "to L2: move", *out.Notes)
	assert.Equal(t, "from L1: move", *in.Notes)
	assert.Nil(t, out.Reference)

	_, err = from.TransferOut(qty(51), nil, "L2", "", "")
	assert.True(t, cerr.IsType(err, constant.ErrInsufficientStock))
}

func TestStockLevel_TransferLongReasonStaysInNotes(t *testing.T) {
	from := model.NewStockLevel("a", 1, 10, 100, 1)
	_, err := from.Receive(qty(5), nil, "")
	require.NoError(t, err)

	reason := strings.Repeat("r", 254)
	out, err := from.TransferOut(qty(1), nil, "L2", "TR-77", reason)
	require.NoError(t, err)

	require.NotNil(t, out.Reference)
	assert.Equal(t, "TR-77", *out.Reference)
	require.NotNil(t, out.Notes)
	assert.Len(t, *out.Notes, model.MaxNotesLength)
	assert.True(t, strings.HasPrefix(*out.Notes, "to L2: rrr"))
}

func TestStockLevel_ReserveSoftBeyondOnHand(t *testing.T) {
	sl := newLevel()
	_, err := sl.Receive(qty(2), nil, "")
	require.NoError(t, err)

	m, err := sl.ReserveSoft(qty(50), "order:500")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.True(t, sl.QuantitySoftReserved.Equal(qty(50)))
	assert.True(t, sl.QuantityOnHand.Equal(qty(2)))
}

func TestStockLevel_SoftReservation(t *testing.T) {
	sl := newLevel()

	m, err := sl.ReserveSoft(qty(15), "SO-9")
	require.NoError(t, err)
	assert.Equal(t, constant.MovementReserveSoft, m.Type)
	assert.True(t, m.QuantityAfterMove.Equal(qty(15)))
	assert.True(t, sl.QuantityOnHand.IsZero(), "soft reservation never touches on hand")

	m, err = sl.ReleaseSoftReservation(qty(20), "SO-9")
	require.NoError(t, err)
	assert.True(t, m.QuantityChange.Equal(qty(-15)), "release is clamped to what is reserved")
	assert.True(t, sl.QuantitySoftReserved.IsZero())

	m, err = sl.ReleaseSoftReservation(qty(5), "SO-9")
	require.NoError(t, err)
	assert.Nil(t, m, "double release leaves no ledger entry")
	assert.True(t, sl.QuantitySoftReserved.IsZero())
}

func TestStockLevel_LedgerCompletenessAndNonNegativity(t *testing.T) {
	sl := newLevel()
	var movements []*model.Movement

	steps := []func() (*model.Movement, error){
		func() (*model.Movement, error) { return sl.Receive(qty(100), nil, "") },
		func() (*model.Movement, error) { return sl.Issue(qty(30), nil, "") },
		func() (*model.Movement, error) { return sl.Issue(qty(80), nil, "") },
		func() (*model.Movement, error) { return sl.TransferOut(qty(20), nil, "L2", "", "") },
		func() (*model.Movement, error) { return sl.ReserveSoft(qty(9), "") },
		func() (*model.Movement, error) { return sl.Adjust(qty(45), nil, "cycle count") },
		func() (*model.Movement, error) { return sl.Adjust(qty(45), nil, "cycle count") },
		func() (*model.Movement, error) { return sl.TransferOut(qty(46), nil, "L2", "", "") },
		func() (*model.Movement, error) { return sl.ReleaseSoftReservation(qty(4), "") },
		func() (*model.Movement, error) { return sl.Issue(qty(45), nil, "") },
	}
	for i, step := range steps {
		m, err := step()
		if err == nil && m != nil {
			movements = append(movements, m)
		}
		require.False(t, sl.QuantityOnHand.IsNegative(), "step %d left negative on hand", i)
		require.True(t, ledgerSum(movements).Equal(sl.QuantityOnHand), "step %d broke ledger completeness", i)
	}
	assert.True(t, sl.QuantitySoftReserved.Equal(qty(5)))
}
