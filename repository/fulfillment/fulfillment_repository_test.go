package fulfillment

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(t *testing.T) (*SQL, *sqlx.Tx, sqlmock.Sqlmock) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(raw, "mysql")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	return &SQL{conn: db}, tx, mock
}

func TestSQL_AddTx(t *testing.T) {
	repo, tx, mock := newTx(t)
	mock.ExpectExec(regexp.QuoteMeta(insertReservationQuery)).
		WithArgs(uint64(1), uint64(500), "SKU-1", uint64(10), uint64(5), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	rec := &model.OrderReservation{TenantID: 1, OrderID: 500, ProductRef: "SKU-1", ItemID: 10, LocationID: 5, Quantity: decimal.NewFromInt(3)}
	require.NoError(t, repo.AddTx(context.Background(), tx, rec))
	assert.Equal(t, uint64(42), rec.ID)
}

func TestSQL_ReduceTx(t *testing.T) {
	tests := []struct {
		name      string
		remaining decimal.Decimal
		mockCall  func(mock sqlmock.Sqlmock)
	}{
		{
			name:      "success: partial release keeps the record",
			remaining: decimal.NewFromInt(2),
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(updateReservationQuery)).
					WithArgs(sqlmock.AnyArg(), uint64(9)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:      "success: full release deletes the record",
			remaining: decimal.Zero,
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(deleteReservationQuery)).
					WithArgs(uint64(9)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, tx, mock := newTx(t)
			tt.mockCall(mock)
			require.NoError(t, repo.ReduceTx(context.Background(), tx, 9, tt.remaining))
		})
	}
}
