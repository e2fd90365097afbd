package orderevent

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
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

func TestSQL_MarkProcessedTx(t *testing.T) {
	ev := &model.OrderEvent{EventType: constant.OrderEventConfirmed, OrderID: 500, TenantID: 1, Version: 2}

	t.Run("success: first delivery", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectExec(regexp.QuoteMeta(insertProcessedQuery)).
			WithArgs(uint64(1), uint64(500), constant.OrderEventConfirmed, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		first, err := repo.MarkProcessedTx(context.Background(), tx, ev)
		require.NoError(t, err)
		assert.True(t, first)
	})

	t.Run("success: redelivery hits the primary key", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectExec(regexp.QuoteMeta(insertProcessedQuery)).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		first, err := repo.MarkProcessedTx(context.Background(), tx, ev)
		require.NoError(t, err)
		assert.False(t, first)
	})
}

func TestSQL_LatestVersionTx(t *testing.T) {
	t.Run("success: no events yet", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectQuery(regexp.QuoteMeta(latestVersionQuery)).
			WithArgs(uint64(1), uint64(500)).
			WillReturnRows(sqlmock.NewRows([]string{"MAX(version)"}).AddRow(nil))

		_, found, err := repo.LatestVersionTx(context.Background(), tx, 1, 500)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("success: latest version", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectQuery(regexp.QuoteMeta(latestVersionQuery)).
			WithArgs(uint64(1), uint64(500)).
			WillReturnRows(sqlmock.NewRows([]string{"MAX(version)"}).AddRow(4))

		latest, found, err := repo.LatestVersionTx(context.Background(), tx, 1, 500)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(4), latest)
	})
}

func TestSQL_IsCancelledTx(t *testing.T) {
	repo, tx, mock := newTx(t)
	mock.ExpectQuery(regexp.QuoteMeta(cancelledCountQuery)).
		WithArgs(uint64(1), uint64(500), constant.OrderEventCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))

	cancelled, err := repo.IsCancelledTx(context.Background(), tx, 1, 500)
	require.NoError(t, err)
	assert.True(t, cancelled)
}
