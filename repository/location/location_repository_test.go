package location

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
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

func TestSQL_FindByCodeTx(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectQuery(regexp.QuoteMeta(getLocationBase+" WHERE warehouse_id = ? AND code = ?")).
			WithArgs(uint64(100), constant.DefaultLocationCode).
			WillReturnRows(sqlmock.NewRows([]string{"id", "warehouse_id", "code", "type", "created_at"}).
				AddRow(9, 100, constant.DefaultLocationCode, "picking", time.Now()))

		loc, err := repo.FindByCodeTx(context.Background(), tx, 100, constant.DefaultLocationCode)
		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, uint64(9), loc.ID)
		assert.Equal(t, constant.LocationPicking, loc.Type)
	})

	t.Run("success: unknown code is nil", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectQuery(regexp.QuoteMeta(getLocationBase + " WHERE warehouse_id = ? AND code = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "warehouse_id", "code", "type", "created_at"}))

		loc, err := repo.FindByCodeTx(context.Background(), tx, 100, "A-01")
		require.NoError(t, err)
		assert.Nil(t, loc)
	})
}

func TestSQL_CreateTx(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectExec(regexp.QuoteMeta(insertLocationQuery)).
			WithArgs(uint64(100), "GENERAL", constant.LocationPicking).
			WillReturnResult(sqlmock.NewResult(12, 1))

		id, err := repo.CreateTx(context.Background(), tx, 100, "GENERAL", constant.LocationPicking)
		require.NoError(t, err)
		assert.Equal(t, uint64(12), id)
	})

	t.Run("error: duplicate code is reported as is", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectExec(regexp.QuoteMeta(insertLocationQuery)).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		_, err := repo.CreateTx(context.Background(), tx, 100, "GENERAL", constant.LocationPicking)
		require.Error(t, err)
		assert.True(t, txrepo.IsDuplicateKey(err))
	})
}
