package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nadeuri-dev/nadeuri/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	s := ConnString(config.Pg{Host: "db", Port: 5433, User: "u", Password: "p", Dbname: "boards"})
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=boards sslmode=disable", s)
}

func TestWithTxOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE boards").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = WithTxOptions(ctx, db, nil, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, "UPDATE boards SET title = $1", "t")
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		fnErr := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectRollback()

		err = WithTxOptions(ctx, db, nil, func(tx *sql.Tx) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		err = WithTxOptions(ctx, db, nil, func(tx *sql.Tx) error { return nil })
		assert.ErrorContains(t, err, "failed to begin transaction")
	})
}
