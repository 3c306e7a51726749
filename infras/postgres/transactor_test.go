package postgres_test

import (
	"context"
	"errors"
	"testing"

	"agenda/config"
	"agenda/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) (postgres.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := &postgres.Connection{Write: sqlx.NewDb(db, "postgres")}

	return postgres.NewTransactor(conn), mock
}

func TestWithinTx_Commit(t *testing.T) {
	tx, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := tx.WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(context.Background(), "SELECT pg_advisory_xact_lock(hashtext($1))", "b1|2024-03-04")

		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	tx, mock := newTransactor(t)
	errSlotTaken := errors.New("slot taken")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tx.WithinTx(context.Background(), func(*sqlx.Tx) error {
		return errSlotTaken
	})

	assert.ErrorIs(t, err, errSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	tx, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tx.WithinTx(context.Background(), func(*sqlx.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginFails(t *testing.T) {
	tx, mock := newTransactor(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := tx.WithinTx(context.Background(), func(*sqlx.Tx) error {
		called = true

		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name     string
		endpoint config.Endpoint
		dbName   string
		want     string
	}{
		{
			name:     "plain",
			endpoint: config.Endpoint{Host: "db", Port: "5432", Username: "agenda", Password: "secret", SSLMode: "disable"},
			dbName:   "agenda",
			want:     "postgres://agenda:secret@db:5432/agenda?sslmode=disable",
		},
		{
			name:     "password is escaped",
			endpoint: config.Endpoint{Host: "db", Port: "5432", Username: "agenda", Password: "p@ss/word", SSLMode: "require"},
			dbName:   "staging_agenda",
			want:     "postgres://agenda:p%40ss%2Fword@db:5432/staging_agenda?sslmode=require",
		},
		{
			name:     "session timezone",
			endpoint: config.Endpoint{Host: "db", Port: "5432", Username: "agenda", Password: "secret", SSLMode: "disable", Timezone: "America/Sao_Paulo"},
			dbName:   "agenda",
			want:     "postgres://agenda:secret@db:5432/agenda?sslmode=disable&timezone=America%2FSao_Paulo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postgres.DSN(tt.endpoint, tt.dbName))
		})
	}
}
