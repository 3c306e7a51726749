package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"agenda/infras/otel/mocks"
	"agenda/infras/postgres"
	"agenda/internal/domains/waitlist/model"
	"agenda/internal/domains/waitlist/repository"
	gDto "agenda/shared/dto"
	sModel "agenda/shared/model"
	"agenda/shared/timezone"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (repository.Waitlist, sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock, sqlxDB
}

func TestWaitlist_ArrivalOrderBreaksTiesBySequence(t *testing.T) {
	repo, mock, db := newRepo(t)
	now := time.Now()
	day := timezone.NewDate(2024, time.January, 15)

	columns := []string{"id", "client_name", "client_phone", "service_id", "professional_id", "date", "seq",
		"created_at", "modified_at", "created_by", "modified_by"}

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY waitlist_entries.created_at ASC, waitlist_entries.seq ASC") + "$").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("w1", "Ana", "555", "s1", "any", day.Key(), 1, now, now, "", "").
			AddRow("w2", "Bia", "556", "s1", "b1", day.Key(), 2, now, now, "", ""))

	tx, err := db.Beginx()
	require.NoError(t, err)

	entries, err := repo.GetAllTx(context.Background(), tx, repository.ArrivalOrder(), gDto.FilterGroup{})

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "w1", entries[0].ID)
	assert.Equal(t, int64(2), entries[1].Seq)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitlist_InsertLeavesSequenceToDatabase(t *testing.T) {
	repo, mock, _ := newRepo(t)
	now := time.Now()
	day := timezone.NewDate(2024, time.January, 15)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO waitlist_entries (id, client_name, client_phone, service_id, professional_id, date, created_at, modified_at, created_by, modified_by) VALUES")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), model.Entry{
		ID: "w1", ClientName: "Ana", ClientPhone: "555", ServiceID: "s1",
		ProfessionalID: model.AnyProfessional, Date: day,
		Metadata: sModel.Metadata{CreatedAt: now, ModifiedAt: now},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
