package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/waitlist/model"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Waitlist interface {
	Insert(ctx context.Context, entry model.Entry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Entry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
}

func New(db *postgres.Connection, otel otel.Otel) Waitlist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// ArrivalOrder lists entries oldest first. Entries created in the same instant keep insert order.
func ArrivalOrder() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc, TieBreak: model.FieldSeq}
}
