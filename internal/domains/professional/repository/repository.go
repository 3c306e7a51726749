package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/professional/model"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"
)

type Professional interface {
	Insert(ctx context.Context, professional model.Professional) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Professional, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Professional, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Professional]
}

func New(db *postgres.Connection, otel otel.Otel) Professional {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Professional](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
