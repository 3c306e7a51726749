package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/blockrule/model"
	gDto "agenda/shared/dto"
	gRepo "agenda/shared/repository"

	"github.com/jmoiron/sqlx"
)

type BlockRule interface {
	Insert(ctx context.Context, rule model.BlockRule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BlockRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockRule, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockRule, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BlockRule]
}

func New(db *postgres.Connection, otel otel.Otel) BlockRule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlockRule](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// ForProfessional selects the rules of one professional plus the rules that apply to everyone.
func ForProfessional(professionalID string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{
		Field:    model.FieldProfessionalID,
		Value:    []string{professionalID, model.AllProfessionals},
		Operator: gDto.FilterOperatorIn,
		Table:    model.TableName,
	})
}
