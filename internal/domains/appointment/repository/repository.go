package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/internal/domains/appointment/model"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/logger"
	gRepo "agenda/shared/repository"
	"agenda/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const queryLockDay = "SELECT pg_advisory_xact_lock(hashtext($1))"

type Appointment interface {
	Insert(ctx context.Context, appointment model.Appointment) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, appointment model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	// LockDay serialises writers of one professional's day until the transaction ends.
	LockDay(ctx context.Context, sqltx *sqlx.Tx, key string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) LockDay(ctx context.Context, sqltx *sqlx.Tx, key string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".LockDay")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLockDay)

	if _, err := sqltx.ExecContext(ctx, queryLockDay, key); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock day %s: %w", key, err)
	}

	return nil
}

// OnDay selects the slot-holding appointments of a professional on a date.
func OnDay(professionalID string, date timezone.Date) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldProfessionalID, Value: professionalID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: date.Key(), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusCancelled), Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
	)
}

// InMonth selects completed appointments whose date falls in [from, to].
func InMonth(from, to timezone.Date) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusCompleted), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: gDto.Range{From: from.Key(), To: to.Key()}, Operator: gDto.FilterOperatorBetween, Table: model.TableName},
	)
}
