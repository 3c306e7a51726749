package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/shared/constant"
	"agenda/shared/dto"
	"agenda/shared/logger"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
	alias string
}

func (c column) selectExpr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return fmt.Sprintf("%s.%s", c.table, c.name)
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// querier is satisfied by both *sqlx.DB and *sqlx.Tx.
type querier interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is the table gateway every domain repository embeds. Column lists come from
// the db/table/column tags of T; models may add a join through GetJoinQuery.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	sortable      map[string]struct{}
	join          string
	insertQuery   string
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	sortable := make(map[string]struct{}, len(columns))

	for _, col := range columns {
		if col.table == tableName {
			sortable[col.name] = struct{}{}
		}
	}

	placeholders := make([]string, len(insertColumns))
	for i, col := range insertColumns {
		placeholders[i] = ":" + col
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		sortable:      sortable,
		join:          joinQuery(zero),
		insertQuery:   fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableName, strings.Join(insertColumns, ", "), strings.Join(placeholders, ", ")),
		InsertColumns: insertColumns,
	}
}

func joinQuery(model any) string {
	method := reflect.ValueOf(model).MethodByName("GetJoinQuery")
	if !method.IsValid() {
		return ""
	}

	out := method.Call([]reflect.Value{})
	if len(out) == 0 {
		return ""
	}

	return out[0].String()
}

func (repo *Repository[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, op)
}

// prepare logs and traces failures so callers only wrap the error.
func (repo *Repository[T]) prepare(ctx context.Context, scope otel.Scope, q querier, query string) (*sqlx.NamedStmt, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := q.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err)
	}

	return stmt, nil
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, exec execer, action, query string, arg any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to %s data (%s): %w", action, repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	return repo.exec(ctx, scope, repo.db.Write, "insert", repo.insertQuery, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertTx"))
	defer scope.End()

	return repo.exec(ctx, scope, sqltx, "insert", repo.insertQuery, model)
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertBulk"))
	defer scope.End()

	return repo.exec(ctx, scope, repo.db.Write, "bulk insert", repo.insertQuery, models)
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("InsertBulkTx"))
	defer scope.End()

	return repo.exec(ctx, scope, sqltx, "bulk insert", repo.insertQuery, models)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	stmt, err := repo.prepare(ctx, scope, repo.db.Read, "SELECT EXISTS(" + statement("SELECT 1 FROM", repo.table, where) + ")")
	if err != nil {
		return false, err
	}
	defer stmt.Close()

	exist := false
	if err := stmt.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return exist, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	return repo.get(ctx, scope, repo.db.Read, "", filter, columns...)
}

// GetTx reads through the transaction and locks the matched row until it ends.
func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetTx"))
	defer scope.End()

	return repo.get(ctx, scope, sqltx, "FOR UPDATE OF "+repo.table, filter, columns...)
}

// get returns the zero T when nothing matches.
func (repo *Repository[T]) get(ctx context.Context, scope otel.Scope, q querier, lock string, filter dto.FilterGroup, columns ...string) (T, error) {
	var model T

	where, args := repo.BuildWhereClause(ctx, filter)
	query := statement("SELECT", repo.getSelectQuery(ctx, columns...), "FROM", repo.table, repo.join, where, lock)

	stmt, err := repo.prepare(ctx, scope, q, query)
	if err != nil {
		return model, err
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	return repo.getAll(ctx, scope, repo.db.Read, params, filter, columns...)
}

func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAllTx"))
	defer scope.End()

	return repo.getAll(ctx, scope, sqltx, params, filter, columns...)
}

func (repo *Repository[T]) getAll(ctx context.Context, scope otel.Scope, q querier, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	models := []T{}

	where, args := repo.BuildWhereClause(ctx, filter)
	query := statement("SELECT", repo.getSelectQuery(ctx, columns...), "FROM", repo.table,
		repo.join, where, repo.ordering(params), pagination(params, args))

	stmt, err := repo.prepare(ctx, scope, q, query)
	if err != nil {
		return models, err
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

// statement joins the non-empty parts of a query with single spaces.
func statement(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " ")
}

// ordering ignores sort columns that do not belong to the entity's own table.
func (repo *Repository[T]) ordering(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	if _, ok := repo.sortable[params.SortBy]; !ok {
		return ""
	}

	order := fmt.Sprintf("ORDER BY %s.%s %s", repo.table, params.SortBy, params.SortDir)

	if _, ok := repo.sortable[params.TieBreak]; ok && params.TieBreak != params.SortBy {
		order += fmt.Sprintf(", %s.%s %s", repo.table, params.TieBreak, params.SortDir)
	}

	return order
}

func pagination(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = params.Offset()

	return "LIMIT :limit OFFSET :offset"
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := statement(fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s", repo.table, repo.primaryColumn, repo.table), repo.join, where)

	stmt, err := repo.prepare(ctx, scope, repo.db.Read, query)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var count int
	if err := stmt.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	return count, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()

	return repo.delete(ctx, scope, repo.db.Write, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("DeleteTx"))
	defer scope.End()

	return repo.delete(ctx, scope, sqltx, filter)
}

func (repo *Repository[T]) delete(ctx context.Context, scope otel.Scope, exec execer, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.exec(ctx, scope, exec, "delete", statement("DELETE FROM", repo.table, where), args)
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	return repo.update(ctx, scope, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("UpdateTx"))
	defer scope.End()

	return repo.update(ctx, scope, sqltx, mod, filter)
}

// update binds the set columns by name, so filter arg names must not collide with them.
func (repo *Repository[T]) update(ctx context.Context, scope otel.Scope, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for col := range maps.Keys(mod) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	slices.Sort(assignments)
	maps.Copy(args, mod)

	query := statement("UPDATE", repo.table, "SET", strings.Join(assignments, ", "), where)

	return repo.exec(ctx, scope, exec, "update", query, args)
}

func (repo *Repository[T]) getSelectQuery(ctx context.Context, only ...string) string {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("getSelectQuery"))
	defer scope.End()

	columns := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		columns = append(columns, col.selectExpr())
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("BuildWhereClause"))
	defer scope.End()

	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return "WHERE " + where, args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		tableField := field.Tag.Get("table")
		if tableField == "" {
			tableField = table
		}

		if tableField == table && field.Tag.Get("insert") != "-" {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: tableField, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: tableField})
		}
	}

	return columns, insertColumns
}
