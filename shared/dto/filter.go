package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotIn     = "not_in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorBetween   = "between"
	FilterPlainQuery        = "plan"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Range is the value of a between filter. Both bounds are inclusive.
type Range struct {
	From any
	To   any
}

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_in not_eq less_eq greater_eq between"`
	Table    string
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	column := f.Field
	if f.Table != "" {
		column = fmt.Sprintf("%s.%s", f.Table, f.Field)
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	if symbol, ok := comparisons[f.Operator]; ok {
		args[argName] = f.Value

		return fmt.Sprintf("%s %s :%s", column, symbol, argName), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s) ", column, argName), args
	case FilterOperatorIn, FilterOperatorNotIn:
		keyword := "IN"
		if f.Operator == FilterOperatorNotIn {
			keyword = "NOT IN"
		}

		return listClause(column, keyword, argName, f.Value, args)
	case FilterOperatorBetween:
		bounds, ok := f.Value.(Range)
		if !ok {
			return "", args
		}

		args[argName+"_from"] = bounds.From
		args[argName+"_to"] = bounds.To

		return fmt.Sprintf("%s BETWEEN :%s_from AND :%s_to", column, argName, argName), args
	case FilterPlainQuery:
		query, _ := f.Value.(string)

		return fmt.Sprintf("(%s)", query), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

func listClause(column, keyword, argName string, value any, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
		return fmt.Sprintf("%s %s (%s) ", column, keyword, value), args
	}

	if val.Len() == 0 {
		// Nothing is IN an empty set and everything is NOT IN it.
		if keyword == "IN" {
			return "FALSE", args
		}

		return "TRUE", args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		args[fmt.Sprintf("%s_%d", argName, idx)] = val.Index(idx).Interface()

		named[idx] = fmt.Sprintf(":%s_%d", argName, idx)
	}

	return fmt.Sprintf("%s %s (%s) ", column, keyword, strings.Join(named, ", ")), args
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// And groups filters (or nested groups) with AND.
func And(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorAnd, Filters: filters}
}

// Or groups filters (or nested groups) with OR.
func Or(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorOr, Filters: filters}
}

func (f *FilterGroup) Add(filters ...any) {
	if f.Operator == "" {
		f.Operator = FilterGroupOperatorAnd
	}

	f.Filters = append(f.Filters, filters...)
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+f.Operator+" ")), args
}
