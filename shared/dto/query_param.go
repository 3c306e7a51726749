package dto

import (
	"net/http"
	"strconv"
	"strings"

	"agenda/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`

	// TieBreak orders rows that share the SortBy value. Set by repositories, never by callers.
	TieBreak string `json:"-"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string. Values that do not
// parse are dropped. With withDefaults a missing page or limit falls back to the configured
// defaults; the limit is capped at constant.MaxValueLimit either way.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	q.Page = positive(query.Get(constant.RequestParamPage), q.Page)
	q.Limit = min(positive(query.Get(constant.RequestParamLimit), q.Limit), constant.MaxValueLimit)

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// DefaultSort applies a listing's natural order when the caller asked for none.
func (q *QueryParams) DefaultSort(by, dir string) {
	if q.SortBy != "" {
		return
	}

	q.SortBy = by
	q.SortDir = dir
}

func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positive(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
