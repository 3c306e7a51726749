package shared_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"agenda/infras/otel/mocks"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/constant"
	"agenda/shared/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "numeric one", input: "1", expected: boolPtr(true)},
		{name: "upper case", input: "FALSE", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "negative limit", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "remainder", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name    string  `db:"name"`
		Price   float64 `db:"price"`
		Active  *bool   `db:"active"`
		Ignored string  `db:"-"`
		NoTag   string
	}

	active := false
	result := shared.TransformFields(update{Name: "Haircut", Active: &active, Ignored: "x", NoTag: "y"}, "admin")

	assert.Equal(t, "Haircut", result["name"])
	assert.Equal(t, &active, result["active"])
	assert.NotContains(t, result, "price")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "admin", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 4)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("a1", "id", "appointments")

	require.Len(t, result.Filters, 1)
	assert.Equal(t, dto.Filter{Field: "id", Value: "a1", Operator: dto.FilterOperatorEq, Table: "appointments"}, result.Filters[0])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "appointment:get", shared.BuildCacheKey("appointment:get"))
	assert.Equal(t, "appointment:get:a1", shared.BuildCacheKey("appointment:get", "a1"))
	assert.Equal(t, "slots:b1:2024-03-04", shared.BuildCacheKey("slots", "b1", "2024-03-04"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	byB1 := shared.FilterByField("b1", "professional_id", "appointments")
	byB2 := shared.FilterByField("b2", "professional_id", "appointments")

	first := shared.BuildCacheKeyWithQuery("appointment:gets", params, byB1)

	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("appointment:gets", params, byB1))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("appointment:gets", params, byB2))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("appointment:gets", dto.QueryParams{Page: 2, Limit: 10}, byB1))
	assert.Contains(t, first, "appointment:gets:1:10")
}

func TestInvalidateCaches(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "appointment:gets:1", "a", 60))
	require.NoError(t, redisCache.Save(ctx, "appointment:gets:2", "b", 60))
	require.NoError(t, redisCache.Save(ctx, "catalog:gets:1", "c", 60))

	shared.InvalidateCaches(ctx, redisCache, "appointment:gets")

	assert.False(t, server.Exists("appointment:gets:1"))
	assert.False(t, server.Exists("appointment:gets:2"))
	assert.True(t, server.Exists("catalog:gets:1"))
}

func boolPtr(b bool) *bool {
	return &b
}

func TestIsPqError(t *testing.T) {
	unique := fmt.Errorf("failed to insert data (professional): %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})

	assert.True(t, shared.IsPqError(unique, constant.PqErrorCodeUniqueViolation))
	assert.False(t, shared.IsPqError(unique, constant.PqErrorCodeFkViolation))
	assert.False(t, shared.IsPqError(errors.New("plain"), constant.PqErrorCodeUniqueViolation))
}
