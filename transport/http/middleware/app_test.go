package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/config"
	otelMocks "agenda/infras/otel/mocks"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/shared/constant"
	"agenda/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.MaxWrites = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		count         int64
		cacheErr      error
		wantCode      int
		wantRemaining string
		wantKeyPart   string
	}{
		{name: "read under the limit", method: http.MethodGet, count: 2, wantCode: http.StatusOK, wantRemaining: "1", wantKeyPart: "limiter:read"},
		{name: "read over the limit", method: http.MethodGet, count: 4, wantCode: http.StatusTooManyRequests, wantRemaining: "0", wantKeyPart: "limiter:read"},
		{name: "second write is refused", method: http.MethodPost, count: 2, wantCode: http.StatusTooManyRequests, wantRemaining: "0", wantKeyPart: "limiter:write"},
		{name: "cache down lets traffic through", method: http.MethodPost, cacheErr: errors.New("connection refused"), wantCode: http.StatusOK, wantKeyPart: "limiter:write"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)

			cache.EXPECT().
				Increment(gomock.Any(), gomock.Any(), 60).
				DoAndReturn(func(_ context.Context, key string, _ int) (int64, error) {
					assert.Contains(t, key, tt.wantKeyPart)

					return tt.count, tt.cacheErr
				})

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(), cache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/v1/appointments", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl))
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTracing_RequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-42")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(constant.RequestHeaderRequestID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/catalog", nil))

	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}
