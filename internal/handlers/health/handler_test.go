package health_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda/infras/postgres"
	"agenda/internal/handlers/health"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Health(t *testing.T) {
	tests := []struct {
		name      string
		pingErr   error
		stopRedis bool
		wantCode  int
		wantBody  string
	}{
		{name: "healthy", wantCode: http.StatusOK, wantBody: `"postgres":"ok"`},
		{name: "database down", pingErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable, wantBody: "connection refused"},
		{name: "cache down", stopRedis: true, wantCode: http.StatusServiceUnavailable, wantBody: `"postgres":"ok"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectPing().WillReturnError(tt.pingErr)

			mr := miniredis.RunT(t)
			client := goRedis.NewClient(&goRedis.Options{Addr: mr.Addr()})
			defer client.Close()

			if tt.stopRedis {
				mr.Close()
			}

			conn := &postgres.Connection{Write: sqlx.NewDb(db, "postgres")}
			handler := health.New(conn, client)

			rec := httptest.NewRecorder()
			handler.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
