package health

import (
	"context"
	"net/http"
	"time"

	"agenda/infras/postgres"
	"agenda/shared/constant"
	"agenda/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

type Status struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// Health reports 503 when the write database or the cache does not answer a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	status := Status{Postgres: "ok", Redis: "ok"}
	healthy := true

	if err := h.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("postgres health check failed")

		status.Postgres = err.Error()
		healthy = false
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis health check failed")

		status.Redis = err.Error()
		healthy = false
	}

	if !healthy {
		log.Warn().Str("response", constant.ResponseErrorUnhealthy).Msg("service unhealthy")
		response.WithJSON(w, http.StatusServiceUnavailable, status)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}
