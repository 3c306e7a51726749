package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"agenda/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Connection splits traffic: listings and reports read from Read, bookings go through Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// DSN renders endpoint as a lib/pq URL. Credentials are escaped.
func DSN(endpoint config.Endpoint, dbName string) string {
	query := url.Values{}
	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + dbName,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(cfg *config.Config, name string, endpoint config.Endpoint) *sqlx.DB {
	pgCfg := cfg.DB.Postgres
	dsn := DSN(endpoint, cfg.DatabaseName(endpoint))

	db := Dial(name, dsn, pgCfg.MaxRetry, time.Duration(pgCfg.RetryWaitTime)*time.Second)

	db.SetMaxIdleConns(pgCfg.Pool.MaxIdle)
	db.SetMaxOpenConns(pgCfg.Pool.MaxOpen)
	db.SetConnMaxLifetime(time.Duration(pgCfg.Pool.MaxLifetimeMinutes) * time.Minute)

	return db
}

// Dial retries sqlx.Connect and exits the process once maxRetry attempts failed.
func Dial(name, dsn string, maxRetry int, wait time.Duration) *sqlx.DB {
	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.Info().Str("name", name).Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("name", name).
			Int("attempt", attempt).
			Int("max_retry", maxRetry).
			Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	log.Fatal().Str("name", name).Msg("Could not connect to database")

	return nil
}
