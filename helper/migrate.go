package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"agenda/config"
	"agenda/infras/postgres"
	"agenda/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	write := config.DB.Postgres.Write
	connectionString := postgres.DSN(write, config.DatabaseName(write))

	if config.DB.Postgres.MigrationTable != "" {
		connectionString += "&x-migrations-table=" + url.QueryEscape(config.DB.Postgres.MigrationTable)
	}

	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString)

	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case "up":
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "down":
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case "step-up":
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case "drop":
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

// AutoMigrate applies pending migrations at startup when DB_POSTGRES_AUTO_MIGRATE is set.
func AutoMigrate(config *config.Config) {
	if !config.DB.Postgres.AutoMigrate {
		return
	}

	if err := Up(config); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
