package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	location atomic.Pointer[time.Location]
	clock    atomic.Pointer[func() time.Time]
)

// Init loads the shop's calendar location. An empty name means UTC.
func Init(name string) error {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		location.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		location.Store(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	location.Store(loc)
	log.Info().Str("timezone", name).Msg("Application timezone initialized")

	return nil
}

// Location is UTC until Init succeeds.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now is the current wall clock in the application location.
func Now() time.Time {
	now := time.Now
	if fixed := clock.Load(); fixed != nil {
		now = *fixed
	}

	return now().In(Location())
}

// SetClock replaces the clock behind Now until the returned restore func runs.
func SetClock(now func() time.Time) (restore func()) {
	previous := clock.Swap(&now)

	return func() { clock.Store(previous) }
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

// Parse reads value as a wall clock in the application location.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
