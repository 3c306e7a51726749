package scheduling

import (
	"errors"
	"fmt"
	"time"

	appointmentModel "agenda/internal/domains/appointment/model"
	blockRuleModel "agenda/internal/domains/blockrule/model"
	"agenda/shared/timezone"
)

var ErrInvalidDayWindow = errors.New("invalid day window")

// Snapshot is the state of one calendar the engine decides against.
type Snapshot struct {
	Appointments []appointmentModel.Appointment
	Rules        []blockRuleModel.BlockRule
	Catalog      Catalog
}

// DayWindow bounds slot enumeration: starts are aligned to Granularity inside [Start, End).
type DayWindow struct {
	Start       int
	End         int
	Granularity int
}

func NewDayWindow(start, end string, granularity int) (DayWindow, error) {
	startMinutes, err := timezone.ToMinutes(start)
	if err != nil {
		return DayWindow{}, fmt.Errorf("failed to parse day start: %w", err)
	}

	endMinutes, err := timezone.ToMinutes(end)
	if err != nil {
		return DayWindow{}, fmt.Errorf("failed to parse day end: %w", err)
	}

	if startMinutes >= endMinutes || granularity <= 0 {
		return DayWindow{}, ErrInvalidDayWindow
	}

	return DayWindow{Start: startMinutes, End: endMinutes, Granularity: granularity}, nil
}

// Conflict names what keeps a requested interval from being booked.
type Conflict int

const (
	NoConflict Conflict = iota
	ConflictBlocked
	ConflictOccupied
)

func (c Conflict) String() string {
	switch c {
	case ConflictBlocked:
		return "blocked"
	case ConflictOccupied:
		return "occupied"
	default:
		return "none"
	}
}

// IsSlotAvailable reports whether [start, start+duration) is free of block rules and of
// non-cancelled appointments of the professional on date.
func (s Snapshot) IsSlotAvailable(professionalID string, date timezone.Date, start string, duration int) (bool, error) {
	conflict, err := s.FindConflict(professionalID, date, start, duration)

	return conflict == NoConflict, err
}

// FindConflict is IsSlotAvailable with the cause kept. Block rules win over appointments.
func (s Snapshot) FindConflict(professionalID string, date timezone.Date, start string, duration int) (Conflict, error) {
	if duration <= 0 {
		duration = DefaultDuration
	}

	_, blocked, err := MatchingRule(s.Rules, professionalID, date, start, duration)
	if err != nil {
		return NoConflict, err
	}

	if blocked {
		return ConflictBlocked, nil
	}

	reqStart, err := timezone.ToMinutes(start)
	if err != nil {
		return NoConflict, fmt.Errorf("failed to parse requested start: %w", err)
	}

	reqEnd := reqStart + duration

	for _, appt := range s.Appointments {
		if !appt.Occupies() || appt.ProfessionalID != professionalID || !appt.Date.Equal(date) {
			continue
		}

		apptStart, err := timezone.ToMinutes(appt.Time)
		if err != nil {
			continue
		}

		apptEnd := apptStart + s.Catalog.DurationOf(appt.ServiceID)

		if reqStart < apptEnd && reqEnd > apptStart {
			return ConflictOccupied, nil
		}
	}

	return NoConflict, nil
}

// EnumerateSlots lists the available starts of the day in ascending order. On the current
// date, starts at or before the current minute are left out.
func (s Snapshot) EnumerateSlots(
	professionalID string,
	date timezone.Date,
	duration int,
	window DayWindow,
	now time.Time,
) ([]string, error) {
	if window.Granularity <= 0 || window.Start >= window.End {
		return nil, ErrInvalidDayWindow
	}

	cutoff := -1
	if date.Key() == timezone.DateKey(now) {
		cutoff = timezone.MinuteOfDay(now)
	}

	slots := []string{}

	for minute := window.Start; minute < window.End; minute += window.Granularity {
		if minute <= cutoff {
			continue
		}

		start := timezone.FormatMinutes(minute)

		ok, err := s.IsSlotAvailable(professionalID, date, start, duration)
		if err != nil {
			return nil, err
		}

		if ok {
			slots = append(slots, start)
		}
	}

	return slots, nil
}

// WithCancelled returns a copy of the snapshot in which the appointment no longer occupies its slot.
func (s Snapshot) WithCancelled(appointmentID string) Snapshot {
	appointments := make([]appointmentModel.Appointment, len(s.Appointments))
	copy(appointments, s.Appointments)

	for i := range appointments {
		if appointments[i].ID == appointmentID {
			appointments[i].Status = appointmentModel.StatusCancelled
		}
	}

	return Snapshot{Appointments: appointments, Rules: s.Rules, Catalog: s.Catalog}
}

// Checker adapts the snapshot for the waitlist promoter. Malformed input counts as unavailable.
func (s Snapshot) Checker() AvailabilityFunc {
	return func(professionalID string, date timezone.Date, start string, duration int) bool {
		ok, err := s.IsSlotAvailable(professionalID, date, start, duration)

		return err == nil && ok
	}
}
