package model

import (
	"errors"

	"agenda/shared/model"
	"agenda/shared/timezone"
)

const (
	TableName  = "block_rules"
	EntityName = "block_rule"

	FieldID             = "id"
	FieldProfessionalID = "professional_id"
	FieldType           = "type"
	FieldScope          = "scope"
	FieldDate           = "date"
	FieldWeekDay        = "week_day"

	AllProfessionals = "all"
)

type Type string

const (
	TypeSingle    Type = "single"
	TypeRecurring Type = "recurring"
)

type Scope string

const (
	ScopeDay  Scope = "day"
	ScopeSlot Scope = "slot"
)

var ErrAmbiguousBlockRule = errors.New("ambiguous block rule")

// BlockRule makes a professional (or everyone) unavailable on a date or on a weekday,
// either for the whole day or for a time range.
type BlockRule struct {
	ID             string         `db:"id"`
	ProfessionalID string         `db:"professional_id"`
	Type           Type           `db:"type"`
	Scope          Scope          `db:"scope"`
	Date           *timezone.Date `db:"date"`
	WeekDay        *int           `db:"week_day"`
	StartTime      *string        `db:"start_time"`
	EndTime        *string        `db:"end_time"`
	Reason         string         `db:"reason"`
	model.Metadata
}

// Validate rejects rules whose match criteria cannot be decided unambiguously.
func (r BlockRule) Validate() error {
	switch r.Type {
	case TypeSingle:
		if r.Date == nil || r.Date.IsZero() || r.WeekDay != nil {
			return ErrAmbiguousBlockRule
		}
	case TypeRecurring:
		if r.WeekDay == nil || r.Date != nil || *r.WeekDay < 0 || *r.WeekDay > 6 {
			return ErrAmbiguousBlockRule
		}
	default:
		return ErrAmbiguousBlockRule
	}

	switch r.Scope {
	case ScopeDay:
		return nil
	case ScopeSlot:
		if _, _, err := r.Interval(); err != nil {
			return ErrAmbiguousBlockRule
		}

		return nil
	default:
		return ErrAmbiguousBlockRule
	}
}

func (r BlockRule) AppliesTo(professionalID string) bool {
	return r.ProfessionalID == AllProfessionals || r.ProfessionalID == professionalID
}

// OnDate reports whether the rule's date criterion covers date.
func (r BlockRule) OnDate(date timezone.Date) bool {
	switch r.Type {
	case TypeSingle:
		return r.Date != nil && r.Date.Equal(date)
	case TypeRecurring:
		return r.WeekDay != nil && *r.WeekDay == date.WeekDay()
	default:
		return false
	}
}

// Interval returns the blocked range in minutes for slot-scoped rules.
func (r BlockRule) Interval() (int, int, error) {
	if r.StartTime == nil || r.EndTime == nil {
		return 0, 0, ErrAmbiguousBlockRule
	}

	start, err := timezone.ToMinutes(*r.StartTime)
	if err != nil {
		return 0, 0, err
	}

	end, err := timezone.ToMinutes(*r.EndTime)
	if err != nil {
		return 0, 0, err
	}

	if start >= end {
		return 0, 0, ErrAmbiguousBlockRule
	}

	return start, end, nil
}
