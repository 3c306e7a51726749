package timezone

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"agenda/shared/constant"
)

var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// ToMinutes converts a strict "HH:MM" string into minutes since midnight.
func ToMinutes(hhmm string) (int, error) {
	if len(hhmm) != len(constant.ClockFormat) || hhmm[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}

	hours, ok := twoDigits(hhmm[0], hhmm[1])
	if !ok || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}

	minutes, ok := twoDigits(hhmm[3], hhmm[4])
	if !ok || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, hhmm)
	}

	return hours*constant.MinutesPerHour + minutes, nil
}

// FormatMinutes is the inverse of ToMinutes for values in [0, 1440).
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/constant.MinutesPerHour, minutes%constant.MinutesPerHour)
}

// WeekDayOf returns the weekday of a calendar date, Sunday = 0.
func WeekDayOf(date time.Time) int {
	return int(date.Weekday())
}

// DateKey renders the value's own year, month and day as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses YYYY-MM-DD into a calendar date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(constant.DateKeyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return date, nil
}

// DateOf strips the clock from t, keeping the calendar date as seen in t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is the calendar date in the application location.
func Today() time.Time {
	return DateOf(Now())
}

// MinuteOfDay returns the minutes elapsed since midnight on t's own clock.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*constant.MinutesPerHour + t.Minute()
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}

	return int(a-'0')*10 + int(b-'0'), true
}

// Date is a calendar day with no clock and no location. It is stored as a DATE column
// and serialised as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFrom keeps the calendar day of t as seen in t's own location.
func DateFrom(t time.Time) Date {
	return Date{DateOf(t)}
}

func ParseDateValue(value string) (Date, error) {
	t, err := ParseDate(value)
	if err != nil {
		return Date{}, err
	}

	return Date{t}, nil
}

func TodayDate() Date {
	return DateFrom(Now())
}

func (d Date) Key() string {
	return DateKey(d.Time)
}

func (d Date) WeekDay() int {
	return WeekDayOf(d.Time)
}

func (d Date) Equal(other Date) bool {
	return d.Key() == other.Key()
}

func (d Date) AddDays(days int) Date {
	return Date{d.Time.AddDate(0, 0, days)}
}

func (d Date) String() string {
	return d.Key()
}

// Value binds the date as text so the session time zone never shifts it.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.Key(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = DateFrom(v)
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}

	return nil
}

func (d *Date) scanText(value string) error {
	if len(value) > len(constant.DateKeyFormat) {
		value = value[:len(constant.DateKeyFormat)]
	}

	parsed, err := ParseDateValue(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Key() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == "null" || value == `""` {
		*d = Date{}

		return nil
	}

	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return fmt.Errorf("invalid date %s, expected YYYY-MM-DD", value)
	}

	parsed, err := ParseDateValue(value[1 : len(value)-1])
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
