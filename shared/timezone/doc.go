// Package timezone holds the application calendar: the configured location and the
// helpers that turn wall-clock strings and naive dates into comparable values.
//
// The location comes from APP_TIMEZONE and is loaded when the package is imported.
// Use IANA names such as "UTC", "America/Sao_Paulo" or "Asia/Jakarta".
//
// Calendar dates are carried as time.Time values at midnight UTC. Their year, month
// and day fields are the calendar date; they are never shifted between locations:
//
//	d, err := timezone.ParseDate("2024-03-04")
//	timezone.DateKey(d)   // "2024-03-04"
//	timezone.WeekDayOf(d) // 1 (Monday)
//
// Times of day are "HH:MM" strings compared as minutes since midnight:
//
//	m, err := timezone.ToMinutes("09:30") // 570
//	timezone.FormatMinutes(m)             // "09:30"
package timezone
