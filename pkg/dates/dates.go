// Package dates provides date and time parsing, timezone-aware conversion,
// and display-format helpers for the storefront admin application.
//
// The parse functions accept loosely-typed input (a string in one of several
// recognized layouts, or an already-parsed value) because admin views receive
// dates from query strings, CSV imports, and in-process callers alike. Strict
// parsers return coded errors; the Try variants are the best-effort wrappers.
package dates

import (
	"fmt"
	"strings"
	"time"

	dErrors "storefront/pkg/domain-errors"
)

// dateLayouts are tried in order by ParseDate. Order matters: YYYY/MM/DD must
// be tried before MM/DD/YYYY so that slash dates are read year-first whenever
// the first field is a plausible year.
var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006/01/02",
	"02.01.06",
	"02.01.2006",
	"2006 01 02",
	"01/02/2006",
}

// timestampLayout is the last-resort layout for full timestamp strings; only
// the date portion is kept. time.Parse accepts an optional fractional-second
// suffix after the seconds field without it appearing in the layout.
const timestampLayout = "2006-01-02 15:04:05"

// timeLayouts are tried in order by ParseTime.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
}

// Date is a calendar date with no time-of-day and no timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// At combines the date with a time-of-day in the given location. The wall
// clock of the result is exactly d plus at; no instant conversion happens.
func (d Date) At(at TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, at.Hour, at.Minute, at.Second, 0, loc)
}

// AddDays returns the date n calendar days later (or earlier for negative n),
// normalizing across month and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.At(Midnight, time.UTC).AddDate(0, 0, n))
}

// Format renders the date using a stdlib time layout.
func (d Date) Format(layout string) string {
	return d.At(Midnight, time.UTC).Format(layout)
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// TimeOfDay is a clock time with no date and no timezone.
// The zero value is midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// Midnight is the zero TimeOfDay, the default supplement time when a bare
// date is promoted to a datetime.
var Midnight TimeOfDay

// TimeOfDayOf returns the clock time of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ParseDate makes a calendar date out of value, which may be a time.Time, a
// Date, or a string in one of the recognized layouts.
//
// The type switch checks time.Time before Date as a documented invariant: a
// full datetime always resolves to its date portion and never reaches the
// string path. Failures carry code CodeInvalidFormat and the offending value.
func ParseDate(value any) (Date, error) {
	switch v := value.(type) {
	case time.Time:
		return DateOf(v), nil
	case Date:
		return v, nil
	case string:
		return parseDateString(v)
	}
	return Date{}, dErrors.Newf(dErrors.CodeInvalidFormat,
		"unable to parse %v as date (unknown type %T)", value, value).WithValue(value)
}

func parseDateString(s string) (Date, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return DateOf(t), nil
		}
	}
	if t, err := time.Parse(timestampLayout, trimmed); err == nil {
		return DateOf(t), nil
	}
	return Date{}, dErrors.Newf(dErrors.CodeInvalidFormat,
		"unable to parse %q as date", s).WithValue(s)
}

// ParseTime makes a time-of-day out of value, which may be a TimeOfDay, a
// time.Time (its clock time is extracted), or a string in HH:MM:SS or HH:MM
// form. Failures carry code CodeInvalidFormat and the offending value.
func ParseTime(value any) (TimeOfDay, error) {
	switch v := value.(type) {
	case TimeOfDay:
		return v, nil
	case time.Time:
		return TimeOfDayOf(v), nil
	case string:
		return parseTimeString(v)
	}
	return TimeOfDay{}, dErrors.Newf(dErrors.CodeInvalidFormat,
		"unable to parse %v as time (unknown type %T)", value, value).WithValue(value)
}

func parseTimeString(s string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, dErrors.Newf(dErrors.CodeInvalidFormat,
		"unable to parse %q as time", s).WithValue(s)
}

// TryParseDate is the best-effort variant of ParseDate: nil input and
// unparseable input both yield nil. Only CodeInvalidFormat is swallowed;
// any other failure would be a ParseDate contract violation.
func TryParseDate(value any) *Date {
	if value == nil {
		return nil
	}
	d, err := ParseDate(value)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeInvalidFormat) {
			panic(err)
		}
		return nil
	}
	return &d
}

// TryParseTime is the best-effort variant of ParseTime: nil input and
// unparseable input both yield nil. Only CodeInvalidFormat is swallowed.
func TryParseTime(value any) *TimeOfDay {
	if value == nil {
		return nil
	}
	t, err := ParseTime(value)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeInvalidFormat) {
			panic(err)
		}
		return nil
	}
	return &t
}
