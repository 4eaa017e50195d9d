// Package types provides the value types filter operands are parsed into.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Rendering layouts. Fractional seconds are printed only when present.
const (
	DateLayout       = "2006-01-02"
	DateTimeLayout   = "2006-01-02 15:04:05.999999"
	DateTimeTzLayout = "2006-01-02 15:04:05.999999 -07:00"
)

// Parsing layouts. Single-digit month, day and time components are accepted,
// and time.Parse accepts fractional seconds after the seconds field.
var (
	dateLayouts = []string{
		"2006-1-2",
	}
	dateTimeLayouts = []string{
		"2006-1-2T15:4:5",
		"2006-1-2 15:4:5",
		"2006-1-2T15:4",
		"2006-1-2 15:4",
	}
	dateTimeTzLayouts = []string{
		"2006-1-2T15:4:5Z07:00",
		"2006-1-2 15:4:5Z07:00",
		"2006-1-2T15:4:5 Z07:00",
		"2006-1-2 15:4:5 Z07:00",
		"2006-1-2T15:4:5Z0700",
		"2006-1-2 15:4:5Z0700",
	}
)

func parseLayouts(kind string, layouts []string, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s format: %q", kind, s)
}

// --- Date ---

// Date is a calendar date without time of day.
type Date struct {
	t time.Time
}

// NewDate creates a Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD (leading zeros optional).
func ParseDate(s string) (Date, error) {
	t, err := parseLayouts("date", dateLayouts, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// MustDate parses a date, panics on error. Use only for constants and tests.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

// Equal reports whether both dates are the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// String returns YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(DateLayout) }

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) { return d.String(), nil }

// --- DateTime ---

// DateTime is a timestamp without time zone.
type DateTime struct {
	t time.Time
}

// NewDateTime creates a DateTime from its components.
func NewDateTime(year int, month time.Month, day, hour, min, sec, nsec int) DateTime {
	return DateTime{t: time.Date(year, month, day, hour, min, sec, nsec, time.UTC)}
}

// ParseDateTime parses YYYY-MM-DDTHH:MM:SS[.fff] (a space may replace the T).
func ParseDateTime(s string) (DateTime, error) {
	t, err := parseLayouts("datetime", dateTimeLayouts, s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t: t}, nil
}

// MustDateTime parses a datetime, panics on error. Use only for constants and tests.
func MustDateTime(s string) DateTime {
	d, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the timestamp interpreted as UTC.
func (d DateTime) Time() time.Time { return d.t }

// Equal reports exact equality, including sub-second precision.
func (d DateTime) Equal(o DateTime) bool { return d.t.Equal(o.t) }

// String returns YYYY-MM-DD HH:MM:SS with fractional seconds when present.
func (d DateTime) String() string { return d.t.Format(DateTimeLayout) }

// Value implements driver.Valuer.
func (d DateTime) Value() (driver.Value, error) { return d.String(), nil }

// --- DateTimeTz ---

// DateTimeTz is a timestamp with a fixed UTC offset.
type DateTimeTz struct {
	t time.Time
}

// NewDateTimeTz creates a DateTimeTz. The offset is taken from t's location.
func NewDateTimeTz(t time.Time) DateTimeTz {
	_, offset := t.Zone()
	return DateTimeTz{t: t.In(time.FixedZone("", offset))}
}

// ParseDateTimeTz parses an RFC 3339 style timestamp with offset
// (YYYY-MM-DDTHH:MM:SS[.fff]±HH:MM or Z).
//
// A '+' sent unescaped in a query string arrives as a space; such an offset is
// restored before giving up.
func ParseDateTimeTz(s string) (DateTimeTz, error) {
	t, err := parseLayouts("datetime with offset", dateTimeTzLayouts, s)
	if err != nil {
		restored, ok := restorePlus(strings.TrimSpace(s))
		if !ok {
			return DateTimeTz{}, err
		}
		if t, err = parseLayouts("datetime with offset", dateTimeTzLayouts, restored); err != nil {
			return DateTimeTz{}, err
		}
	}
	return NewDateTimeTz(t), nil
}

// restorePlus turns "... 10:30:05 02:00" into "... 10:30:05+02:00".
func restorePlus(s string) (string, bool) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return "", false
	}
	offset := s[i+1:]
	if len(offset) != 5 && len(offset) != 4 {
		return "", false
	}
	if offset[0] < '0' || offset[0] > '9' {
		return "", false
	}
	return s[:i] + "+" + offset, true
}

// MustDateTimeTz parses a timestamp with offset, panics on error.
// Use only for constants and tests.
func MustDateTimeTz(s string) DateTimeTz {
	d, err := ParseDateTimeTz(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the timestamp in its fixed offset.
func (d DateTimeTz) Time() time.Time { return d.t }

// Offset returns the UTC offset in seconds.
func (d DateTimeTz) Offset() int {
	_, offset := d.t.Zone()
	return offset
}

// Equal reports whether both values denote the same instant with the same offset.
func (d DateTimeTz) Equal(o DateTimeTz) bool {
	return d.t.Equal(o.t) && d.Offset() == o.Offset()
}

// String returns YYYY-MM-DD HH:MM:SS ±HH:MM with fractional seconds when present.
func (d DateTimeTz) String() string { return d.t.Format(DateTimeTzLayout) }

// Value implements driver.Valuer.
func (d DateTimeTz) Value() (driver.Value, error) { return d.String(), nil }
