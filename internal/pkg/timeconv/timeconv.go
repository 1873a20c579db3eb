// Package timeconv converts between the clinic's civil wall-clock time and
// UTC epoch milliseconds. All civil times share a single fixed UTC offset;
// the converter never consults the host timezone database.
package timeconv

import (
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Converter anchors civil date+time strings to UTC using a fixed offset.
type Converter struct {
	offset time.Duration
}

// NewConverter builds a Converter for a zone offsetMinutes east of UTC.
func NewConverter(offsetMinutes int) *Converter {
	return &Converter{offset: time.Duration(offsetMinutes) * time.Minute}
}

// NewDefaultConverter uses the clinic's default offset (+05:30).
func NewDefaultConverter() *Converter {
	return NewConverter(constvars.DefaultTimezoneOffsetMinutes)
}

// OffsetMillis reports the fixed offset in milliseconds.
func (c *Converter) OffsetMillis() int64 {
	return c.offset.Milliseconds()
}

// ToUTCMillis parses date "YYYY-MM-DD" and clock "HH:MM", interprets the
// pair in the fixed offset and returns the UTC epoch millisecond value.
// Day is range-checked 1-31 only, not against the month's actual length;
// an out-of-range day rolls into the next month the way civil-date
// normalization always has here.
func (c *Converter) ToUTCMillis(date, clock string) (int64, error) {
	dateParts := strings.Split(date, "-")
	clockParts := strings.Split(clock, ":")
	if len(dateParts) != 3 || len(clockParts) != 2 {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("expected YYYY-MM-DD and HH:MM, got %q and %q", date, clock))
	}

	components := make([]int, 0, 5)
	for _, part := range append(dateParts, clockParts...) {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0, exceptions.ErrInvalidTimeFormat(err)
		}
		components = append(components, value)
	}

	year, month, day := components[0], components[1], components[2]
	hour, minute := components[3], components[4]

	if month < 1 || month > 12 || day < 1 || day > 31 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("component out of range in %q %q", date, clock))
	}

	civilMillis := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC).UnixMilli()
	return civilMillis - c.offset.Milliseconds(), nil
}

// ToDisplayString renders a UTC epoch millisecond value as the 24-hour
// wall clock in the fixed offset.
func (c *Converter) ToDisplayString(utcMillis int64) (string, error) {
	if utcMillis <= 0 {
		return "", exceptions.ErrInvalidTimestamp(fmt.Errorf("got %d", utcMillis))
	}
	local := time.UnixMilli(utcMillis + c.offset.Milliseconds()).UTC()
	return local.Format(constvars.TimeLayoutHHMM), nil
}

// ToDisplayDate renders a UTC epoch millisecond value as the civil date in
// the fixed offset.
func (c *Converter) ToDisplayDate(utcMillis int64) (string, error) {
	if utcMillis <= 0 {
		return "", exceptions.ErrInvalidTimestamp(fmt.Errorf("got %d", utcMillis))
	}
	local := time.UnixMilli(utcMillis + c.offset.Milliseconds()).UTC()
	return local.Format(constvars.DateLayoutYYYYMMDD), nil
}

// CivilWeekday reports the weekday of a civil date string in the fixed
// offset, Sunday = 0 through Saturday = 6.
func (c *Converter) CivilWeekday(date string) (int, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("expected YYYY-MM-DD, got %q", date))
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return 0, exceptions.ErrInvalidTimeFormat(fmt.Errorf("non-numeric component in %q", date))
	}
	weekday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	return int(weekday), nil
}
