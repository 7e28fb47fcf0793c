package amlich

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate is matched by every *InvalidDateError.
	ErrInvalidDate = errors.New("amlich: invalid date")

	// ErrNoLeapMonth is returned when a leap month is requested for a month
	// that is not doubled in its lunar year.
	ErrNoLeapMonth = errors.New("amlich: month is not a leap month")
)

// InvalidDateError describes a date rejected at an API boundary.
type InvalidDateError struct {
	// Calendar is "solar" or "lunar".
	Calendar string

	// Date is the rejected date as the caller gave it.
	Date string

	// Reason says which field is out of range.
	Reason string
}

// Error implements the error interface.
//
// The message format is:
//
//	"amlich: invalid {Calendar} date {Date}: {Reason}"
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("amlich: invalid %s date %s: %s", e.Calendar, e.Date, e.Reason)
}

// Is reports whether target is ErrInvalidDate.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// ValidateSolarDate reports an *InvalidDateError when the triple is not a
// real civil date: a Julian calendar date before 15 October 1582, a
// Gregorian one from then on. The converter itself never validates; call
// this where dates enter the program.
func ValidateSolarDate(year int, month time.Month, day int) error {
	s := SolarDate{Year: year, Month: month, Day: day}
	if month < time.January || month > time.December {
		return &InvalidDateError{Calendar: "solar", Date: s.String(), Reason: "month out of range"}
	}
	if n := daysIn(year, month); day < 1 || day > n {
		return &InvalidDateError{Calendar: "solar", Date: s.String(), Reason: fmt.Sprintf("day out of range 1..%d", n)}
	}
	if year == 1582 && month == time.October && day > 4 && day < 15 {
		return &InvalidDateError{Calendar: "solar", Date: s.String(), Reason: "day dropped by the Gregorian reform"}
	}
	return nil
}

// ParseSolarDate parses a YYYY-MM-DD date and validates it.
func ParseSolarDate(s string) (SolarDate, error) {
	var d SolarDate
	var m int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &d.Year, &m, &d.Day); err != nil {
		return SolarDate{}, &InvalidDateError{Calendar: "solar", Date: s, Reason: "expected YYYY-MM-DD"}
	}
	d.Month = time.Month(m)
	if err := ValidateSolarDate(d.Year, d.Month, d.Day); err != nil {
		return SolarDate{}, err
	}
	return d, nil
}

// ParseLunarDate parses a DD/MM/YYYY lunar date. It checks field ranges
// only; use [LunarToSolar] to confirm the day exists.
func ParseLunarDate(s string, leap bool) (LunarDate, error) {
	var d LunarDate
	if _, err := fmt.Sscanf(s, "%d/%d/%d", &d.Day, &d.Month, &d.Year); err != nil {
		return LunarDate{}, &InvalidDateError{Calendar: "lunar", Date: s, Reason: "expected DD/MM/YYYY"}
	}
	d.Leap = leap
	switch {
	case d.Month < 1 || d.Month > 12:
		return LunarDate{}, &InvalidDateError{Calendar: "lunar", Date: s, Reason: "month out of range"}
	case d.Day < 1 || d.Day > 30:
		return LunarDate{}, &InvalidDateError{Calendar: "lunar", Date: s, Reason: "day out of range"}
	}
	return d, nil
}

// daysIn returns the number of days of a civil month, using the Julian
// leap rule before October 1582.
func daysIn(year int, month time.Month) int {
	if month == time.February && year <= 1582 {
		if floorMod(year, 4) == 0 {
			return 29
		}
		return 28
	}
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
