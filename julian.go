package amlich

import (
	"fmt"
	"time"
)

// gregorianStart is the Julian day number of 15 October 1582, the first day
// of the Gregorian calendar. Earlier day numbers are Julian calendar dates.
const gregorianStart = 2299161

// SolarDate is a civil (Gregorian) calendar date as seen by an observer in
// a given time zone. It carries no zone of its own.
type SolarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (s SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", s.Year, int(s.Month), s.Day)
}

// Time returns midnight of the date in loc.
func (s SolarDate) Time(loc *time.Location) time.Time {
	return time.Date(s.Year, s.Month, s.Day, 0, 0, 0, 0, loc)
}

// JulianDay returns the Julian day number of the date.
func (s SolarDate) JulianDay() int {
	return ToJulianDay(s.Year, s.Month, s.Day)
}

// ToJulianDay returns the Julian day number of the given date. Dates before
// 15 October 1582 are interpreted in the Julian calendar.
//
// Out-of-range months and days are not rejected; the result for such input
// is meaningless. Use [ValidateSolarDate] at the boundary.
func ToJulianDay(year int, month time.Month, day int) int {
	a := floorDiv(14-int(month), 12)
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	jd := day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
	if jd < gregorianStart {
		jd = day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - 32083
	}
	return jd
}

// FromJulianDay converts a Julian day number back to a calendar date.
func FromJulianDay(jd int) SolarDate {
	var b, c int
	if jd >= gregorianStart {
		a := jd + 32044
		b = floorDiv(4*a+3, 146097)
		c = a - floorDiv(b*146097, 4)
	} else {
		c = jd + 32082
	}
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return SolarDate{
		Year:  b*100 + d - 4800 + floorDiv(m, 10),
		Month: time.Month(m + 3 - 12*floorDiv(m, 10)),
		Day:   e - floorDiv(153*m+2, 5) + 1,
	}
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; the result has the sign of b.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
