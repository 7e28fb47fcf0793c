package amlich

import (
	"fmt"
	"math"
	"time"
)

// DefaultTimeZone is the UTC offset, in hours, of Vietnam (ICT).
const DefaultTimeZone = 7.0

// maxLeapScan bounds the lunation scan in leapMonthOffset. A 13-month year
// always exposes the repeated sun longitude well before this.
const maxLeapScan = 14

// LunarDate is a date of the Vietnamese lunar calendar.
type LunarDate struct {
	Year  int  `json:"year" yaml:"year"`
	Month int  `json:"month" yaml:"month"` // 1..12
	Day   int  `json:"day" yaml:"day"`     // 1..30
	Leap  bool `json:"leap" yaml:"leap"`   // the month is the intercalary month following Month
}

// String formats the date as DD/MM/YYYY, with a " (nhuận)" suffix for days
// of a leap month.
func (l LunarDate) String() string {
	s := fmt.Sprintf("%02d/%02d/%d", l.Day, l.Month, l.Year)
	if l.Leap {
		s += " (nhuận)"
	}
	return s
}

// lunarMonth11 returns the day number of the new moon that begins lunar
// month 11, the month containing the winter solstice of the given year.
func lunarMonth11(year int, tz float64) int {
	off := ToJulianDay(year, time.December, 31) - 2415021
	k := int(math.Floor(float64(off) / synodicMonth))
	nm := newMoonDay(k, tz)
	if sunLongitude(nm, tz) >= 9 {
		nm = newMoonDay(k-1, tz)
	}
	return nm
}

// leapMonthOffset returns the position, counted in lunations after the
// month-11 new moon a11, of the leap month of a 13-month lunar year: the
// first month during which the sun does not enter a new zodiac sign.
func leapMonthOffset(a11 int, tz float64) int {
	k := int(math.Floor((float64(a11)-newMoonEpoch)/synodicMonth + 0.5))
	i := 1
	arc := sunLongitude(newMoonDay(k+i, tz), tz)
	for {
		last := arc
		i++
		arc = sunLongitude(newMoonDay(k+i, tz), tz)
		if arc == last || i >= maxLeapScan {
			break
		}
	}
	return i - 1
}

// SolarToLunar converts a civil date, as observed at UTC offset tz hours,
// to the Vietnamese lunar calendar. Input is not validated.
func SolarToLunar(year int, month time.Month, day int, tz float64) LunarDate {
	dayNumber := ToJulianDay(year, month, day)
	k := lunationIndex(dayNumber)
	monthStart := newMoonDay(k+1, tz)
	if monthStart > dayNumber {
		monthStart = newMoonDay(k, tz)
	}
	if monthStart > dayNumber {
		// The mean-lunation estimate ran a lunation ahead of the true new
		// moon (7 May 2054, 9 Apr 2062); without this the day would be 0.
		monthStart = newMoonDay(k-1, tz)
	}

	a11 := lunarMonth11(year, tz)
	b11 := a11
	var lunarYear int
	if a11 >= monthStart {
		lunarYear = year
		a11 = lunarMonth11(year-1, tz)
	} else {
		lunarYear = year + 1
		b11 = lunarMonth11(year+1, tz)
	}

	lunarDay := dayNumber - monthStart + 1
	diff := floorDiv(monthStart-a11, 29)
	leap := false
	lunarMonth := diff + 11
	if b11-a11 > 365 {
		leapMonthDiff := leapMonthOffset(a11, tz)
		if diff >= leapMonthDiff {
			lunarMonth = diff + 10
			leap = diff == leapMonthDiff
		}
	}
	if lunarMonth > 12 {
		lunarMonth -= 12
	}
	if lunarMonth >= 11 && diff < 4 {
		lunarYear--
	}
	return LunarDate{Year: lunarYear, Month: lunarMonth, Day: lunarDay, Leap: leap}
}

// LunarToSolar converts a lunar date to the civil date observed at UTC
// offset tz hours. It fails with [ErrInvalidDate] for impossible dates and
// with [ErrNoLeapMonth] when ld.Leap is set on a month that is not doubled.
func LunarToSolar(ld LunarDate, tz float64) (SolarDate, error) {
	if ld.Day < 1 || ld.Day > 30 {
		return SolarDate{}, &InvalidDateError{Calendar: "lunar", Date: ld.String(), Reason: "day out of range"}
	}
	start, next, err := lunarMonthBounds(ld.Month, ld.Year, ld.Leap, tz)
	if err != nil {
		return SolarDate{}, err
	}
	jd := start + ld.Day - 1
	if jd >= next {
		return SolarDate{}, &InvalidDateError{Calendar: "lunar", Date: ld.String(), Reason: fmt.Sprintf("month has %d days", next-start)}
	}
	return FromJulianDay(jd), nil
}

// lunarMonthBounds returns the day numbers of the first day of the given
// lunar month and of the month after it.
func lunarMonthBounds(month, year int, leap bool, tz float64) (start, next int, err error) {
	if month < 1 || month > 12 {
		ld := LunarDate{Year: year, Month: month, Day: 1, Leap: leap}
		return 0, 0, &InvalidDateError{Calendar: "lunar", Date: ld.String(), Reason: "month out of range"}
	}

	k, off, leapOff := monthPosition(month, year, tz)
	if leap {
		if leapOff == 0 || month != leapMonthNumber(leapOff) {
			return 0, 0, fmt.Errorf("%w: month %d of %d", ErrNoLeapMonth, month, year)
		}
		// The leap month follows the regular month it repeats.
		off++
	}
	return newMoonDay(k+off, tz), newMoonDay(k+off+1, tz), nil
}

// monthPosition locates the regular lunar month (1..12) of year. k is the
// lunation index of the month-11 new moon opening its span, off the
// month's offset from that new moon, and leapOff the offset of the span's
// leap month, or 0 if the span has twelve months.
func monthPosition(month, year int, tz float64) (k, off, leapOff int) {
	var a11, b11 int
	if month < 11 {
		a11 = lunarMonth11(year-1, tz)
		b11 = lunarMonth11(year, tz)
	} else {
		a11 = lunarMonth11(year, tz)
		b11 = lunarMonth11(year+1, tz)
	}
	k = int(math.Floor(0.5 + (float64(a11)-newMoonEpoch)/synodicMonth))
	off = floorMod(month-11, 12)
	if b11-a11 > 365 {
		leapOff = leapMonthOffset(a11, tz)
		if off >= leapOff {
			off++
		}
	}
	return k, off, leapOff
}

// leapMonthNumber maps a leap month offset from month 11 to the number of
// the month the leap month repeats.
func leapMonthNumber(leapOff int) int {
	m := floorMod(leapOff-2, 12)
	if m == 0 {
		m = 12
	}
	return m
}

// leapMonthAfter reports the leap month between the month-11 new moons of
// year and year+1, if that span holds 13 lunations.
func leapMonthAfter(year int, tz float64) (int, bool) {
	a11 := lunarMonth11(year, tz)
	b11 := lunarMonth11(year+1, tz)
	if b11-a11 <= 365 {
		return 0, false
	}
	return leapMonthNumber(leapMonthOffset(a11, tz)), true
}

// LeapMonth returns the month doubled in the given lunar year, or false if
// the year has twelve months.
func LeapMonth(year int, tz float64) (int, bool) {
	if m, ok := leapMonthAfter(year-1, tz); ok && m < 11 {
		return m, true
	}
	if m, ok := leapMonthAfter(year, tz); ok && m >= 11 {
		return m, true
	}
	return 0, false
}

// DaysInLunarMonth returns the length, 29 or 30 days, of a lunar month.
func DaysInLunarMonth(month, year int, leap bool, tz float64) (int, error) {
	start, next, err := lunarMonthBounds(month, year, leap, tz)
	if err != nil {
		return 0, err
	}
	return next - start, nil
}

// TetDate returns the civil date of the lunar new year (1/1) of year.
func TetDate(year int, tz float64) SolarDate {
	k, off, _ := monthPosition(1, year, tz)
	return FromJulianDay(newMoonDay(k+off, tz))
}
