package amlich

import "time"

// holidayHorizon bounds the day scans of NextHoliday and PreviousHoliday.
// Every built-in holiday recurs within one lunar year of at most 385 days.
const holidayHorizon = 400

// NextHoliday returns the next holiday strictly after the given date.
// Returns false if every holiday within the scan horizon has been removed.
func (c *Calendar) NextHoliday(t time.Time) (Holiday, bool) {
	jd := dateFromTime(t, c.loc).julianDay()
	for i := 1; i <= holidayHorizon; i++ {
		if h, ok := c.lookup(dateFromJulianDay(jd + i)); ok {
			return h, true
		}
	}
	return Holiday{}, false
}

// PreviousHoliday returns the most recent holiday strictly before the
// given date.
func (c *Calendar) PreviousHoliday(t time.Time) (Holiday, bool) {
	jd := dateFromTime(t, c.loc).julianDay()
	for i := 1; i <= holidayHorizon; i++ {
		if h, ok := c.lookup(dateFromJulianDay(jd - i)); ok {
			return h, true
		}
	}
	return Holiday{}, false
}

// TetDate returns midnight, in the calendar's zone, of the lunar new year
// of the given year.
func (c *Calendar) TetDate(year int) time.Time {
	return TetDate(year, c.tz).Time(c.loc)
}

// NextTet returns the first lunar new year on or after the given date.
func (c *Calendar) NextTet(t time.Time) time.Time {
	d := dateFromTime(t, c.loc)
	ld := c.lunarOf(d)
	if ld.Month == 1 && ld.Day == 1 {
		return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, c.loc)
	}
	return c.TetDate(ld.Year + 1)
}

// LeapMonth returns the doubled month of a lunar year, or false.
func (c *Calendar) LeapMonth(lunarYear int) (int, bool) {
	return LeapMonth(lunarYear, c.tz)
}

// --- Package-level convenience functions ---

// NextHoliday returns the next holiday strictly after the given date.
func NextHoliday(t time.Time) (Holiday, bool) { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent holiday strictly before the given date.
func PreviousHoliday(t time.Time) (Holiday, bool) { return defaultCal.PreviousHoliday(t) }

// NextTet returns the first lunar new year on or after the given date.
func NextTet(t time.Time) time.Time { return defaultCal.NextTet(t) }
