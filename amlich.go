// Package amlich converts between the Gregorian calendar and the Vietnamese
// lunar calendar (âm lịch), names years, months and days in the sexagenary
// Can Chi cycle, and looks up traditional Vietnamese holidays.
//
// The converter follows Hồ Ngọc Đức's astronomical algorithm: new moons and
// solar longitudes are computed from truncated series and the calendar is
// anchored on the lunar month containing the winter solstice. Results depend
// on the observer's UTC offset; Vietnam uses UTC+7.
//
// Basic usage with the pure conversion functions:
//
//	ld := amlich.SolarToLunar(2023, time.January, 22, amlich.DefaultTimeZone)
//	fmt.Println(ld)                             // 01/01/2023
//	fmt.Println(amlich.StemBranchName(ld.Year)) // Quý Mão
//
// Holiday lookups take a time.Time, which is normalized to the calendar's
// zone before the civil date is extracted:
//
//	amlich.HolidayName(time.Date(2023, time.January, 22, 0, 0, 0, 0, time.UTC)) // "Tết Nguyên Đán"
package amlich

//go:generate go run ./cmd/genholidays -input holidays.yaml -output holidays_data.go

import (
	"sync"
	"time"
)

// HolidayKind tells where a holiday comes from.
type HolidayKind int

const (
	SolarHoliday  HolidayKind = iota // fixed date of the Gregorian calendar
	LunarHoliday                     // fixed date of the lunar calendar
	CustomHoliday                    // added with AddCustomHoliday
)

// String returns "solar", "lunar" or "custom".
func (k HolidayKind) String() string {
	switch k {
	case SolarHoliday:
		return "solar"
	case LunarHoliday:
		return "lunar"
	case CustomHoliday:
		return "custom"
	}
	return "unknown"
}

// MarshalText encodes the kind as its name.
func (k HolidayKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Holiday represents a single holiday occurrence.
type Holiday struct {
	Date  time.Time   `json:"date" yaml:"date"`   // midnight UTC of the civil date
	Name  string      `json:"name" yaml:"name"`   // Vietnamese name, e.g. "Tết Trung Thu"
	Kind  HolidayKind `json:"kind" yaml:"kind"`   // source of the entry
	Lunar LunarDate   `json:"lunar" yaml:"lunar"` // lunar date of Date
}

// lunarKey keys the lunar holiday table by lunar month and day.
type lunarKey struct {
	month int
	day   int
}

// solarKey keys the solar holiday table by month and day.
type solarKey struct {
	month time.Month
	day   int
}

// Calendar resolves lunar dates and holidays for one UTC offset and holds
// custom holidays. Create one with [New] or [NewInZone]. All methods are
// safe for concurrent use.
type Calendar struct {
	tz  float64
	loc *time.Location

	mu      sync.RWMutex
	custom  map[date]string
	removed map[date]bool
}

// New creates a Calendar for Vietnam (UTC+7) backed by the built-in
// holiday tables.
func New() *Calendar {
	return NewInZone(DefaultTimeZone)
}

// NewInZone creates a Calendar for an observer at the given UTC offset in
// hours. The offset is not checked against real-world zones.
func NewInZone(offsetHours float64) *Calendar {
	return &Calendar{
		tz:      offsetHours,
		loc:     zoneFor(offsetHours),
		custom:  make(map[date]string),
		removed: make(map[date]bool),
	}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// TimeZone returns the calendar's UTC offset in hours.
func (c *Calendar) TimeZone() float64 { return c.tz }

// Location returns the fixed zone the calendar normalizes times into.
func (c *Calendar) Location() *time.Location { return c.loc }

// Lunar returns the lunar date of the civil day t falls on in the
// calendar's zone.
func (c *Calendar) Lunar(t time.Time) LunarDate {
	return c.lunarOf(dateFromTime(t, c.loc))
}

// Solar returns midnight, in the calendar's zone, of the civil day that a
// lunar date falls on.
func (c *Calendar) Solar(ld LunarDate) (time.Time, error) {
	s, err := LunarToSolar(ld, c.tz)
	if err != nil {
		return time.Time{}, err
	}
	return s.Time(c.loc), nil
}

func (c *Calendar) lunarOf(d date) LunarDate {
	return SolarToLunar(d.year, d.month, d.day, c.tz)
}

// lookup returns the holiday on a date, checking custom holidays first,
// then the lunar and solar built-ins (unless removed).
func (c *Calendar) lookup(d date) (Holiday, bool) {
	ld := c.lunarOf(d)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.custom[d]; ok {
		return Holiday{Date: d.toTime(), Name: name, Kind: CustomHoliday, Lunar: ld}, true
	}
	if c.removed[d] {
		return Holiday{}, false
	}
	if !ld.Leap {
		if name, ok := lunarHolidays[lunarKey{ld.Month, ld.Day}]; ok {
			return Holiday{Date: d.toTime(), Name: name, Kind: LunarHoliday, Lunar: ld}, true
		}
	}
	if name, ok := solarHolidays[solarKey{d.month, d.day}]; ok {
		return Holiday{Date: d.toTime(), Name: name, Kind: SolarHoliday, Lunar: ld}, true
	}
	return Holiday{}, false
}

// IsHoliday reports whether the given date is a holiday (built-in or
// custom). The input time is converted to the calendar's zone before the
// civil date is extracted.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(dateFromTime(t, c.loc))
	return ok
}

// HolidayName returns the holiday name for the given date, or an empty
// string if it is not a holiday.
func (c *Calendar) HolidayName(t time.Time) string {
	h, _ := c.lookup(dateFromTime(t, c.loc))
	return h.Name
}

// Holiday returns the holiday on the given date, if any.
func (c *Calendar) Holiday(t time.Time) (Holiday, bool) {
	return c.lookup(dateFromTime(t, c.loc))
}

// HolidaysInYear returns all holidays in the given Gregorian year, sorted
// by date.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	from := date{year: year, month: time.January, day: 1}
	to := date{year: year, month: time.December, day: 31}
	return c.holidaysInRange(from, to)
}

// HolidaysInMonth returns all holidays in the given year and month, sorted
// by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	from := date{year: year, month: month, day: 1}
	to := date{year: year, month: month, day: daysIn(year, month)}
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive,
// sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := dateFromTime(from, c.loc)
	toD := dateFromTime(to, c.loc)
	if toD.before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

// holidaysInRange collects holidays within the given date range (inclusive).
func (c *Calendar) holidaysInRange(from, to date) []Holiday {
	var result []Holiday
	end := to.julianDay()
	for jd := from.julianDay(); jd <= end; jd++ {
		if h, ok := c.lookup(dateFromJulianDay(jd)); ok {
			result = append(result, h)
		}
	}
	return result
}

// AddCustomHoliday registers a custom holiday on the given date.
// If a custom holiday already exists on that date, it is overwritten.
// A custom holiday takes precedence over a built-in one on the same date.
func (c *Calendar) AddCustomHoliday(t time.Time, name string) {
	d := dateFromTime(t, c.loc)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[d] = name
}

// RemoveCustomHoliday removes a previously added custom holiday.
// Has no effect if no custom holiday exists on that date.
func (c *Calendar) RemoveCustomHoliday(t time.Time) {
	d := dateFromTime(t, c.loc)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, d)
}

// RemoveHoliday suppresses the built-in holiday on one date so it no
// longer appears in queries. Other years are unaffected. Use
// [Calendar.RestoreHoliday] to undo.
func (c *Calendar) RemoveHoliday(t time.Time) {
	d := dateFromTime(t, c.loc)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removed[d] = true
}

// RestoreHoliday restores a previously removed built-in holiday.
func (c *Calendar) RestoreHoliday(t time.Time) {
	d := dateFromTime(t, c.loc)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.removed, d)
}

// --- Package-level convenience functions ---

// Lunar returns the lunar date of t in Vietnam.
func Lunar(t time.Time) LunarDate { return defaultCal.Lunar(t) }

// IsHoliday reports whether the given date is a holiday.
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// HolidaysInYear returns all holidays in the given year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }

// HolidaysInMonth returns all holidays in the given year and month, sorted by date.
func HolidaysInMonth(year int, month time.Month) []Holiday {
	return defaultCal.HolidaysInMonth(year, month)
}

// HolidaysBetween returns all holidays in the range [from, to] inclusive.
func HolidaysBetween(from, to time.Time) []Holiday {
	return defaultCal.HolidaysBetween(from, to)
}

// AddCustomHoliday registers a custom holiday on the default calendar.
func AddCustomHoliday(t time.Time, name string) { defaultCal.AddCustomHoliday(t, name) }

// RemoveCustomHoliday removes a custom holiday from the default calendar.
func RemoveCustomHoliday(t time.Time) { defaultCal.RemoveCustomHoliday(t) }

// RemoveHoliday suppresses a built-in holiday on the default calendar.
func RemoveHoliday(t time.Time) { defaultCal.RemoveHoliday(t) }

// RestoreHoliday restores a suppressed built-in holiday on the default calendar.
func RestoreHoliday(t time.Time) { defaultCal.RestoreHoliday(t) }
