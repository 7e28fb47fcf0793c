package amlich

import (
	"fmt"
	"math"
	"time"
)

// ictZone is Indochina Time (UTC+7), the zone of the default calendar.
var ictZone = time.FixedZone("ICT", 7*60*60)

// zoneFor returns the fixed zone for a UTC offset given in hours.
func zoneFor(offsetHours float64) *time.Location {
	if offsetHours == DefaultTimeZone {
		return ictZone
	}
	secs := int(math.Round(offsetHours * 3600))
	return time.FixedZone(fmt.Sprintf("UTC%+g", offsetHours), secs)
}

// date is an internal comparable key for map lookups.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime converts a time.Time to the civil date it falls on in loc.
func dateFromTime(t time.Time, loc *time.Location) date {
	y, m, d := t.In(loc).Date()
	return date{year: y, month: m, day: d}
}

func dateFromJulianDay(jd int) date {
	s := FromJulianDay(jd)
	return date{year: s.Year, month: s.Month, day: s.Day}
}

func (d date) julianDay() int {
	return ToJulianDay(d.year, d.month, d.day)
}

func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}
