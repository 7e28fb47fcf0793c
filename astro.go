package amlich

import "math"

const (
	// synodicMonth is the mean length of a lunation in days.
	synodicMonth = 29.530588853

	// newMoonEpoch is the Julian date of lunation 0, the new moon of
	// 1 January 1900 (13:51 UTC).
	newMoonEpoch = 2415021.076998695

	dr = math.Pi / 180
)

// sunLongitude returns the index (0..11) of the 30° arc of the ecliptic the
// sun is in at local midnight of day jdn. Index 0 starts at the vernal
// equinox, so the winter solstice falls at the start of index 9.
func sunLongitude(jdn int, tz float64) int {
	t := (float64(jdn) - 2451545.5 - tz/24.0) / 36525
	t2 := t * t
	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2
	dl := (1.914600 - 0.004817*t - 0.000014*t2) * math.Sin(dr*m)
	dl = dl + (0.019993-0.000101*t)*math.Sin(dr*2*m) + 0.000290*math.Sin(dr*3*m)
	l := l0 + dl
	l = l * dr
	l = l - math.Pi*2*math.Floor(l/(math.Pi*2))
	return int(math.Floor(l / math.Pi * 6))
}

// newMoonDay returns the local day number of the k-th new moon after the
// 1900 epoch.
func newMoonDay(k int, tz float64) int {
	kf := float64(k)
	t := kf / 1236.85
	t2 := t * t
	t3 := t2 * t
	jd1 := 2415020.75933 + 29.53058868*kf + 0.0001178*t2 - 0.000000155*t3
	jd1 = jd1 + 0.00033*math.Sin((166.56+132.87*t-0.009173*t2)*dr)
	m := 359.2242 + 29.10535608*kf - 0.0000333*t2 - 0.00000347*t3
	mpr := 306.0253 + 385.81691806*kf + 0.0107306*t2 + 0.00001236*t3
	f := 21.2964 + 390.67050646*kf - 0.0016528*t2 - 0.00000239*t3

	c1 := (0.1734-0.000393*t)*math.Sin(m*dr) + 0.0021*math.Sin(2*dr*m)
	c1 = c1 - 0.4068*math.Sin(mpr*dr) + 0.0161*math.Sin(dr*2*mpr)
	c1 = c1 - 0.0004*math.Sin(dr*3*mpr)
	c1 = c1 + 0.0104*math.Sin(dr*2*f) - 0.0051*math.Sin(dr*(m+mpr))
	c1 = c1 - 0.0074*math.Sin(dr*(m-mpr)) + 0.0004*math.Sin(dr*(2*f+m))
	c1 = c1 - 0.0004*math.Sin(dr*(2*f-m)) - 0.0006*math.Sin(dr*(2*f+mpr))
	c1 = c1 + 0.0010*math.Sin(dr*(2*f-mpr)) + 0.0005*math.Sin(dr*(2*mpr+m))

	// Delta T, in days.
	var deltaT float64
	if t < -11 {
		deltaT = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltaT = -0.000278 + 0.000265*t + 0.000262*t2
	}
	jdNew := jd1 + c1 - deltaT
	return int(math.Floor(jdNew + 0.5 + tz/24.0))
}

// lunationIndex returns the index of the lunation containing day jd,
// estimated from the mean synodic month.
func lunationIndex(jd int) int {
	return int(math.Floor((float64(jd) - newMoonEpoch) / synodicMonth))
}
