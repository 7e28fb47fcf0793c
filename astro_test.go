package amlich

import "testing"

func TestNewMoonDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		k    int
		tz   float64
		want int
	}{
		{1, 7, 2415051},    // 1900-01-31
		{1530, 7, 2460203}, // 2023-09-15
	}
	for _, tt := range tests {
		if got := newMoonDay(tt.k, tt.tz); got != tt.want {
			t.Errorf("newMoonDay(%d, %v) = %d, want %d", tt.k, tt.tz, got, tt.want)
		}
	}
}

func TestSunLongitude(t *testing.T) {
	t.Parallel()

	// 1 Jan 2000 is past the winter solstice: longitude 270°..300°.
	if got := sunLongitude(2451545, 7); got != 9 {
		t.Errorf("sunLongitude(2451545, 7) = %d, want 9", got)
	}
	for n := 2451545; n < 2451545+800; n++ {
		if got := sunLongitude(n, 7); got < 0 || got > 11 {
			t.Fatalf("sunLongitude(%d, 7) = %d, want 0..11", n, got)
		}
	}
}

func TestLunarMonth11(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want int
	}{
		{2022, 2459908}, // 2022-11-24
		{2023, 2460292}, // 2023-12-13
	}
	for _, tt := range tests {
		if got := lunarMonth11(tt.year, 7); got != tt.want {
			t.Errorf("lunarMonth11(%d, 7) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestLeapMonthOffset(t *testing.T) {
	t.Parallel()

	// 2022-11 .. 2023-11 holds 13 lunations; the fourth after month 11 is
	// the leap month 2.
	if got := leapMonthOffset(2459908, 7); got != 4 {
		t.Errorf("leapMonthOffset(2459908, 7) = %d, want 4", got)
	}
}

func TestLeapMonthOffset_Bounded(t *testing.T) {
	t.Parallel()

	// Far outside the intended range the scan must still stop.
	for _, a11 := range []int{0, -1000000, 10000000} {
		if got := leapMonthOffset(a11, 7); got < 1 || got > maxLeapScan-1 {
			t.Errorf("leapMonthOffset(%d, 7) = %d, want 1..%d", a11, got, maxLeapScan-1)
		}
	}
}

func TestLunationIndex(t *testing.T) {
	t.Parallel()

	if got := lunationIndex(2415021); got != -1 {
		t.Errorf("lunationIndex(2415021) = %d, want -1", got)
	}
	if got := lunationIndex(2415022); got != 0 {
		t.Errorf("lunationIndex(2415022) = %d, want 0", got)
	}
}
