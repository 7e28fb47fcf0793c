package amlich

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestIsHoliday(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"New Years Day", d(2024, time.January, 1), true},
		{"Kitchen Gods Day", d(2024, time.February, 2), true},
		{"Tet", d(2024, time.February, 10), true},
		{"Lantern Festival", d(2024, time.February, 24), true},
		{"Hung Kings Day", d(2024, time.April, 18), true},
		{"Reunification Day", d(2024, time.April, 30), true},
		{"Labour Day", d(2024, time.May, 1), true},
		{"Buddha's Birthday", d(2024, time.May, 22), true},
		{"Double Fifth", d(2024, time.June, 10), true},
		{"Ghost Festival", d(2024, time.August, 18), true},
		{"National Day", d(2024, time.September, 2), true},
		{"Mid-Autumn", d(2024, time.September, 17), true},
		{"Christmas", d(2024, time.December, 25), true},

		{"Second day of Tet", d(2024, time.February, 11), false},
		{"Regular weekday", d(2024, time.June, 12), false},
		{"Day before New Years", d(2024, time.December, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestHolidayName(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{d(2024, time.February, 10), "Tết Nguyên Đán"},
		{d(2024, time.September, 17), "Tết Trung Thu"},
		{d(2024, time.September, 2), "Quốc khánh"},
		{d(2026, time.February, 10), "Ông Táo chầu trời"},
		{d(2026, time.April, 26), "Giỗ Tổ Hùng Vương"},
		{d(2024, time.June, 12), ""},
	}
	for _, tt := range tests {
		if got := HolidayName(tt.date); got != tt.want {
			t.Errorf("HolidayName(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestIsHoliday_TimeOfDayIgnored(t *testing.T) {
	late := time.Date(2024, time.February, 10, 23, 59, 59, 0, ictZone)
	if !IsHoliday(late) {
		t.Error("IsHoliday should ignore time-of-day")
	}
}

func TestIsHoliday_NormalizesToVietnam(t *testing.T) {
	// 20:00 UTC on 21 Jan 2023 is 03:00 on 22 Jan 2023 in Vietnam: Tết.
	utcEvening := time.Date(2023, time.January, 21, 20, 0, 0, 0, time.UTC)
	if got := HolidayName(utcEvening); got != "Tết Nguyên Đán" {
		t.Errorf("HolidayName(%v) = %q, want Tết Nguyên Đán", utcEvening, got)
	}

	// 16:00 UTC is still 21 Jan in Vietnam.
	utcAfternoon := time.Date(2023, time.January, 21, 16, 0, 0, 0, time.UTC)
	if IsHoliday(utcAfternoon) {
		t.Errorf("IsHoliday(%v) = true, want false", utcAfternoon)
	}
}

func TestHoliday_Fields(t *testing.T) {
	h, ok := New().Holiday(d(2024, time.September, 17))
	if !ok {
		t.Fatal("expected a holiday on 2024-09-17")
	}
	want := Holiday{
		Date:  d(2024, time.September, 17),
		Name:  "Tết Trung Thu",
		Kind:  LunarHoliday,
		Lunar: LunarDate{Year: 2024, Month: 8, Day: 15},
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("Holiday mismatch (-want +got):\n%s", diff)
	}

	h, ok = New().Holiday(d(2024, time.April, 30))
	if !ok || h.Kind != SolarHoliday {
		t.Errorf("Holiday(2024-04-30) = %+v, %v; want a solar holiday", h, ok)
	}
}

func TestHoliday_LunarWinsOverSolar(t *testing.T) {
	// Tết 2010 fell on 14 February.
	h, ok := New().Holiday(d(2010, time.February, 14))
	if !ok || h.Name != "Tết Nguyên Đán" || h.Kind != LunarHoliday {
		t.Errorf("Holiday(2010-02-14) = %q %v, %v; want Tết Nguyên Đán", h.Name, h.Kind, ok)
	}
	if n := len(HolidaysBetween(d(2010, time.February, 14), d(2010, time.February, 14))); n != 1 {
		t.Errorf("expected 1 holiday on 2010-02-14, got %d", n)
	}
}

func TestHolidayKind_String(t *testing.T) {
	tests := []struct {
		kind HolidayKind
		want string
	}{
		{SolarHoliday, "solar"},
		{LunarHoliday, "lunar"},
		{CustomHoliday, "custom"},
		{HolidayKind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("HolidayKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
		text, err := tt.kind.MarshalText()
		if err != nil || string(text) != tt.want {
			t.Errorf("HolidayKind(%d).MarshalText() = %q, %v", tt.kind, text, err)
		}
	}
}

func TestLeapMonthIsNotAHoliday(t *testing.T) {
	// 2023 repeats month 2. Lunar holidays fall in the regular month only.
	cal := New()
	for _, day := range []time.Time{d(2023, time.March, 22), d(2023, time.April, 5)} {
		ld := cal.Lunar(day)
		if !ld.Leap {
			t.Fatalf("Lunar(%s) = %v, want a leap month day", day.Format("2006-01-02"), ld)
		}
		if cal.IsHoliday(day) {
			t.Errorf("IsHoliday(%s) = true in a leap month", day.Format("2006-01-02"))
		}
	}
}

func TestHolidaysInYear(t *testing.T) {
	holidays := HolidaysInYear(2024)
	if len(holidays) != 19 {
		t.Fatalf("expected 19 holidays in 2024, got %d", len(holidays))
	}
	if holidays[0].Date != d(2024, time.January, 1) {
		t.Errorf("first holiday = %s, want 2024-01-01", holidays[0].Date.Format("2006-01-02"))
	}
	last := holidays[len(holidays)-1]
	if last.Date != d(2024, time.December, 25) {
		t.Errorf("last holiday = %s, want 2024-12-25", last.Date.Format("2006-01-02"))
	}

	for i := 1; i < len(holidays); i++ {
		if !holidays[i].Date.After(holidays[i-1].Date) {
			t.Errorf("not sorted at index %d", i)
		}
	}
}

func TestHolidaysInYear_Lunar2026(t *testing.T) {
	want := []time.Time{
		d(2026, time.February, 10),
		d(2026, time.February, 17),
		d(2026, time.March, 3),
		d(2026, time.April, 26),
		d(2026, time.May, 31),
		d(2026, time.June, 19),
		d(2026, time.August, 27),
		d(2026, time.September, 25),
	}
	var got []time.Time
	for _, h := range HolidaysInYear(2026) {
		if h.Kind == LunarHoliday {
			got = append(got, h.Date)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lunar holidays of 2026 mismatch (-want +got):\n%s", diff)
	}
}

func TestHolidaysInMonth(t *testing.T) {
	holidays := HolidaysInMonth(2024, time.February)
	want := []string{"Ông Táo chầu trời", "Tết Nguyên Đán", "Valentine", "Tết Nguyên Tiêu"}
	var got []string
	for _, h := range holidays {
		got = append(got, h.Name)
		if h.Date.Month() != time.February {
			t.Errorf("unexpected month: %v", h.Date)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HolidaysInMonth(2024, February) mismatch (-want +got):\n%s", diff)
	}
}

func TestHolidaysInMonth_Empty(t *testing.T) {
	holidays := HolidaysInMonth(2024, time.July)
	if len(holidays) != 0 {
		t.Errorf("expected 0 holidays in July 2024, got %d", len(holidays))
	}
}

func TestHolidaysBetween(t *testing.T) {
	// 30/4 Reunification Day, 1/5 Labour Day, 15/4 lunar Buddha's Birthday.
	holidays := HolidaysBetween(d(2024, time.April, 29), d(2024, time.May, 22))
	if len(holidays) != 3 {
		t.Errorf("expected 3 holidays, got %d", len(holidays))
	}

	for i := 1; i < len(holidays); i++ {
		if !holidays[i].Date.After(holidays[i-1].Date) {
			t.Errorf("not sorted at index %d", i)
		}
	}
}

func TestHolidaysBetween_Reversed(t *testing.T) {
	holidays := HolidaysBetween(d(2024, time.December, 31), d(2024, time.January, 1))
	if len(holidays) != 0 {
		t.Errorf("expected 0 holidays for reversed range, got %d", len(holidays))
	}
}

func TestHolidaysBetween_SameDay_Holiday(t *testing.T) {
	holidays := HolidaysBetween(d(2024, time.January, 1), d(2024, time.January, 1))
	if len(holidays) != 1 {
		t.Errorf("expected 1 holiday, got %d", len(holidays))
	}
}

func TestHolidaysBetween_SameDay_NonHoliday(t *testing.T) {
	holidays := HolidaysBetween(d(2024, time.June, 12), d(2024, time.June, 12))
	if len(holidays) != 0 {
		t.Errorf("expected 0 holidays, got %d", len(holidays))
	}
}

func TestCalendar_Lunar(t *testing.T) {
	cal := New()
	if got := cal.Lunar(d(2026, time.October, 14)); got != (LunarDate{2026, 9, 5, false}) {
		t.Errorf("Lunar(2026-10-14) = %v, want 05/09/2026", got)
	}
	if got := Lunar(d(2026, time.January, 29)); got != (LunarDate{2025, 12, 11, false}) {
		t.Errorf("Lunar(2026-01-29) = %v, want 11/12/2025", got)
	}
}

func TestCalendar_Solar(t *testing.T) {
	cal := New()
	got, err := cal.Solar(LunarDate{Year: 2026, Month: 1, Day: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, time.February, 17, 0, 0, 0, 0, ictZone)
	if !got.Equal(want) || got.Location() != cal.Location() {
		t.Errorf("Solar(1/1/2026) = %v, want %v", got, want)
	}

	if _, err := cal.Solar(LunarDate{Year: 2024, Month: 2, Day: 1, Leap: true}); !errors.Is(err, ErrNoLeapMonth) {
		t.Errorf("Solar(leap 2/2024) error = %v, want ErrNoLeapMonth", err)
	}
}

func TestNewInZone(t *testing.T) {
	cal := NewInZone(8)
	if cal.TimeZone() != 8 {
		t.Errorf("TimeZone() = %v, want 8", cal.TimeZone())
	}

	// Noon on 29 Jan 1968 local time: Tết in Vietnam, still the old year
	// one hour further east.
	noon := time.Date(1968, time.January, 29, 12, 0, 0, 0, cal.Location())
	if got := cal.Lunar(noon); got != (LunarDate{1967, 12, 30, false}) {
		t.Errorf("Lunar(1968-01-29) in UTC+8 = %v, want 30/12/1967", got)
	}
	if cal.HolidayName(noon) != "" {
		t.Errorf("HolidayName(1968-01-29) in UTC+8 = %q, want none", cal.HolidayName(noon))
	}
	if got := New().HolidayName(noon); got != "Tết Nguyên Đán" {
		t.Errorf("HolidayName(1968-01-29) in Vietnam = %q, want Tết Nguyên Đán", got)
	}
}

// --- Custom holiday tests ---

func TestCustomHoliday_AddAndRemove(t *testing.T) {
	cal := New()
	day := d(2024, time.June, 12)

	if cal.IsHoliday(day) {
		t.Fatal("June 12 should not be a holiday by default")
	}

	cal.AddCustomHoliday(day, "Giỗ ông nội")
	if !cal.IsHoliday(day) {
		t.Fatal("June 12 should be a holiday after adding")
	}
	if got := cal.HolidayName(day); got != "Giỗ ông nội" {
		t.Errorf("HolidayName = %q, want Giỗ ông nội", got)
	}
	if h, _ := cal.Holiday(day); h.Kind != CustomHoliday {
		t.Errorf("Kind = %v, want custom", h.Kind)
	}

	cal.RemoveCustomHoliday(day)
	if cal.IsHoliday(day) {
		t.Fatal("June 12 should not be a holiday after removal")
	}
}

func TestCustomHoliday_Overwrite(t *testing.T) {
	cal := New()
	day := d(2024, time.June, 12)

	cal.AddCustomHoliday(day, "Ngày A")
	cal.AddCustomHoliday(day, "Ngày B")
	if got := cal.HolidayName(day); got != "Ngày B" {
		t.Errorf("HolidayName = %q, want Ngày B", got)
	}
}

func TestCustomHoliday_AppearsInRange(t *testing.T) {
	cal := New()
	day := d(2024, time.July, 12)
	cal.AddCustomHoliday(day, "Giỗ ông nội")

	holidays := cal.HolidaysInMonth(2024, time.July)
	if len(holidays) != 1 {
		t.Fatalf("expected 1 holiday in July, got %d", len(holidays))
	}
	if holidays[0].Name != "Giỗ ông nội" {
		t.Errorf("expected Giỗ ông nội, got %q", holidays[0].Name)
	}
}

func TestCustomHoliday_TakesPrecedence(t *testing.T) {
	cal := New()
	tet := d(2024, time.February, 10)
	cal.AddCustomHoliday(tet, "Tết nhà mình")

	if got := cal.HolidayName(tet); got != "Tết nhà mình" {
		t.Errorf("custom should take precedence, got %q", got)
	}

	holidays := cal.HolidaysBetween(tet, tet)
	if len(holidays) != 1 {
		t.Errorf("expected 1 holiday (no duplicate), got %d", len(holidays))
	}
}

func TestRemoveBuiltinHoliday(t *testing.T) {
	cal := New()
	tet := d(2024, time.February, 10)

	cal.RemoveHoliday(tet)
	if cal.IsHoliday(tet) {
		t.Fatal("Tết should not be a holiday after removal")
	}
	if got := cal.HolidayName(tet); got != "" {
		t.Errorf("HolidayName should be empty, got %q", got)
	}
	// Only that one date is suppressed.
	if !cal.IsHoliday(d(2025, time.January, 29)) {
		t.Error("Tết 2025 should still be a holiday")
	}

	cal.RestoreHoliday(tet)
	if !cal.IsHoliday(tet) {
		t.Fatal("Tết should be restored")
	}
}

func TestRemoveBuiltinHoliday_InRange(t *testing.T) {
	cal := New()
	cal.RemoveHoliday(d(2024, time.January, 1))

	for _, h := range cal.HolidaysInMonth(2024, time.January) {
		if h.Name == "Tết Dương Lịch" {
			t.Error("removed holiday should not appear in range queries")
		}
	}
}

func TestCustomHoliday_DoesNotAffectDefault(t *testing.T) {
	cal := New()
	day := d(2024, time.August, 15)
	cal.AddCustomHoliday(day, "Giỗ")

	if IsHoliday(day) {
		t.Fatal("package-level should not see cal's custom holiday")
	}
}

func TestRemoveCustomHoliday_NoEffect(t *testing.T) {
	cal := New()
	// Removing a non-existent custom holiday should not panic or error.
	cal.RemoveCustomHoliday(d(2024, time.June, 12))
}

// --- Concurrency tests ---

func TestConcurrentAccess(t *testing.T) {
	cal := New()
	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cal.IsHoliday(d(2024, time.February, 10))
			cal.HolidayName(d(2024, time.September, 17))
			cal.HolidaysInMonth(2024, time.February)
		}()
	}

	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			day := d(2024, time.June, i%28+1)
			cal.AddCustomHoliday(day, "thử")
			cal.RemoveCustomHoliday(day)
			cal.RemoveHoliday(day)
			cal.RestoreHoliday(day)
		}(i)
	}

	wg.Wait()
}
