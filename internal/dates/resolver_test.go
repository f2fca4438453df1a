package dates

import (
	"testing"
	"time"
)

// fixedResolver pins the clock to the given UTC instant.
func fixedResolver(t *testing.T, instant time.Time) *Resolver {
	t.Helper()
	r, err := NewResolverAt(DefaultTimezone, func() time.Time { return instant })
	if err != nil {
		t.Fatalf("NewResolverAt: %v", err)
	}
	return r
}

func TestWeekdayAt_Offsets(t *testing.T) {
	// 2025-06-11 12:00 in Lima is a Wednesday.
	r := fixedResolver(t, time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC))

	tests := []struct {
		offset int
		want   string
	}{
		{OffsetYesterday, "Martes"},
		{OffsetToday, "Miercoles"},
		{OffsetTomorrow, "Jueves"},
		{OffsetDayAfterTomorrow, "Viernes"},
		{7, "Miercoles"},
		{-7, "Miercoles"},
	}
	for _, tt := range tests {
		if got := r.WeekdayAt(tt.offset); got != tt.want {
			t.Errorf("WeekdayAt(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestWeekdayAt_ZeroMatchesToday(t *testing.T) {
	r := fixedResolver(t, time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC))
	_, weekday := r.Today()
	if got := r.WeekdayAt(0); got != weekday {
		t.Errorf("WeekdayAt(0) = %q, Today() weekday = %q", got, weekday)
	}
}

func TestWeekdayAt_YearBoundary(t *testing.T) {
	// 2024-12-31 12:00 Lima time, a Tuesday.
	r := fixedResolver(t, time.Date(2024, 12, 31, 17, 0, 0, 0, time.UTC))
	if got := r.WeekdayAt(1); got != "Miercoles" {
		t.Errorf("WeekdayAt(1) across new year = %q, want Miercoles", got)
	}
	if got := r.WeekdayAt(-1); got != "Lunes" {
		t.Errorf("WeekdayAt(-1) = %q, want Lunes", got)
	}
}

func TestToday_UsesReferenceTimezone(t *testing.T) {
	// 03:00 UTC on Jan 1st is still Dec 31st in Lima (UTC-5).
	r := fixedResolver(t, time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC))
	date, weekday := r.Today()
	if date != "2024-12-31" {
		t.Errorf("Today() date = %q, want 2024-12-31", date)
	}
	if weekday != "Martes" {
		t.Errorf("Today() weekday = %q, want Martes", weekday)
	}
}

func TestNewResolver_BadTimezone(t *testing.T) {
	if _, err := NewResolver("America/Nowhere"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestWeekdayNames_Order(t *testing.T) {
	names := WeekdayNames()
	if len(names) != 7 {
		t.Fatalf("expected 7 weekday names, got %d", len(names))
	}
	if names[0] != "Lunes" || names[6] != "Domingo" {
		t.Errorf("unexpected order: %v", names)
	}
}
