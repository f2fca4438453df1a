package dates

import (
	"fmt"
	"time"
)

// DefaultTimezone anchors all date math. America/Lima observes no DST, which
// keeps day-offset arithmetic stable year round.
const DefaultTimezone = "America/Lima"

// Day-offset vocabulary recognized in questions.
const (
	OffsetToday            = 0
	OffsetTomorrow         = 1
	OffsetDayAfterTomorrow = 2
	OffsetYesterday        = -1
)

// weekdayNames are the capitalized, accent-free Spanish weekday names the
// schedule stores after normalization.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miercoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sabado",
	time.Sunday:    "Domingo",
}

// WeekdayNames lists the weekday names in Monday-to-Sunday order. The intent
// extractor scans questions for them in exactly this order.
func WeekdayNames() []string {
	return []string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado", "Domingo"}
}

// Resolver turns day offsets from "now" into weekday names, always in its
// fixed timezone.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Resolver{loc: loc, now: time.Now}, nil
}

// NewResolverAt pins the clock. Tests use it to make answers reproducible.
func NewResolverAt(timezone string, now func() time.Time) (*Resolver, error) {
	r, err := NewResolver(timezone)
	if err != nil {
		return nil, err
	}
	r.now = now
	return r, nil
}

// Today returns the current date as YYYY-MM-DD and its weekday name.
func (r *Resolver) Today() (string, string) {
	d := r.now().In(r.loc)
	return d.Format(time.DateOnly), weekdayNames[d.Weekday()]
}

// WeekdayAt returns the weekday name offsetDays away from today. AddDate
// handles month and year boundaries.
func (r *Resolver) WeekdayAt(offsetDays int) string {
	d := r.now().In(r.loc).AddDate(0, 0, offsetDays)
	return weekdayNames[d.Weekday()]
}
