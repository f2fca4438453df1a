package schedule

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rcondori/horabot/internal/core"
)

// Excerpt renders at most maxRows rows and maxCols columns of the repository
// as a plain-text table. The caps keep the generative prompt bounded no
// matter how large the input spreadsheet was; zero or negative caps mean
// unbounded.
func (r *Repository) Excerpt(maxRows, maxCols int) string {
	cols := r.columns
	if maxCols > 0 && len(cols) > maxCols {
		cols = cols[:maxCols]
	}
	rows := r.records
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = strings.ToUpper(col)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, rec := range rows {
		values := make([]string, len(cols))
		for i, col := range cols {
			values[i] = fieldValue(rec, col)
		}
		fmt.Fprintln(w, strings.Join(values, "\t"))
	}

	w.Flush()
	return strings.TrimRight(sb.String(), "\n")
}

func fieldValue(rec core.ScheduleRecord, col string) string {
	switch col {
	case ColTeacher:
		return rec.Teacher
	case ColCourse:
		return rec.Course
	case ColLocation:
		return rec.Location
	case ColFacility:
		return rec.Facility
	case ColDay:
		return rec.Day
	default:
		return rec.Extra[col]
	}
}
