package schedule

import (
	"sort"
	"strings"

	"github.com/rcondori/horabot/internal/core"
)

// Canonical column names after header aliasing.
const (
	ColTeacher  = "docente"
	ColCourse   = "curso"
	ColLocation = "ubicacion"
	ColFacility = "instalacion"
	ColDay      = "dia"
)

// Sentinels for missing values and the fixed campus labels derived from the
// raw facility code.
const (
	TeacherUnknown   = "desconocido"
	PlaceUnspecified = "no especificado"
	CampusTacnaArica = "Campus Tacna y Arica"
	CampusAvParra    = "Campus Av. Parra"
)

// headerAliases maps normalized localized headers to canonical columns.
var headerAliases = map[string]string{
	"docente":     ColTeacher,
	"teacher":     ColTeacher,
	"curso":       ColCourse,
	"course":      ColCourse,
	"ubicacion":   ColLocation,
	"location":    ColLocation,
	"instalacion": ColFacility,
	"facility":    ColFacility,
	"dia":         ColDay,
	"day":         ColDay,
}

var requiredColumns = []string{ColTeacher, ColCourse, ColDay, ColFacility}

// Repository is the normalized, deduplicated schedule table. It is built once
// at startup and read-only afterwards.
type Repository struct {
	records []core.ScheduleRecord
	columns []string // canonical five first, then extras in sorted order
}

// Build constructs the repository from raw parsed rows: duplicates and fully
// empty rows are dropped, missing values replaced by sentinels, text fields
// normalized and the facility code mapped to its campus label. A missing
// required column aborts with *core.SchemaError.
func Build(rows []core.Row) (*Repository, error) {
	canonical := make([]core.Row, 0, len(rows))
	seenCols := map[string]bool{}
	var extraCols []string

	for _, row := range rows {
		cr := core.Row{}
		for header, value := range row {
			name := Normalize(header)
			if alias, ok := headerAliases[name]; ok {
				name = alias
			}
			cr[name] = value
			if !seenCols[name] {
				seenCols[name] = true
				if !isCanonical(name) {
					extraCols = append(extraCols, name)
				}
			}
		}
		canonical = append(canonical, cr)
	}

	for _, col := range requiredColumns {
		if !seenCols[col] {
			return nil, &core.SchemaError{Column: col}
		}
	}

	sort.Strings(extraCols)
	columns := append([]string{ColTeacher, ColCourse, ColLocation, ColFacility, ColDay}, extraCols...)

	seen := map[string]bool{}
	var records []core.ScheduleRecord
	for _, row := range canonical {
		if allEmpty(row) {
			continue
		}
		key := rowKey(row, columns)
		if seen[key] {
			continue
		}
		seen[key] = true
		records = append(records, buildRecord(row, extraCols))
	}

	return &Repository{records: records, columns: columns}, nil
}

func isCanonical(name string) bool {
	switch name {
	case ColTeacher, ColCourse, ColLocation, ColFacility, ColDay:
		return true
	}
	return false
}

func allEmpty(row core.Row) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func rowKey(row core.Row, columns []string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = row[col]
	}
	return strings.Join(parts, "\x1f")
}

func buildRecord(row core.Row, extraCols []string) core.ScheduleRecord {
	fieldOr := func(col, sentinel string) string {
		if strings.TrimSpace(row[col]) == "" {
			return sentinel
		}
		return row[col]
	}

	rec := core.ScheduleRecord{
		Teacher:  CleanField(fieldOr(ColTeacher, TeacherUnknown)),
		Course:   CleanField(row[ColCourse]),
		Location: CleanField(fieldOr(ColLocation, PlaceUnspecified)),
		Facility: CleanField(fieldOr(ColFacility, PlaceUnspecified)),
		Day:      CleanField(row[ColDay]),
	}
	rec.Facility = campusLabel(rec.Facility)

	if len(extraCols) > 0 {
		rec.Extra = make(map[string]string, len(extraCols))
		for _, col := range extraCols {
			rec.Extra[col] = strings.TrimSpace(row[col])
		}
	}
	return rec
}

// campusLabel maps a raw facility code to one of the two campus labels.
// Codes mentioning section A or B belong to the Tacna y Arica site, anything
// else is the Av. Parra site.
func campusLabel(code string) string {
	if strings.ContainsAny(strings.ToLower(code), "ab") {
		return CampusTacnaArica
	}
	return CampusAvParra
}

// Records returns the normalized rows in build order.
func (r *Repository) Records() []core.ScheduleRecord {
	return r.records
}

// Columns returns the canonical column order used for excerpts.
func (r *Repository) Columns() []string {
	return r.columns
}

func (r *Repository) Len() int {
	return len(r.records)
}

// FindByDay returns every record scheduled on the given weekday. The match is
// exact on normalized text, so accents and casing do not matter. An empty
// result is a normal outcome, never an error.
func (r *Repository) FindByDay(day string) []core.ScheduleRecord {
	want := Normalize(day)
	var out []core.ScheduleRecord
	for _, rec := range r.records {
		if Normalize(rec.Day) == want {
			out = append(out, rec)
		}
	}
	return out
}

// FindByTeacherSubstring returns every record whose teacher contains the
// fragment, case-insensitively.
func (r *Repository) FindByTeacherSubstring(fragment string) []core.ScheduleRecord {
	want := strings.ToLower(strings.TrimSpace(fragment))
	if want == "" {
		return nil
	}
	var out []core.ScheduleRecord
	for _, rec := range r.records {
		if strings.Contains(strings.ToLower(rec.Teacher), want) {
			out = append(out, rec)
		}
	}
	return out
}
