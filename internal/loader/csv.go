package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rcondori/horabot/internal/core"
)

// LoadCSV reads the schedule spreadsheet export. The first line is the
// header; localized column names pass through untouched, the repository
// canonicalizes them. Short rows are padded with empty values.
func LoadCSV(path string) ([]core.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse schedule file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("schedule file %s has no header row", path)
	}

	headers := records[0]
	rows := make([]core.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(core.Row, len(headers))
		for i, header := range headers {
			if i < len(rec) {
				row[header] = rec[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
