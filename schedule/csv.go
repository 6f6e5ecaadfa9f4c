package schedule

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"
)

// ParseImportCSV reads a calendar export. The first row is the header;
// the required columns are start_date, title, place, notes and color.
// Fields may be double-quoted and contain embedded commas. Rows with a
// missing or unparseable start_date are skipped, not errors; the second
// return value counts them so callers can report the skips.
func ParseImportCSV(r io.Reader) ([]ImportedRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []ImportedRecord{}, 0, nil
		}
		return nil, 0, err
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := []ImportedRecord{}
	skipped := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		date := importDate(field(row, "start_date"))
		if date == "" {
			skipped++
			continue
		}
		records = append(records, ImportedRecord{
			Date:  date,
			Title: field(row, "title"),
			Place: field(row, "place"),
			Notes: field(row, "notes"),
			Color: field(row, "color"),
		})
	}
	return records, skipped, nil
}

// importDate extracts the calendar day from an ISO datetime such as
// "2026-01-01T07:00:00-03:00". Only the date portion is used; the time
// and offset in exports are unreliable.
func importDate(start string) string {
	if start == "" {
		return ""
	}
	day := start
	if i := strings.IndexByte(start, 'T'); i >= 0 {
		day = start[:i]
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return ""
	}
	return day
}
