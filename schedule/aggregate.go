package schedule

import (
	"fmt"
	"strings"
)

// TotalZNHours sums shift hours for Zona Norte events inside the billing
// window for month/year: day 20 of the preceding month through day 19 of
// the given month, inclusive. Cancelled events are skipped. Dates are
// compared as YYYY-MM-DD strings, which orders the same as calendar days.
func TotalZNHours(events []StoredEvent, month, year int) int {
	prevMonth, prevYear := month-1, year
	if month == 1 {
		prevMonth, prevYear = 12, year-1
	}
	start := fmt.Sprintf("%04d-%02d-20", prevYear, prevMonth)
	end := fmt.Sprintf("%04d-%02d-19", year, month)

	total := 0
	for _, ev := range events {
		if ev.IsCancelled {
			continue
		}
		if ev.Date < start || ev.Date > end {
			continue
		}
		tl := strings.ToLower(ev.Type)
		if !strings.Contains(tl, "zona norte") && !strings.Contains(tl, "zn") {
			continue
		}
		total += ShiftHours(ev.Type)
	}
	return total
}
