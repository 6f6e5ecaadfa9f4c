package schedule

import (
	"regexp"
	"strconv"
)

var shiftRange = regexp.MustCompile(`(\d{1,2})-(\d{1,2})`)

// ShiftHours returns the duration in hours encoded in a shift type label,
// e.g. "Zona Norte Tarde 13-19" -> 6. A label without an H-H range is not
// a shift and counts as zero hours. A range that ends before it starts
// crosses midnight ("Noturno 19-7" -> 12).
func ShiftHours(label string) int {
	m := shiftRange.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	if end < start {
		// overnight shift
		return (24 - start) + end
	}
	return end - start
}
