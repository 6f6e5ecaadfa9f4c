package schedule

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	clockToken = regexp.MustCompile(`\d{1,2}:\d{2}`)
	rangeToken = regexp.MustCompile(`\d{1,2}-\d{1,2}`)
)

// shiftTimes maps well-known shift labels to their hour range, for
// display when the type itself carries no time token.
var shiftTimes = map[string]string{
	"hc manhã":           "7-13",
	"hc tarde":           "13-19",
	"corredor manhã":     "7-13",
	"corredor tarde":     "13-19",
	"zona norte manhã":   "7-13",
	"zona norte tarde":   "13-19",
	"zona norte (manhã)": "7-13",
	"zona norte (tarde)": "13-19",
	"noturno":            "19-7",
	"noturno (19-07)":    "19-7",
	"apoio":              "19-01",
	"apoio (19-01)":      "19-01",
}

// EventLabel derives the short calendar label for an event from its type
// and description: a canonical tag ("HC", "ZN", "Pilates", ...) plus a
// time token when one can be found. Short descriptions that differ from
// the type serve as a fallback label.
func EventLabel(typ, desc string) string {
	tl := strings.ToLower(typ)

	timeStr := clockToken.FindString(desc)
	if timeStr == "" {
		timeStr = clockToken.FindString(typ)
	}
	if timeStr == "" {
		timeStr = rangeToken.FindString(typ)
	}

	label := typ
	switch {
	case strings.Contains(tl, "natação"), strings.Contains(tl, "natacao"):
		label = "Natação"
	case strings.Contains(tl, "musculação"), strings.Contains(tl, "musculacao"):
		label = "Musculação"
	case strings.Contains(tl, "pilates"):
		label = "Pilates"
	case strings.Contains(tl, "hc"):
		label = "HC"
	case strings.Contains(tl, "zn"), strings.Contains(tl, "zona norte"):
		label = "ZN"
	case strings.Contains(tl, "noturno"):
		label = "Noturno"
	case strings.Contains(tl, "apoio"):
		label = "Apoio"
	case strings.Contains(tl, "corredor"):
		label = "Corredor"
	}

	if timeStr == "" {
		timeStr = shiftTimes[tl]
	}

	if timeStr != "" && !strings.Contains(label, timeStr) {
		return label + " " + timeStr
	}
	if timeStr == "" && desc != "" && desc != typ && utf8.RuneCountInString(desc) < 20 {
		return desc
	}
	return label
}

// EventColor maps an event type to its display color token. Passed
// shifts are greyed out regardless of type. Keywords are checked in a
// fixed order, so a composite type like "HC Noturno" takes the HC color.
func EventColor(typ string, isPassed bool) string {
	if isPassed {
		return "gray"
	}
	tl := strings.ToLower(typ)
	switch {
	case strings.Contains(tl, "natação"), strings.Contains(tl, "natacao"):
		return "blue"
	case strings.Contains(tl, "musculação"), strings.Contains(tl, "musculacao"):
		return "green"
	case strings.Contains(tl, "pilates"):
		return "purple"
	case strings.Contains(tl, "hc"):
		return "red"
	case strings.Contains(tl, "zn"), strings.Contains(tl, "zona norte"):
		return "amber"
	case strings.Contains(tl, "apoio"):
		return "pink"
	case strings.Contains(tl, "noturno"):
		return "indigo"
	default:
		return "slate"
	}
}
