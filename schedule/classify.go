package schedule

import "strings"

// Normalized event types produced by the classifier. The type column in
// storage stays free text; these are the labels imported records are
// mapped onto.
const (
	TypeHCManha   = "HC Manhã"
	TypeHCTarde   = "HC Tarde"
	TypeHCNoturno = "HC Noturno"
	TypeZNManha   = "Zona Norte (Manhã)"
	TypeZNTarde   = "Zona Norte (Tarde)"
	TypeNoturno   = "Noturno (19-07)"
	TypeApoio     = "Apoio (19-01)"
	TypePessoal   = "Pessoal"
)

// personalColor is the calendar color the export app assigns to personal
// (non-shift) entries.
const personalColor = "#fde3a7"

var personalKeywords = []string{"formatura", "nutri", "samila", "oferecer"}

// Classify maps the free-text title/place of an imported record to a
// normalized event type. Rules are evaluated in order and the first match
// wins. A record with no usable information defaults to Zona Norte
// (Manhã), the most common shift in the historical data.
func Classify(title, place string) string {
	t := strings.ToLower(title)
	p := strings.ToLower(place)

	isHC := strings.Contains(t, "hc") || strings.Contains(p, "hc")
	isZN := strings.Contains(t, "zn") || strings.Contains(t, "zona norte") ||
		strings.Contains(p, "zona norte") || strings.Contains(t, "corredor") ||
		strings.Contains(t, "observação") || strings.Contains(t, "observacao")

	switch {
	case strings.Contains(t, "apoio"):
		return TypeApoio

	case strings.Contains(t, "noturno"):
		if isHC {
			return TypeHCNoturno
		}
		return TypeNoturno

	case strings.Contains(t, "corredor"),
		strings.Contains(t, "observação"),
		strings.Contains(t, "observacao"):
		return TypeZNTarde

	case strings.Contains(t, "13-19"), strings.Contains(t, "tarde"):
		if isHC {
			return TypeHCTarde
		}
		return TypeZNTarde

	case strings.Contains(t, "manhã"), strings.Contains(t, "manha"),
		strings.Contains(t, "07-13"):
		if isHC || strings.Contains(p, "hc") {
			return TypeHCManha
		}
		return TypeZNManha

	case hasPersonalKeyword(t):
		return TypePessoal

	case strings.Contains(t, "fixo"):
		if strings.Contains(t, "noturno") {
			return TypeNoturno
		}
		if strings.Contains(t, "13-19") {
			return TypeZNTarde
		}
		return TypeZNManha

	case isHC:
		return TypeHCManha

	case isZN:
		return TypeZNManha

	default:
		// no location information at all: historically always Zona Norte
		return TypeZNManha
	}
}

// IsPassedStatus reports whether an imported record describes a shift
// that was passed to someone else ("passei" in place or title).
func IsPassedStatus(place, title string) bool {
	p := strings.ToLower(place)
	t := strings.ToLower(title)
	return p == "passei" || strings.Contains(p, "passei") || strings.Contains(t, "passei")
}

// IsPersonalEvent reports whether an imported record is a personal entry
// rather than a shift, either by its reserved calendar color or by a
// known personal keyword in the title.
func IsPersonalEvent(title, colorHex string) bool {
	if colorHex == personalColor {
		return true
	}
	return hasPersonalKeyword(strings.ToLower(title))
}

func hasPersonalKeyword(lowerTitle string) bool {
	for _, kw := range personalKeywords {
		if strings.Contains(lowerTitle, kw) {
			return true
		}
	}
	return false
}

// ClassifyRecord turns a raw imported row into an event-shaped record.
func ClassifyRecord(rec ImportedRecord) ClassifiedRecord {
	return ClassifiedRecord{
		Date:     rec.Date,
		Type:     Classify(rec.Title, rec.Place),
		Title:    rec.Title,
		IsPassed: IsPassedStatus(rec.Place, rec.Title),
	}
}

// ClassifyRecords classifies a whole import run, preserving order.
func ClassifyRecords(records []ImportedRecord) []ClassifiedRecord {
	out := make([]ClassifiedRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, ClassifyRecord(rec))
	}
	return out
}
