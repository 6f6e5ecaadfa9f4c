package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftHours(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"HC 7-13", 6},
		{"Zona Norte Tarde 13-19", 6},
		{"ZN 13-19", 6},
		{"Noturno 19-7", 12},
		{"Noturno (19-07)", 12},
		{"Apoio (19-01)", 6},
		{"Pessoal", 0},
		{"Musculação", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ShiftHours(tt.label))
		})
	}
}

func TestShiftHoursOvernightWrap(t *testing.T) {
	// end before start means the shift crosses midnight
	assert.Equal(t, 6, ShiftHours("19-01"))
	assert.Equal(t, 12, ShiftHours("19-7"))
	assert.Equal(t, 10, ShiftHours("21-7"))
}

func TestShiftHoursNoRangeIsZero(t *testing.T) {
	// a label without an H-H token is a defined zero-duration result,
	// not an error
	assert.Zero(t, ShiftHours("Plantão sem horário"))
	assert.Zero(t, ShiftHours("Zona Norte (Manhã)"))
}
