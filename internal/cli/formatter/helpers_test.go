package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "0 days", FormatDays(0))
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "87 days", FormatDays(87))
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{22, "22"},
		{5.5, "5.5"},
		{0.5, "0.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRate(tt.in))
		})
	}
}

func TestFormatTotals(t *testing.T) {
	assert.Equal(t, "87 working days (~17.4 weeks, ~4.0 months)", FormatTotals(87, 17.4, 4.0))
}

func TestRenderBox(t *testing.T) {
	got := RenderBox("advice", "keep going")
	assert.Contains(t, got, "ADVICE")
	assert.Contains(t, got, "keep going")
}
