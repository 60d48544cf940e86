package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsMapper_CalculatePercentage(t *testing.T) {
	mapper := NewMetricsMapper()

	tests := []struct {
		name     string
		part     int64
		total    int64
		expected float64
	}{
		{"half", 50, 100, 50.0},
		{"full", 100, 100, 100.0},
		{"zero part", 0, 100, 0.0},
		{"zero total", 50, 0, 0.0},
		{"negative total", 50, -1, 0.0},
		{"negative part", -5, 100, 0.0},
		{"rounding input", 1, 3, 100.0 / 3.0},
		{"over one hundred", 150, 100, 150.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, mapper.CalculatePercentage(tt.part, tt.total), 1e-9)
		})
	}
}

func TestMetricsMapper_FormatPercentage(t *testing.T) {
	mapper := NewMetricsMapper()

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"whole", 50.0, "50.0%"},
		{"rounds half up", 33.35, "33.4%"},
		{"rounds down", 33.34, "33.3%"},
		{"zero", 0.0, "0.0%"},
		{"NaN", math.NaN(), "0.0%"},
		{"positive infinity", math.Inf(1), "0.0%"},
		{"negative infinity", math.Inf(-1), "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.FormatPercentage(tt.value))
		})
	}
}
