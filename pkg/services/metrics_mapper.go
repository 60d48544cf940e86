package services

import (
	"fmt"
	"math"
)

// MetricsMapper holds the pure percentage math and formatting shared by the
// metric endpoints. It is stateless and safe for concurrent use.
type MetricsMapper struct{}

// NewMetricsMapper creates a new metrics mapper.
func NewMetricsMapper() *MetricsMapper {
	return &MetricsMapper{}
}

// CalculatePercentage returns part*100/total, or 0.0 when total <= 0 or
// part < 0. Division by zero never reaches the formatter.
func (m *MetricsMapper) CalculatePercentage(part, total int64) float64 {
	if total <= 0 || part < 0 {
		return 0.0
	}
	return float64(part) * 100.0 / float64(total)
}

// FormatPercentage renders a percentage with one fractional digit and a
// US-style decimal point, e.g. 43.612 -> "43.6%". NaN and infinities render
// as "0.0%".
func (m *MetricsMapper) FormatPercentage(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", value)
}
