//nolint:testpackage // internal functions require same package
package size

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	//nolint:govet // fieldalignment: test readability over optimization
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{1.005, 2, "1.01"},
		{2.5, 0, "3"},
		{1.5, 0, "2"},
		{0.125, 2, "0.13"},
		{0.001, 2, "0.00"},
		{9.995, 2, "10.00"},
		{99.95, 1, "100.0"},
		{1234.5678, 1, "1234.6"},
		{1, 3, "1.000"},
		{42, 0, "42"},
		{0.5, 0, "1"},
		{0.4999, 0, "0"},
		{1e21, 2, "1000000000000000000000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfAwayFromZero(tt.value, tt.precision), "value %v precision %d", tt.value, tt.precision)
	}
}

func TestUnitIndex(t *testing.T) {
	c := Decimal()

	assert.Equal(t, 0, c.unitIndex(0.5))
	assert.Equal(t, 0, c.unitIndex(999))
	assert.Equal(t, 1, c.unitIndex(1000))
	assert.Equal(t, 3, c.unitIndex(1e9))
	assert.Equal(t, len(c.units)-1, c.unitIndex(1e300))
}
