package size

import (
	"math"
	"strconv"
	"strings"
)

// Format renders bytes as "<number> <unit>" using the largest unit the
// value reaches. Values beyond the last unit are expressed in the last unit.
func (c *Converter) Format(bytes float64) (string, error) {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) || bytes < 0 {
		return "", &InvalidValueError{Value: bytes}
	}

	if bytes == 0 {
		return "0 " + c.units[0], nil
	}

	i := c.unitIndex(bytes)
	value := bytes / math.Pow(c.base, float64(i))

	return roundHalfAwayFromZero(value, c.precision) + " " + c.units[i], nil
}

// FormatInt64 is Format for signed integer byte counts.
func (c *Converter) FormatInt64(bytes int64) (string, error) {
	return c.Format(float64(bytes))
}

// FormatUint64 is Format for unsigned integer byte counts.
func (c *Converter) FormatUint64(bytes uint64) (string, error) {
	return c.Format(float64(bytes))
}

// unitIndex returns the largest i with bytes >= base^i, clamped to the table.
func (c *Converter) unitIndex(bytes float64) int {
	i := 0
	for i < len(c.units)-1 && bytes >= math.Pow(c.base, float64(i+1)) {
		i++
	}

	return i
}

// roundHalfAwayFromZero rounds a non-negative value to precision fraction
// digits on its shortest decimal representation, so 1.005 becomes "1.01"
// rather than following the binary value 1.00499999...
func roundHalfAwayFromZero(value float64, precision int) string {
	repr := strconv.FormatFloat(value, 'f', -1, 64)

	intPart, frac, _ := strings.Cut(repr, ".")
	if len(frac) <= precision {
		return withPoint(intPart, frac+strings.Repeat("0", precision-len(frac)))
	}

	digits := []byte(intPart + frac[:precision])

	if frac[precision] >= '5' {
		j := len(digits) - 1
		for ; j >= 0; j-- {
			if digits[j] != '9' {
				digits[j]++

				break
			}

			digits[j] = '0'
		}

		if j < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	split := len(digits) - precision

	return withPoint(string(digits[:split]), string(digits[split:]))
}

func withPoint(intPart, frac string) string {
	if frac == "" {
		return intPart
	}

	return intPart + "." + frac
}
