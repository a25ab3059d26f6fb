package size

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// The separator also admits Unicode space separators such as U+00A0,
// matching what strings.TrimSpace strips around the input.
var sizePattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)[\s\p{Zs}]*(\p{L}+)$`)

// Parse converts a size string such as "1.5 KiB" into a byte count.
// Units match case-insensitively. The numeral is scaled exactly and the
// result rounded half away from zero to a whole number of bytes.
func (c *Converter) Parse(text string) (float64, error) {
	bytes, err := c.exact(text)
	if err != nil {
		return 0, err
	}

	f, _ := new(big.Float).SetInt(bytes).Float64()
	if math.IsInf(f, 0) {
		return 0, &ParseError{Input: text, Reason: "value out of range"}
	}

	return f, nil
}

// ParseBytes is Parse for results that must fit in a uint64.
func (c *Converter) ParseBytes(text string) (uint64, error) {
	bytes, err := c.exact(text)
	if err != nil {
		return 0, err
	}

	if !bytes.IsUint64() {
		return 0, &ParseError{Input: text, Reason: "value exceeds 64-bit byte count"}
	}

	return bytes.Uint64(), nil
}

// exact returns round(numeral * base^i) computed on rationals.
func (c *Converter) exact(text string) (*big.Int, error) {
	numeral, i, err := c.split(text)
	if err != nil {
		return nil, err
	}

	value, ok := new(big.Rat).SetString(numeral)
	if !ok {
		return nil, &ParseError{Input: text, Reason: "invalid number"}
	}

	scale := new(big.Int).Exp(big.NewInt(int64(c.cfg.Base)), big.NewInt(int64(i)), nil)
	value.Mul(value, new(big.Rat).SetInt(scale))

	// floor(num/den + 1/2) == (2*num + den) / (2*den) for non-negative values
	num := new(big.Int).Lsh(value.Num(), 1)
	num.Add(num, value.Denom())
	den := new(big.Int).Lsh(value.Denom(), 1)

	return num.Quo(num, den), nil
}

// split extracts the numeral and the unit index from text.
func (c *Converter) split(text string) (string, int, error) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return "", 0, &ParseError{Input: text, Reason: "empty input"}
	}

	match := sizePattern.FindStringSubmatch(clean)
	if match == nil {
		return "", 0, &ParseError{Input: text, Reason: "expected <number> <unit>"}
	}

	i := c.lookup(match[2])
	if i < 0 {
		return "", 0, &ParseError{
			Input:  text,
			Reason: "unknown unit " + strconv.Quote(match[2]) + ", want one of " + strings.Join(c.units, ", "),
		}
	}

	numeral := strings.TrimSuffix(match[1], ".")
	if strings.HasPrefix(numeral, ".") {
		numeral = "0" + numeral
	}

	return numeral, i, nil
}

func (c *Converter) lookup(unit string) int {
	for i, u := range c.units {
		if strings.EqualFold(u, unit) {
			return i
		}
	}

	return -1
}
