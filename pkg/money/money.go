package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount of BOM in minor units (hundredths). Keeping amounts as
// scaled integers makes add/subtract exact, so repeated fractional operations
// never drift the way binary floats do.
type Money int64

const (
	// Scale is the number of minor units in one BOM.
	Scale = 100

	// MaxAmount bounds a single amount so that balance arithmetic cannot
	// overflow int64 even across many operations.
	MaxAmount = math.MaxInt64 / 1000
)

var ErrInvalidAmount = errors.New("invalid amount")

// FromFloat converts a display-unit value (e.g. 25.50) to Money. Values that
// are not finite, out of range, or carry more precision than minor units fail
// with ErrInvalidAmount.
func FromFloat(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: not a finite number", ErrInvalidAmount)
	}
	scaled := v * Scale
	if scaled > MaxAmount || scaled < -MaxAmount {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, 2)
	}
	return Money(int64(rounded)), nil
}

// Parse converts a decimal string such as "25.50" to Money.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return FromFloat(v)
}

// FromMinor wraps a raw minor-unit value, e.g. a balance read from storage.
func FromMinor(v int64) Money {
	return Money(v)
}

func (m Money) Minor() int64 { return int64(m) }

func (m Money) Add(other Money) Money { return m + other }

func (m Money) Sub(other Money) Money { return m - other }

func (m Money) Neg() Money { return -m }

func (m Money) IsNegative() bool { return m < 0 }

func (m Money) IsPositive() bool { return m > 0 }

func (m Money) IsZero() bool { return m == 0 }

// Compare returns -1, 0 or 1 like strings.Compare.
func (m Money) Compare(other Money) int {
	switch {
	case m < other:
		return -1
	case m > other:
		return 1
	}
	return 0
}

// Float returns the display-unit value. For presentation only, never for
// arithmetic.
func (m Money) Float() float64 {
	return float64(m) / Scale
}

// Display renders the amount with its currency, e.g. "25.50 BOM".
func (m Money) Display(currency string) string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, v/Scale, v%Scale, currency)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/Scale, v%Scale)
}
