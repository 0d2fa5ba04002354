package money

import (
	"math"
	"strconv"
)

// Money is an amount in minor currency units.
type Money struct {
	minor int64
}

func New(minor int64) Money {
	return Money{minor: minor}
}

func Zero() Money {
	return Money{}
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) IsZero() bool     { return m.minor == 0 }
func (m Money) IsPositive() bool { return m.minor > 0 }
func (m Money) IsNegative() bool { return m.minor < 0 }

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

func (m Money) Sub(other Money) Money {
	return Money{minor: m.minor - other.minor}
}

// AddChecked reports false instead of wrapping around on overflow.
func (m Money) AddChecked(other Money) (Money, bool) {
	if (other.minor > 0 && m.minor > math.MaxInt64-other.minor) ||
		(other.minor < 0 && m.minor < math.MinInt64-other.minor) {
		return Money{}, false
	}
	return Money{minor: m.minor + other.minor}, true
}

func (m Money) MulChecked(n int64) (Money, bool) {
	if m.minor == 0 || n == 0 {
		return Money{}, true
	}
	r := m.minor * n
	if r/n != m.minor {
		return Money{}, false
	}
	return Money{minor: r}, true
}

func (m Money) GreaterOrEqual(other Money) bool {
	return m.minor >= other.minor
}

func (m Money) LessThan(other Money) bool {
	return m.minor < other.minor
}

func (m Money) String() string {
	return strconv.FormatInt(m.minor, 10)
}
