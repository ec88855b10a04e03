package media

import (
	"fmt"
	"strconv"
	"strings"
)

// Rational is an exact ratio of two integers, used for time bases and
// nominal frame rates. A valid Rational has Den > 0.
type Rational struct {
	Num int64
	Den int64
}

// IsValid reports whether the rational denotes a usable positive ratio.
func (r Rational) IsValid() bool {
	return r.Num > 0 && r.Den > 0
}

// Float returns the ratio as a float64.
func (r Rational) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Seconds converts a timestamp counted in units of r into seconds.
func (r Rational) Seconds(pts int64) float64 {
	return float64(pts) * r.Float()
}

// FromSeconds converts seconds back into timestamp units, truncating
// toward zero.
func (r Rational) FromSeconds(sec float64) int64 {
	return int64(sec / r.Float())
}

// String formats the rational as "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// ParseRational parses "num/den" or a bare integer "n" (meaning n/1).
func ParseRational(s string) (Rational, error) {
	num, den, ok := strings.Cut(s, "/")
	n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("media: invalid rational %q: %w", s, err)
	}
	if !ok {
		return Rational{Num: n, Den: 1}, nil
	}
	d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("media: invalid rational %q: %w", s, err)
	}
	r := Rational{Num: n, Den: d}
	if !r.IsValid() {
		return Rational{}, fmt.Errorf("media: invalid rational %q", s)
	}
	return r, nil
}
