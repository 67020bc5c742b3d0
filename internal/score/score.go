package score

import (
	"errors"
	"fmt"
	"math"
	"unicode"
)

// DefaultControlPenalty is subtracted once per control byte.
const DefaultControlPenalty = 0.01

// ErrInvalidPenalty is returned by Validate for a penalty that would make
// scores non-finite or reward control characters.
var ErrInvalidPenalty = errors.New("invalid control penalty")

// Scorer computes plausibility scores. The zero value applies no penalty.
type Scorer struct {
	ControlPenalty float64
}

// Default is the scorer used by the package-level functions.
var Default = Scorer{ControlPenalty: DefaultControlPenalty}

// Score rates b with the Default scorer.
func Score(b []byte) float64 { return Default.Score(b) }

// Validate checks that s always produces finite scores.
func (s Scorer) Validate() error {
	p := s.ControlPenalty
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPenalty, p)
	}
	return nil
}

// Score returns the plausibility of b as English text.
func (s Scorer) Score(b []byte) float64 {
	if len(b) == 0 {
		return 0
	}
	hist := Histogram(b)
	total := float64(len(b))

	var sum float64
	controls := 0
	for c, n := range hist {
		if n == 0 {
			continue
		}
		if isControl(byte(c)) {
			controls += n
		}
		if e := expected[c]; e > 0 {
			sum += math.Sqrt(float64(n) / total * e)
		}
	}
	return sum - s.ControlPenalty*float64(controls)
}

// Histogram counts occurrences of every byte value in b.
func Histogram(b []byte) [256]int {
	var h [256]int
	for _, c := range b {
		h[c]++
	}
	return h
}

// ControlCount returns the number of control characters in b.
func ControlCount(b []byte) int {
	n := 0
	for _, c := range b {
		if isControl(c) {
			n++
		}
	}
	return n
}

// isControl reports whether c, read as a Latin-1 code point, is in Cc
// (0x00-0x1F, 0x7F-0x9F).
func isControl(c byte) bool { return unicode.IsControl(rune(c)) }
