package types

import (
	"errors"
	"fmt"
)

// ErrInvalidKeyRange is returned when a KeyRange cannot be searched.
var ErrInvalidKeyRange = errors.New("invalid key range")

// Candidate is one scored key byte for a single ciphertext.
type Candidate struct {
	Score float64 `json:"score"`
	Key   byte    `json:"key"`
}

// GlobalCandidate is the best Candidate of one ciphertext within a batch.
type GlobalCandidate struct {
	Score float64 `json:"score"`
	Index int     `json:"index"`
	Key   byte    `json:"key"`
}

// Result is the winning decryption of a batch.
type Result struct {
	Index     int     `json:"index"`
	Key       byte    `json:"key"`
	Score     float64 `json:"score"`
	Plaintext []byte  `json:"plaintext"`
}

// KeyRange is an inclusive range of key bytes to brute-force.
type KeyRange struct {
	Min byte `yaml:"min_key" json:"min_key"`
	Max byte `yaml:"max_key" json:"max_key"`
}

// DefaultKeyRange skips 0 (identity) and 255 (bit complement).
var DefaultKeyRange = KeyRange{Min: 1, Max: 254}

// Validate rejects empty ranges and ranges that include the identity key.
func (r KeyRange) Validate() error {
	if r.Min == 0 {
		return fmt.Errorf("%w: key 0 is the identity", ErrInvalidKeyRange)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidKeyRange, r.Min, r.Max)
	}
	return nil
}

// Len returns the number of keys in the range.
func (r KeyRange) Len() int { return int(r.Max) - int(r.Min) + 1 }

// String renders the range as "[min,max]".
func (r KeyRange) String() string { return fmt.Sprintf("[%d,%d]", r.Min, r.Max) }
