package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHex is returned for odd-length input or non-hex digits.
	ErrMalformedHex = errors.New("malformed hex")
	// ErrLengthMismatch is returned by fixed-length XOR on unequal buffers.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrEmptyBatch is returned when a batch holds no ciphertexts.
	ErrEmptyBatch = errors.New("empty batch")
	// ErrEmptyCandidates is returned when a ranked set has nothing to offer.
	ErrEmptyCandidates = errors.New("no candidates")
	// ErrDegenerateScore is returned when a score is NaN or infinite.
	ErrDegenerateScore = errors.New("degenerate score")
)

// Stage names the step of a batch run that failed.
type Stage string

const (
	StageDecode Stage = "decode"
	StageBreak  Stage = "break"
	StageSelect Stage = "select"
)

// StageError attaches the ciphertext index and stage to a batch failure.
// Index is -1 when the failure is not tied to one ciphertext.
type StageError struct {
	Index int
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("ciphertext %d: %s: %v", e.Index, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
