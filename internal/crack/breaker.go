package crack

import (
	"fmt"

	"xorcrack/internal/domain"
	"xorcrack/internal/rank"
	"xorcrack/internal/score"
	"xorcrack/internal/util/memzero"
	"xorcrack/internal/xor"
)

// Breaker brute-forces a single-byte XOR key over Keys.
type Breaker struct {
	Keys   domain.KeyRange
	Scorer score.Scorer
}

// NewBreaker returns a breaker over the default key range and scorer.
func NewBreaker() *Breaker {
	return &Breaker{Keys: domain.DefaultKeyRange, Scorer: score.Default}
}

var defaultBreaker = NewBreaker()

// BreakKey ranks every default-range key for ciphertext.
func BreakKey(ciphertext []byte) (*rank.Set[byte], error) {
	return defaultBreaker.BreakKey(ciphertext)
}

// Decrypt applies key to ciphertext.
func Decrypt(ciphertext []byte, key byte) []byte { return xor.SingleByte(ciphertext, key) }

// Validate checks the key range and scorer.
func (b *Breaker) Validate() error {
	if err := b.Keys.Validate(); err != nil {
		return err
	}
	return b.Scorer.Validate()
}

// BreakKey scores ciphertext XOR k for every k in b.Keys and returns the keys
// ranked best first. It fails only on an invalid breaker configuration.
func (b *Breaker) BreakKey(ciphertext []byte) (*rank.Set[byte], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	set := rank.New(func(x, y byte) bool { return x < y })

	scratch := make([]byte, len(ciphertext))
	defer memzero.Zero(scratch)

	for k := int(b.Keys.Min); k <= int(b.Keys.Max); k++ {
		xor.SingleByteInto(scratch, ciphertext, byte(k))
		if err := set.Push(b.Scorer.Score(scratch), byte(k)); err != nil {
			return nil, fmt.Errorf("key %d: %w", k, err)
		}
	}
	return set, nil
}

// Best returns only the top-ranked candidate for ciphertext.
func (b *Breaker) Best(ciphertext []byte) (domain.Candidate, error) {
	set, err := b.BreakKey(ciphertext)
	if err != nil {
		return domain.Candidate{}, err
	}
	top, ok := set.Peek()
	if !ok {
		return domain.Candidate{}, domain.ErrEmptyCandidates
	}
	return domain.Candidate{Score: top.Score, Key: top.Value}, nil
}

// Candidates converts up to n ranked entries into domain candidates.
func Candidates(set *rank.Set[byte], n int) []domain.Candidate {
	top := set.Top(n)
	out := make([]domain.Candidate, len(top))
	for i, e := range top {
		out[i] = domain.Candidate{Score: e.Score, Key: e.Value}
	}
	return out
}
