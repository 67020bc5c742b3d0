package fixture

import (
	"errors"
	"fmt"

	"xorcrack/internal/codec"
	"xorcrack/internal/crypto"
	"xorcrack/internal/xor"
)

// ErrInvalidOptions is returned for options that cannot produce a batch.
var ErrInvalidOptions = errors.New("invalid fixture options")

// Options controls Generate.
type Options struct {
	Seed      string
	Lines     int    // total lines, including the hidden one
	Plaintext []byte // text hidden in the batch
	Key       byte   // 0 picks a key in [1,254] from the seed
	Index     int    // -1 picks a position from the seed
}

// Batch is a generated challenge and its answer.
type Batch struct {
	Lines     [][]byte // hex-encoded, no terminators
	Index     int
	Key       byte
	Plaintext []byte
}

// Generate builds a batch. Decoy lines are as long as the plaintext and come
// from a keystream derived from opts.Seed, so equal options give equal batches.
func Generate(opts Options) (Batch, error) {
	if opts.Lines <= 0 {
		return Batch{}, fmt.Errorf("%w: lines must be positive, got %d", ErrInvalidOptions, opts.Lines)
	}
	if len(opts.Plaintext) == 0 {
		return Batch{}, fmt.Errorf("%w: empty plaintext", ErrInvalidOptions)
	}
	if opts.Index >= opts.Lines || opts.Index < -1 {
		return Batch{}, fmt.Errorf("%w: index %d outside [0,%d)", ErrInvalidOptions, opts.Index, opts.Lines)
	}

	ks, err := crypto.NewKeystream(opts.Seed)
	if err != nil {
		return Batch{}, err
	}
	key := opts.Key
	if key == 0 {
		key = byte(1 + ks.Intn(254))
	}
	idx := opts.Index
	if idx < 0 {
		idx = ks.Intn(opts.Lines)
	}

	lines := make([][]byte, opts.Lines)
	for i := range lines {
		if i == idx {
			lines[i] = codec.EncodeHex(xor.SingleByte(opts.Plaintext, key))
			continue
		}
		decoy := make([]byte, len(opts.Plaintext))
		_, _ = ks.Read(decoy)
		lines[i] = codec.EncodeHex(decoy)
	}
	return Batch{
		Lines:     lines,
		Index:     idx,
		Key:       key,
		Plaintext: append([]byte(nil), opts.Plaintext...),
	}, nil
}
