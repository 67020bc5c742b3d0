package xor

import (
	"crypto/subtle"
	"fmt"

	"xorcrack/internal/domain"
)

// SingleByte returns a copy of b with every byte XORed with k.
func SingleByte(b []byte, k byte) []byte {
	out := make([]byte, len(b))
	SingleByteInto(out, b, k)
	return out
}

// SingleByteInto writes b XOR k into dst, which must be at least len(b) long.
// dst and b may alias.
func SingleByteInto(dst, b []byte, k byte) {
	_ = dst[:len(b)]
	for i, c := range b {
		dst[i] = c ^ k
	}
}

// Fixed XORs two equal-length buffers. Unequal lengths fail with
// domain.ErrLengthMismatch rather than truncating.
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", domain.ErrLengthMismatch, len(a), len(b))
	}
	out := make([]byte, len(a))
	subtle.XORBytes(out, a, b)
	return out, nil
}
