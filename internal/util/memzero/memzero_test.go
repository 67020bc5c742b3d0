package memzero_test

import (
	"testing"

	"xorcrack/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte("plaintext")
	memzero.Zero(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d = %#x", i, c)
		}
	}
	memzero.Zero(nil)
}
