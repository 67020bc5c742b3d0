package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

const keystreamInfo = "xorcrack fixture keystream v1"

// Keystream is an endless deterministic byte source.
type Keystream struct {
	c *chacha20.Cipher
}

// NewKeystream derives a ChaCha20 key and nonce from seed and returns the
// resulting keystream. Equal seeds always yield equal streams.
func NewKeystream(seed string) (*Keystream, error) {
	kdf := hkdf.New(sha256.New, []byte(seed), nil, []byte(keystreamInfo))
	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, err
	}
	c, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		return nil, err
	}
	return &Keystream{c: c}, nil
}

// Read fills p with keystream bytes. It never fails.
func (k *Keystream) Read(p []byte) (int, error) {
	clear(p)
	k.c.XORKeyStream(p, p)
	return len(p), nil
}

// Intn returns a value in [0, n) for 0 < n <= 65536.
func (k *Keystream) Intn(n int) int {
	var b [4]byte
	_, _ = k.Read(b[:])
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return int(uint64(v) * uint64(n) >> 32)
}

var _ io.Reader = (*Keystream)(nil)

// LogID names a buffer in logs without revealing it: the first n bytes of
// its SHA-256, hex encoded. n is clamped to [1, sha256.Size].
func LogID(b []byte, n int) string {
	n = min(max(n, 1), sha256.Size)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:n])
}
