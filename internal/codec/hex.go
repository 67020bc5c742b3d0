package codec

import (
	"encoding/hex"
	"errors"
	"fmt"

	"xorcrack/internal/domain"
)

// EncodeHex returns the lowercase hex encoding of b, two digits per byte.
func EncodeHex(b []byte) []byte {
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out
}

// EncodeHexString is EncodeHex returning a string.
func EncodeHexString(b []byte) string { return hex.EncodeToString(b) }

// DecodeHex decodes ASCII hex digits (either case) into raw bytes.
func DecodeHex(s []byte) ([]byte, error) {
	out := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(out, s)
	if err != nil {
		return nil, malformed(s, n, err)
	}
	return out[:n], nil
}

// DecodeHexString is DecodeHex over a string.
func DecodeHexString(s string) ([]byte, error) { return DecodeHex([]byte(s)) }

func malformed(s []byte, n int, err error) error {
	var ib hex.InvalidByteError
	if errors.As(err, &ib) {
		return fmt.Errorf("%w: invalid digit %q at offset %d", domain.ErrMalformedHex, byte(ib), 2*n+badDigitOffset(s[2*n:]))
	}
	if errors.Is(err, hex.ErrLength) {
		return fmt.Errorf("%w: odd length %d", domain.ErrMalformedHex, len(s))
	}
	return fmt.Errorf("%w: %v", domain.ErrMalformedHex, err)
}

// badDigitOffset finds the first non-hex digit in the pair that failed.
func badDigitOffset(rest []byte) int {
	for i, c := range rest {
		if !isHexDigit(c) {
			return i
		}
	}
	return 0
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
