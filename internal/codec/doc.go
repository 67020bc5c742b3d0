// Package codec converts between raw bytes and their ASCII hex form.
//
// Encoding always emits two lowercase digits per byte. Decoding is strict:
// odd-length input and non-hex digits are reported as domain.ErrMalformedHex
// together with the offending offset.
package codec
