// Package crypto exposes the few primitives xorcrack needs beyond XOR itself.
//
// Contents
//
//   - A deterministic ChaCha20 keystream derived from a seed string with
//     HKDF-SHA256 (NewKeystream), used to generate reproducible challenge
//     batches and test fixtures
//   - Truncated SHA-256 ids that name ciphertexts in logs (LogID)
//
// # Notes
//
// The keystream is for fixtures only. A seed is not a secret and the stream
// is not meant to protect anything.
package crypto
