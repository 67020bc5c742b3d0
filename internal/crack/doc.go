// Package crack recovers single-byte XOR keys.
//
// Contents
//
//   - Breaker tries every key in a KeyRange against one ciphertext and ranks
//     the keys by the English plausibility of the resulting plaintext
//     (BreakKey, Best).
//   - Selector runs the breaker over a batch and returns the ciphertext whose
//     best key scores highest overall, with its plaintext (SelectBest,
//     SelectBestHex).
//
// # Ordering
//
// Candidates are ordered by score, highest first. Equal scores fall back to
// the lower key byte, and across a batch to the lower ciphertext index, then
// the lower key. Results are therefore identical across runs and independent
// of how many workers the selector uses.
//
// # Notes
//
// The default key range is [1,254]. Key 0 is the identity and is always
// rejected. Key 255 moves ASCII into 0x80-0xFF, so it never wins on English
// input. It can be included by raising Breaker.Keys.Max.
package crack
