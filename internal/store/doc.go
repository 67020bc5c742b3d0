// Package store reads batches of candidate ciphertexts from disk and writes
// run reports back.
//
// The package includes:
//   - A line source that yields one buffer per input line (FileSource,
//     ReadLines, ScanLines)
//   - Atomic JSON report writing (WriteJSON)
package store
