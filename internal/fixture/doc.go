// Package fixture generates reproducible challenge batches: many lines of
// random hex with one line that is English text under a single-byte XOR key.
package fixture
