// Package commands defines the xorcrack CLI and wires dependencies for subcommands.
//
// Commands
//
//   - break       Rank single-byte XOR keys for one hex ciphertext
//   - detect      Find the single-byte XOR encrypted line in a file of hex lines
//   - hex         Encode or decode hex
//   - fixed-xor   XOR two equal-length hex buffers
//   - score       Print the English plausibility score of a text
//   - gen         Generate a reproducible challenge batch
//
// # Implementation
//
// The root command loads the YAML config, applies environment and flag
// overrides, builds the zap logger and then the dependency graph (breaker,
// recovery service, optional remote client) before any subcommand runs, so
// handlers share one app context. With --server (or XORCRACK_SERVER) break
// and detect run on a remote xorcrackd instead of locally.
package commands
