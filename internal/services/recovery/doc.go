// Package recovery is the key-recovery service behind the CLI and server.
//
// It wraps the crack package with input decoding, run ids and structured
// logging, and implements domain.CrackService.
package recovery
