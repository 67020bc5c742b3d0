// Package main runs xorcrackd, an HTTP front end for single-byte XOR key
// recovery. The routes are documented in internal/api.
//
// Behaviour
//
//   - Configuration comes from --config (YAML) and XORCRACK_* environment
//     variables, like the CLI.
//   - The default listen address is :8080.
//   - Every request gets an X-Request-Id and a structured access log line.
//   - SIGINT/SIGTERM trigger a graceful shutdown.
//
// The server is stateless: nothing submitted to it is stored.
package main
