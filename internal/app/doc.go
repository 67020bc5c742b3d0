// Package app wires application dependencies for the CLI and server.
//
// It loads Config from YAML and the environment, builds the zap logger, and
// constructs the breaker, the recovery service and an optional remote client,
// exposing them via the Wire struct for commands to use.
package app
