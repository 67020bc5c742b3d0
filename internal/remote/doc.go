// Package remote provides an HTTP implementation of the domain.RemoteCracker
// interface, the client side of xorcrackd.
//
// Supported operations include:
//   - Ranking keys for one hex ciphertext (POST /break).
//   - Selecting the encrypted line from a batch (POST /detect).
//   - Probing server liveness (GET /healthz).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *StatusError carrying the
// server's error message and, when the server reported one, the failing
// ciphertext index and stage.
package remote
