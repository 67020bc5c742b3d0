// Package api serves a domain.CrackService over HTTP for xorcrackd.
//
// HTTP API
//
//	POST /break   {"ciphertext": "<hex>", "top": N}
//	    Rank keys for one hex ciphertext, best first.
//
//	POST /detect  {"lines": ["<hex>", ...]}
//	    Return the line that decrypts to the most English-like text.
//
//	GET /healthz
//	    Liveness probe.
//
// Malformed hex, unequal lengths and empty batches are client errors (400)
// and carry the failing index and stage when known. Request bodies larger
// than the configured limit are rejected with 413.
package api
