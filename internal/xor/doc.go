// Package xor holds the byte-level XOR primitives the breaker is driven by.
package xor
