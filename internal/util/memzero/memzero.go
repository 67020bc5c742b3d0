// Package memzero wipes scratch buffers that held candidate plaintexts.
package memzero

import "runtime"

// Zero overwrites b with zeros and keeps b live until the write is done.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(&b)
}
