// Package ident generates unique numeric IDs for ledger entities.
//
// IDs are derived from the creation timestamp in milliseconds, so they are
// time-ordered like UUIDv7, but stay plain integers because the ledger
// contract keys transactions and budgets by number. A monotonic bump keeps
// them unique when several entities are created within the same millisecond.
package ident

import (
	"sync/atomic"
	"time"
)

var last atomic.Int64

// Next returns a unique, monotonically increasing ID.
func Next() int64 {
	for {
		prev := last.Load()
		id := time.Now().UnixMilli()
		if id <= prev {
			id = prev + 1
		}
		if last.CompareAndSwap(prev, id) {
			return id
		}
	}
}
