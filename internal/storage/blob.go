// Package storage owns ledger persistence: the in-memory ledger store, the
// JSON wire codec, and the blob backends it writes through.
//
// Persistence is deliberately coarse: the whole ledger is one serialized
// blob in a single named slot, fully rewritten after every mutation. The
// replace-entire-blob strategy is the concurrency model — last writer wins
// at whole-ledger granularity.
package storage

import "context"

// BlobStore is a single named slot holding the serialized ledger.
type BlobStore interface {
	// Read returns the slot payload. ok is false when the slot has never
	// been written; that is not an error.
	Read(ctx context.Context) (payload string, ok bool, err error)

	// Write replaces the slot payload.
	Write(ctx context.Context, payload string) error

	Close() error
}
