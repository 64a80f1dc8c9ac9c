// Package storage defines the persistence port the record store writes
// through: a flat key-value space holding one JSON-serialized array per
// collection, rewritten in full on every mutation.
package storage

import "context"

// Backend is a key-value persistence target. Load returns the stored
// bytes and whether the key exists; a missing key is not an error.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
	Name() string
}
