// Package storage defines the client-side persistent key-value contract.
package storage

import "context"

// KV is the lowest persistence layer: durable, string-keyed byte values
// under a single application namespace. It reports absence and failure
// separately; callers that do not care collapse both to "no value".
type KV interface {
	// Get returns the stored value for key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key in the application namespace.
	Clear(ctx context.Context) error
}
