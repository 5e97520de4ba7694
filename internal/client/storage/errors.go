package storage

import "errors"

// ErrKeyNotFound indicates that no value exists for the requested key.
// It distinguishes plain absence from storage failure at the KV boundary.
var ErrKeyNotFound = errors.New("key not found")
