package domain

import (
	"context"
	"time"
)

// KVValueKind is the stored type discriminator of a key/value entry.
type KVValueKind string

const (
	KVValueKind_String KVValueKind = "string"
	KVValueKind_JSON   KVValueKind = "json"
	KVValueKind_List   KVValueKind = "list"
)

// KVEntry is one persisted key/value record.
type KVEntry struct {
	Key       string
	Kind      KVValueKind
	Value     any
	UpdatedAt time.Time
}

// KVStore is the shared key/value state service available to tools and the
// frontend. Scalar values round-trip as JSON; list keys hold ordered JSON
// items.
type KVStore interface {
	// Get returns the value stored under key. found is false when absent.
	Get(ctx context.Context, key string) (value any, found bool, err error)
	// Set stores a scalar or JSON value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error
	// Delete removes key. It reports whether the key existed.
	Delete(ctx context.Context, key string) (bool, error)
	// ListAppend appends items to the list stored under key, creating it when
	// absent, and returns the new length.
	ListAppend(ctx context.Context, key string, items ...any) (int, error)
	// ListRange returns items of the list under key in [start, stop]
	// inclusive. Negative indices count from the end, Redis style.
	ListRange(ctx context.Context, key string, start, stop int) ([]any, error)
	// ListLength returns the length of the list under key, zero when absent.
	ListLength(ctx context.Context, key string) (int, error)
	// Keys returns all keys matching the given glob pattern.
	Keys(ctx context.Context, pattern string) ([]string, error)
}

// KVRepository is the persistence port behind KVStore. The notifying store
// used by tools and handlers wraps it with change events.
type KVRepository interface {
	KVStore
}

