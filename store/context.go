// Package store implements the embedder Context contract the
// standard leaf library requires: a mapping from string to StoreKind
// supporting lookup, insert-new and overwrite-existing.
package store

import "fmt"

// StoreKind is the sum type of values a Context may hold.
type StoreKind struct {
	IsString bool
	Str      string
	I64      int64
}

func StringKind(s string) StoreKind { return StoreKind{IsString: true, Str: s} }
func I64Kind(n int64) StoreKind     { return StoreKind{I64: n} }

func (k StoreKind) String() string {
	if k.IsString {
		return fmt.Sprintf("String(%q)", k.Str)
	}
	return fmt.Sprintf("I64(%d)", k.I64)
}

// Getter is the read half of Context: lookup by string key.
type Getter interface {
	Get(key string) (StoreKind, bool)
}

// Context is the full embedder contract the standard leaves depend
// on. Implementations are mutated in place by leaf Tick calls; the
// engine never retains a Context across ticks itself — the embedder
// decides its lifetime.
type Context interface {
	Getter
	// Insert adds a new binding. Overwriting via Insert is allowed;
	// callers that need the stricter "must already exist" semantics
	// use Set.
	Insert(key string, value StoreKind)
	// Set overwrites an existing binding, returning an error if the
	// key is absent.
	Set(key string, value StoreKind) error
}

// ErrNoSuchKey is returned by Set when the key does not yet exist.
var ErrNoSuchKey = fmt.Errorf("store: no such key")
