// Package docstore provides the document persistence layer: a small
// collection-oriented Store interface with MongoDB, PostgreSQL (JSONB) and
// in-memory implementations.
// This is part of the platform layer and contains no business logic.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Document is a single stored record. Values are JSON-compatible scalars;
// backends may return native date values which callers normalize.
type Document = map[string]any

// Store persists documents into named collections.
type Store interface {
	// InsertOne writes doc as a new document in collection.
	InsertOne(ctx context.Context, collection string, doc Document) error
	// Find returns up to limit documents of collection in store-default order.
	Find(ctx context.Context, collection string, limit int) ([]Document, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// ErrInvalidCollection is returned for collection names outside [a-z0-9_].
var ErrInvalidCollection = errors.New("invalid collection name")

var collectionPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

func checkCollection(name string) error {
	if !collectionPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}

func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
