package docstore

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in process memory. It backs tests and
// memory:// deployments; contents are lost on restart.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

// InsertOne appends a copy of doc to collection.
func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc Document) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], cloneDocument(doc))
	return nil
}

// Find returns copies of the first limit documents in insertion order.
func (s *MemoryStore) Find(ctx context.Context, collection string, limit int) ([]Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, cloneDocument(doc))
	}
	return out, nil
}

// Count returns the number of documents in collection.
func (s *MemoryStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *MemoryStore) Close(context.Context) error { return nil }

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
