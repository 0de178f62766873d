package docstore

import (
	"context"
	"errors"
	"testing"
)

type staticConfig struct{ url, name string }

func (c staticConfig) GetDatabaseURL() string  { return c.url }
func (c staticConfig) GetDatabaseName() string { return c.name }

func TestMemoryStoreInsertAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.InsertOne(ctx, "sell_requests", Document{"id": id}); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	docs, err := s.Find(ctx, "sell_requests", 2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 2 || docs[0]["id"] != "a" || docs[1]["id"] != "b" {
		t.Fatalf("unexpected docs %v", docs)
	}
	if s.Count("sell_requests") != 3 {
		t.Fatalf("expected 3 stored documents")
	}
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	doc := Document{"id": "a", "status": "pending"}
	if err := s.InsertOne(ctx, "swap_requests", doc); err != nil {
		t.Fatalf("insert: %v", err)
	}
	doc["status"] = "changed"

	docs, _ := s.Find(ctx, "swap_requests", 0)
	if docs[0]["status"] != "pending" {
		t.Fatalf("stored document was mutated through caller's map")
	}
	docs[0]["status"] = "changed"
	again, _ := s.Find(ctx, "swap_requests", 0)
	if again[0]["status"] != "pending" {
		t.Fatalf("stored document was mutated through returned map")
	}
}

func TestMemoryStoreEmptyCollection(t *testing.T) {
	docs, err := NewMemoryStore().Find(context.Background(), "repair_bookings", 1000)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", docs)
	}
}

func TestInvalidCollectionRejected(t *testing.T) {
	err := NewMemoryStore().InsertOne(context.Background(), "drop table;", Document{"id": "x"})
	if !errors.Is(err, ErrInvalidCollection) {
		t.Fatalf("expected ErrInvalidCollection, got %v", err)
	}
}

func TestOpenMemoryAndUnknownScheme(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, staticConfig{url: "memory://"})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("expected *MemoryStore, got %T", s)
	}

	if _, err := Open(ctx, staticConfig{url: "redis://localhost"}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}

func TestSchemeParsing(t *testing.T) {
	cases := map[string]string{
		"mongodb+srv://cluster/x": "mongodb+srv",
		"POSTGRES://u@h/db":       "postgres",
		"no-scheme":               "",
	}
	for in, want := range cases {
		if got := scheme(in); got != want {
			t.Errorf("scheme(%q) = %q, want %q", in, got, want)
		}
	}
}
