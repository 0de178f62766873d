// Package repository persists submissions as documents, one collection per
// record kind, and decodes them back into typed records.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gadget_haven_backend/platform/docstore"
)

// Collection names, one per record kind.
const (
	ContactForms   = "contact_forms"
	SellRequests   = "sell_requests"
	SwapRequests   = "swap_requests"
	RepairBookings = "repair_bookings"
	PriceQuotes    = "price_quotes"
)

// ListLimit caps how many documents a list call returns.
const ListLimit = 1000

const createdAtField = "created_at"

// ErrBadTimestamp is returned when a stored created_at cannot be parsed.
var ErrBadTimestamp = errors.New("unrecognized created_at value")

// Repo reads and writes submission documents.
type Repo struct {
	store docstore.Store
}

// New creates a repository over the given store.
func New(store docstore.Store) *Repo {
	return &Repo{store: store}
}

// Insert encodes record as a document and writes it to collection.
// created_at is stored as RFC 3339 text.
func (r *Repo) Insert(ctx context.Context, collection string, record any) error {
	doc, err := encode(record)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	return r.store.InsertOne(ctx, collection, doc)
}

// List returns up to ListLimit records of collection, normalizing
// created_at whether the store returned text or a native date.
func List[T any](ctx context.Context, r *Repo, collection string) ([]T, error) {
	docs, err := r.store.Find(ctx, collection, ListLimit)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := decode[T](doc)
		if err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func encode(record any) (docstore.Document, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var doc docstore.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decode[T any](doc docstore.Document) (T, error) {
	var rec T
	normalized := make(docstore.Document, len(doc))
	for k, v := range doc {
		normalized[k] = v
	}
	if v, ok := doc[createdAtField]; ok {
		ts, err := ParseTimestamp(v)
		if err != nil {
			return rec, err
		}
		normalized[createdAtField] = ts
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// timestampLayouts are tried in order for textual timestamps. The naive
// layouts cover ISO-8601 text written without an offset, read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp converts a stored created_at value into a UTC time.
func ParseTimestamp(v any) (time.Time, error) {
	switch typed := v.(type) {
	case time.Time:
		return typed.UTC(), nil
	case string:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, typed); err == nil {
				return ts.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, typed)
	default:
		return time.Time{}, fmt.Errorf("%w: %T", ErrBadTimestamp, v)
	}
}
