package docstore

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromBSONConvertsDates(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	doc := fromBSON(bson.M{
		"id":         "abc",
		"created_at": primitive.NewDateTimeFromTime(created),
		"legacy_at":  "2025-03-01T09:30:00+00:00",
	})

	got, ok := doc["created_at"].(time.Time)
	if !ok {
		t.Fatalf("expected time.Time, got %T", doc["created_at"])
	}
	if !got.Equal(created) {
		t.Fatalf("expected %v, got %v", created, got)
	}
	if doc["legacy_at"] != "2025-03-01T09:30:00+00:00" {
		t.Fatalf("string values must pass through untouched")
	}
	if doc["id"] != "abc" {
		t.Fatalf("unexpected id %v", doc["id"])
	}
}
