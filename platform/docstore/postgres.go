package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each collection in its own table as JSONB rows.
// Tables are created by the migrations in platform/db.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an established pool. The store takes ownership
// of the pool and closes it in Close.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// InsertOne inserts doc keyed by its "id" field.
func (s *PostgresStore) InsertOne(ctx context.Context, collection string, doc Document) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	id, ok := doc["id"].(string)
	if !ok || id == "" {
		return errors.New("postgres insert: document has no string id")
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, document) VALUES ($1, $2)`, pgx.Identifier{collection}.Sanitize())
	if _, err := s.pool.Exec(ctx, query, id, doc); err != nil {
		return fmt.Errorf("postgres insert %s: %w", collection, err)
	}
	return nil
}

// Find returns up to limit documents in insertion order.
func (s *PostgresStore) Find(ctx context.Context, collection string, limit int) ([]Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT document FROM %s ORDER BY seq`, pgx.Identifier{collection}.Sanitize())
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres find %s: %w", collection, err)
	}
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Document, error) {
		var doc Document
		err := row.Scan(&doc)
		return doc, err
	})
	if err != nil {
		return nil, fmt.Errorf("postgres scan %s: %w", collection, err)
	}
	return docs, nil
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the pool.
func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// Compile-time check that PostgresStore implements Store.
var _ Store = (*PostgresStore)(nil)
