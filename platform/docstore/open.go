package docstore

import (
	"context"
	"fmt"
	"strings"

	"gadget_haven_backend/platform/config"
	"gadget_haven_backend/platform/db"
)

// Open connects to the store named by the configured connection string.
// Supported schemes: mongodb, mongodb+srv, postgres, postgresql and memory.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	url := cfg.GetDatabaseURL()
	switch scheme(url) {
	case "mongodb", "mongodb+srv":
		return NewMongoStore(ctx, url, cfg.GetDatabaseName())
	case "postgres", "postgresql":
		if err := db.RunMigrations(ctx, url); err != nil {
			return nil, err
		}
		pool, err := db.NewPool(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		return NewPostgresStore(pool), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store url scheme %q", scheme(url))
	}
}

func scheme(url string) string {
	idx := strings.Index(url, "://")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(url[:idx])
}
