package docstore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore stores each collection as a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to uri and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		return nil, fmt.Errorf("mongo: database name is required")
	}
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

// InsertOne inserts doc; MongoDB assigns its own _id which is never read back.
func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc Document) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if _, err := s.db.Collection(collection).InsertOne(ctx, bson.M(cloneDocument(doc))); err != nil {
		return fmt.Errorf("mongo insert %s: %w", collection, err)
	}
	return nil
}

// Find returns up to limit documents with _id projected out.
func (s *MongoStore) Find(ctx context.Context, collection string, limit int) ([]Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("mongo decode %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

// Ping checks the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// fromBSON converts driver-specific scalar types to plain Go values.
func fromBSON(m bson.M) Document {
	doc := make(Document, len(m))
	for k, v := range m {
		switch typed := v.(type) {
		case primitive.DateTime:
			doc[k] = typed.Time().UTC()
		case primitive.Timestamp:
			doc[k] = time.Unix(int64(typed.T), 0).UTC()
		default:
			doc[k] = v
		}
	}
	return doc
}

// Compile-time check that MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
