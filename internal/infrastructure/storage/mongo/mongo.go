// Package mongo stores collections as native MongoDB collections. Bodies are
// kept as embedded documents so they stay queryable from the mongo shell.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clipshare/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/exp/slog"
)

const connectTimeout = 10 * time.Second

type Storage struct {
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger
}

// stored is the on-disk shape of a model.Document.
type stored struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"createdAt"`
	Body      bson.Raw  `bson:"body"`
}

func New(ctx context.Context, uri, database string, log *slog.Logger) (*Storage, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Storage{
		client: client,
		db:     client.Database(database),
		log:    log.With("component", "mongo_storage"),
	}, nil
}

func (s *Storage) collection(c model.Collection) *mongo.Collection {
	return s.db.Collection(string(c))
}

func (s *Storage) Insert(ctx context.Context, collection model.Collection, doc model.Document) error {
	st, err := toStored(doc)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	if _, err := s.collection(collection).InsertOne(ctx, st); err != nil {
		s.log.Error("failed to insert document", "collection", collection, "id", doc.ID, "error", err)
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *Storage) Find(ctx context.Context, collection model.Collection, opts model.FindOptions) ([]model.Document, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if opts.Skip > 0 {
		findOpts.SetSkip(int64(opts.Skip))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	cur, err := s.collection(collection).Find(ctx, bson.D{}, findOpts)
	if err != nil {
		s.log.Error("failed to find documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("find documents: %w", err)
	}
	return decodeAll(ctx, cur)
}

func (s *Storage) FindByID(ctx context.Context, collection model.Collection, id string) (model.Document, error) {
	return decodeOne(s.collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}))
}

func (s *Storage) Count(ctx context.Context, collection model.Collection) (int64, error) {
	n, err := s.collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func (s *Storage) DeleteByID(ctx context.Context, collection model.Collection, id string) (model.Document, error) {
	doc, err := decodeOne(s.collection(collection).FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.log.Error("failed to delete document", "collection", collection, "id", id, "error", err)
	}
	return doc, err
}

// DeleteAll reads the collection and removes exactly the documents it read,
// so entries inserted concurrently survive.
func (s *Storage) DeleteAll(ctx context.Context, collection model.Collection) ([]model.Document, error) {
	docs, err := s.Find(ctx, collection, model.FindOptions{})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return docs, nil
	}

	ids := make(bson.A, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	_, err = s.collection(collection).DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		s.log.Error("failed to delete documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("delete documents: %w", err)
	}
	return docs, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func decodeOne(res *mongo.SingleResult) (model.Document, error) {
	var st stored
	if err := res.Decode(&st); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return fromStored(st)
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]model.Document, error) {
	defer cur.Close(ctx)

	docs := make([]model.Document, 0)
	for cur.Next(ctx) {
		var st stored
		if err := cur.Decode(&st); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		doc, err := fromStored(st)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func toStored(doc model.Document) (stored, error) {
	var body bson.Raw
	if err := bson.UnmarshalExtJSON(doc.Body, false, &body); err != nil {
		return stored{}, fmt.Errorf("convert body: %w", err)
	}
	return stored{ID: doc.ID, CreatedAt: doc.CreatedAt, Body: body}, nil
}

func fromStored(st stored) (model.Document, error) {
	body, err := bson.MarshalExtJSON(st.Body, false, false)
	if err != nil {
		return model.Document{}, fmt.Errorf("convert body: %w", err)
	}
	return model.Document{ID: st.ID, CreatedAt: st.CreatedAt, Body: body}, nil
}
