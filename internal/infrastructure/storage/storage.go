package storage

import (
	"context"

	"clipshare/internal/model"
)

// Drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverSQLite   = "sqlite"
)

// Store is the document store every backend implements. Collections are
// created lazily; Find orders by CreatedAt descending (ties by id descending).
type Store interface {
	// Документы
	Insert(ctx context.Context, collection model.Collection, doc model.Document) error
	Find(ctx context.Context, collection model.Collection, opts model.FindOptions) ([]model.Document, error)
	FindByID(ctx context.Context, collection model.Collection, id string) (model.Document, error)
	Count(ctx context.Context, collection model.Collection) (int64, error)

	// Удаление
	DeleteByID(ctx context.Context, collection model.Collection, id string) (model.Document, error)
	DeleteAll(ctx context.Context, collection model.Collection) ([]model.Document, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
