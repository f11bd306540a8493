package clipboard

import (
	"context"

	"clipshare/internal/model"
)

// Repository is the document store capability the service is built on.
type Repository interface {
	Insert(ctx context.Context, collection model.Collection, doc model.Document) error
	Find(ctx context.Context, collection model.Collection, opts model.FindOptions) ([]model.Document, error)
	FindByID(ctx context.Context, collection model.Collection, id string) (model.Document, error)
	Count(ctx context.Context, collection model.Collection) (int64, error)
	DeleteByID(ctx context.Context, collection model.Collection, id string) (model.Document, error)
	DeleteAll(ctx context.Context, collection model.Collection) ([]model.Document, error)
}
