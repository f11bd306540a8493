package postgres

import (
	"context"
	"errors"
	"fmt"

	"clipshare/internal/app/server/config"
	"clipshare/internal/infrastructure/migration"
	"clipshare/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// Pool is the part of *pgxpool.Pool the storage uses; pgxmock.PgxPoolIface satisfies it too.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage keeps every collection in one documents table keyed by (collection, id).
type Storage struct {
	pool Pool
	log  *slog.Logger
}

// New connects to cfg.DatabaseURI and applies pending migrations.
func New(ctx context.Context, cfg config.DB, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return NewWithPool(pool, log), nil
}

func NewWithPool(pool Pool, log *slog.Logger) *Storage {
	return &Storage{
		pool: pool,
		log:  log.With("component", "postgres_storage"),
	}
}

func (s *Storage) Insert(ctx context.Context, collection model.Collection, doc model.Document) error {
	const query = `
		INSERT INTO documents (collection, id, created_at, body)
		VALUES ($1, $2, $3, $4)`

	_, err := s.pool.Exec(ctx, query, string(collection), doc.ID, doc.CreatedAt, []byte(doc.Body))
	if err != nil {
		s.log.Error("failed to insert document", "collection", collection, "id", doc.ID, "error", err)
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *Storage) Find(ctx context.Context, collection model.Collection, opts model.FindOptions) ([]model.Document, error) {
	// LIMIT NULL means no limit.
	const query = `
		SELECT id, created_at, body
		FROM documents
		WHERE collection = $1
		ORDER BY created_at DESC, id DESC
		OFFSET $2 LIMIT NULLIF($3, 0)`

	skip := opts.Skip
	if skip < 0 {
		skip = 0
	}

	rows, err := s.pool.Query(ctx, query, string(collection), int64(skip), int64(opts.Limit))
	if err != nil {
		s.log.Error("failed to find documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *Storage) FindByID(ctx context.Context, collection model.Collection, id string) (model.Document, error) {
	const query = `
		SELECT id, created_at, body
		FROM documents
		WHERE collection = $1 AND id = $2`

	doc, err := scanDocument(s.pool.QueryRow(ctx, query, string(collection), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}

func (s *Storage) Count(ctx context.Context, collection model.Collection) (int64, error) {
	const query = `SELECT COUNT(*) FROM documents WHERE collection = $1`

	var n int64
	if err := s.pool.QueryRow(ctx, query, string(collection)).Scan(&n); err != nil {
		s.log.Error("failed to count documents", "collection", collection, "error", err)
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func (s *Storage) DeleteByID(ctx context.Context, collection model.Collection, id string) (model.Document, error) {
	const query = `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2
		RETURNING id, created_at, body`

	doc, err := scanDocument(s.pool.QueryRow(ctx, query, string(collection), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		s.log.Error("failed to delete document", "collection", collection, "id", id, "error", err)
		return model.Document{}, fmt.Errorf("delete document: %w", err)
	}
	return doc, nil
}

func (s *Storage) DeleteAll(ctx context.Context, collection model.Collection) ([]model.Document, error) {
	const query = `
		DELETE FROM documents
		WHERE collection = $1
		RETURNING id, created_at, body`

	rows, err := s.pool.Query(ctx, query, string(collection))
	if err != nil {
		s.log.Error("failed to delete documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("delete documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func scanDocument(row pgx.Row) (model.Document, error) {
	var (
		doc  model.Document
		body []byte
	)
	if err := row.Scan(&doc.ID, &doc.CreatedAt, &body); err != nil {
		return model.Document{}, err
	}
	doc.Body = body
	return doc, nil
}

func scanDocuments(rows pgx.Rows) ([]model.Document, error) {
	docs := make([]model.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}
