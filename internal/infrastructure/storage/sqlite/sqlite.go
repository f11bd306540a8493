package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clipshare/internal/model"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	storage := &Storage{
		db:  db,
		log: log.With("component", "sqlite_storage"),
	}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *Storage) initTables() error {
	// created_at хранится в наносекундах, чтобы сортировка была точной
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			body TEXT NOT NULL,
			PRIMARY KEY (collection, id)
		);

		CREATE INDEX IF NOT EXISTS idx_documents_collection_created
			ON documents(collection, created_at DESC, id DESC);
	`)

	return err
}

func (s *Storage) Insert(ctx context.Context, collection model.Collection, doc model.Document) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, created_at, body) VALUES (?, ?, ?, ?)`,
		string(collection), doc.ID, doc.CreatedAt.UnixNano(), string(doc.Body))
	if err != nil {
		s.log.Error("failed to insert document", "collection", collection, "id", doc.ID, "error", err)
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *Storage) Find(ctx context.Context, collection model.Collection, opts model.FindOptions) ([]model.Document, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}
	skip := opts.Skip
	if skip < 0 {
		skip = 0
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, body FROM documents
		WHERE collection = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		string(collection), limit, skip)
	if err != nil {
		s.log.Error("failed to find documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("find documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *Storage) FindByID(ctx context.Context, collection model.Collection, id string) (model.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, body FROM documents WHERE collection = ? AND id = ?`,
		string(collection), id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		return model.Document{}, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}

func (s *Storage) Count(ctx context.Context, collection model.Collection) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`, string(collection)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func (s *Storage) DeleteByID(ctx context.Context, collection model.Collection, id string) (model.Document, error) {
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ? RETURNING id, created_at, body`,
		string(collection), id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, model.ErrNotFound
		}
		s.log.Error("failed to delete document", "collection", collection, "id", id, "error", err)
		return model.Document{}, fmt.Errorf("delete document: %w", err)
	}
	return doc, nil
}

func (s *Storage) DeleteAll(ctx context.Context, collection model.Collection) ([]model.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`DELETE FROM documents WHERE collection = ? RETURNING id, created_at, body`,
		string(collection))
	if err != nil {
		s.log.Error("failed to delete documents", "collection", collection, "error", err)
		return nil, fmt.Errorf("delete documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Close(_ context.Context) error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (model.Document, error) {
	var (
		doc       model.Document
		createdAt int64
		body      string
	)
	if err := row.Scan(&doc.ID, &createdAt, &body); err != nil {
		return model.Document{}, err
	}
	doc.CreatedAt = time.Unix(0, createdAt).UTC()
	doc.Body = []byte(body)
	return doc, nil
}

func scanDocuments(rows *sql.Rows) ([]model.Document, error) {
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
