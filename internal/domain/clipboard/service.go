package clipboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clipshare/internal/domain/audit"
	"clipshare/internal/identity"
	"clipshare/internal/metrics"
	"clipshare/internal/model"
	"clipshare/internal/pagination"

	"golang.org/x/exp/slog"
)

// Recorder appends audit events without reporting failures.
type Recorder interface {
	Record(ctx context.Context, p audit.Payload, who identity.Identity)
}

type Servicer interface {
	Paste(ctx context.Context, content string, who identity.Identity) (Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, page, limit int) (ListResponse, error)
	Delete(ctx context.Context, id string, who identity.Identity) error
	DeleteAll(ctx context.Context, who identity.Identity) (int, error)
	LogCopy(ctx context.Context, contentID, content string, who identity.Identity) error
}

type Service struct {
	repo    Repository
	audit   Recorder
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
}

func NewService(repo Repository, recorder Recorder, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		audit:   recorder,
		metrics: m,
		log:     log.With("component", "clipboard_service"),
		now:     time.Now,
	}
}

// Paste stores content as a new entry and records a paste event.
func (s *Service) Paste(ctx context.Context, content string, who identity.Identity) (Entry, error) {
	if content == "" {
		return Entry{}, ErrInvalidContent
	}

	entry := Entry{
		ID:        model.NewID(),
		Content:   content,
		CreatedAt: s.now().UTC(),
	}

	raw, err := json.Marshal(body{Content: content})
	if err != nil {
		return Entry{}, fmt.Errorf("marshal entry: %w", err)
	}

	doc := model.Document{ID: entry.ID, CreatedAt: entry.CreatedAt, Body: raw}
	if err := s.repo.Insert(ctx, model.CollectionClipboard, doc); err != nil {
		s.log.Error("failed to save entry", "error", err)
		return Entry{}, fmt.Errorf("save entry: %w", err)
	}

	s.metrics.RecordClipboardOperation("paste")
	s.audit.Record(ctx, audit.Paste{Content: content}, who)

	s.log.Info("entry saved", "id", entry.ID, "session_id", who.SessionID)
	return entry, nil
}

func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	if !model.ValidID(id) {
		return Entry{}, ErrInvalidID
	}

	doc, err := s.repo.FindByID(ctx, model.CollectionClipboard, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return decodeEntry(doc)
}

// List returns page of the entries, newest first. Pages below 1 are treated as 1.
func (s *Service) List(ctx context.Context, page, limit int) (ListResponse, error) {
	entries, window, err := pagination.Paginate[Entry](ctx, entrySource{repo: s.repo}, page, limit)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidPageSize) {
			return ListResponse{}, err
		}
		s.log.Error("failed to list entries", "page", page, "limit", limit, "error", err)
		return ListResponse{}, fmt.Errorf("list entries: %w", err)
	}

	return ListResponse{
		Entries:    entries,
		Pagination: window,
	}, nil
}

// Delete removes one entry and records its content in a delete event.
func (s *Service) Delete(ctx context.Context, id string, who identity.Identity) error {
	if !model.ValidID(id) {
		return ErrInvalidID
	}

	doc, err := s.repo.DeleteByID(ctx, model.CollectionClipboard, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete entry", "id", id, "error", err)
		return fmt.Errorf("delete entry: %w", err)
	}

	s.metrics.RecordClipboardOperation("delete")

	entry, err := decodeEntry(doc)
	if err != nil {
		// the entry is gone already; keep the event with what we know
		s.log.Warn("deleted entry has unreadable body", "id", id, "error", err)
		entry = Entry{ID: id}
	}
	s.audit.Record(ctx, audit.Delete{
		DeletedContent: entry.Content,
		ContentID:      entry.ID,
		Type:           audit.DeleteSingle,
	}, who)

	s.log.Info("entry deleted", "id", id, "session_id", who.SessionID)
	return nil
}

// DeleteAll removes every entry, recording one delete event per removed entry.
func (s *Service) DeleteAll(ctx context.Context, who identity.Identity) (int, error) {
	docs, err := s.repo.DeleteAll(ctx, model.CollectionClipboard)
	if err != nil {
		s.log.Error("failed to delete all entries", "error", err)
		return 0, fmt.Errorf("delete all entries: %w", err)
	}

	s.metrics.RecordClipboardOperation("delete_all")

	for _, doc := range docs {
		entry, err := decodeEntry(doc)
		if err != nil {
			entry = Entry{ID: doc.ID}
		}
		s.audit.Record(ctx, audit.Delete{
			DeletedContent: entry.Content,
			ContentID:      entry.ID,
			Type:           audit.DeleteAll,
		}, who)
	}

	s.log.Info("all entries deleted", "count", len(docs), "session_id", who.SessionID)
	return len(docs), nil
}

// LogCopy records that content of entry contentID was copied by a client.
// The entry is not looked up: clients may copy something deleted meanwhile.
func (s *Service) LogCopy(ctx context.Context, contentID, content string, who identity.Identity) error {
	if contentID == "" || content == "" {
		return ErrInvalidCopy
	}

	s.metrics.RecordClipboardOperation("copy")
	s.audit.Record(ctx, audit.Copy{CopiedContent: content, ContentID: contentID}, who)
	return nil
}

func decodeEntry(doc model.Document) (Entry, error) {
	var b body
	if err := json.Unmarshal(doc.Body, &b); err != nil {
		return Entry{}, fmt.Errorf("decode entry %s: %w", doc.ID, err)
	}
	return Entry{ID: doc.ID, Content: b.Content, CreatedAt: doc.CreatedAt}, nil
}

// entrySource adapts the repository to pagination.Source.
type entrySource struct {
	repo Repository
}

func (e entrySource) Count(ctx context.Context) (int64, error) {
	return e.repo.Count(ctx, model.CollectionClipboard)
}

func (e entrySource) Slice(ctx context.Context, skip, limit int) ([]Entry, error) {
	docs, err := e.repo.Find(ctx, model.CollectionClipboard, model.FindOptions{Skip: skip, Limit: limit})
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		entry, err := decodeEntry(d)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
