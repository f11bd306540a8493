package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"clipshare/internal/model"

	"golang.org/x/exp/slog"
)

// Reader is the store capability the reporter needs.
type Reader interface {
	Find(ctx context.Context, collection model.Collection, opts model.FindOptions) ([]model.Document, error)
	Count(ctx context.Context, collection model.Collection) (int64, error)
}

// Summary maps each category to its lifetime event count.
type Summary map[Category]int64

type Reporter struct {
	store Reader
	log   *slog.Logger
}

func NewReporter(store Reader, log *slog.Logger) *Reporter {
	return &Reporter{
		store: store,
		log:   log.With("component", "audit_reporter"),
	}
}

// Summarize counts every category with its own query.
func (r *Reporter) Summarize(ctx context.Context) (Summary, error) {
	summary := make(Summary, len(Categories()))
	for _, c := range Categories() {
		n, err := r.store.Count(ctx, c.Collection())
		if err != nil {
			r.log.Error("failed to count audit events", "category", c, "error", err)
			return nil, fmt.Errorf("count %s events: %w", c, err)
		}
		summary[c] = n
	}
	return summary, nil
}

// List returns the newest events of category c, at most limit of them.
func (r *Reporter) List(ctx context.Context, c Category, limit int) ([]Event, error) {
	if c.Collection() == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}

	docs, err := r.store.Find(ctx, c.Collection(), model.FindOptions{Limit: limit})
	if err != nil {
		r.log.Error("failed to list audit events", "category", c, "error", err)
		return nil, fmt.Errorf("list %s events: %w", c, err)
	}

	events := make([]Event, 0, len(docs))
	for _, d := range docs {
		var e Event
		if err := json.Unmarshal(d.Body, &e); err != nil {
			return nil, fmt.Errorf("decode %s event %s: %w", c, d.ID, err)
		}
		e.ID = d.ID
		events = append(events, e)
	}
	return events, nil
}
