package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clipshare/internal/identity"
	"clipshare/internal/metrics"
	"clipshare/internal/model"

	"golang.org/x/exp/slog"
)

const defaultWriteTimeout = 5 * time.Second

// Writer is the store capability the logger needs.
type Writer interface {
	Insert(ctx context.Context, collection model.Collection, doc model.Document) error
}

// Logger appends audit events. Record never fails from the caller's point of
// view: write errors go to the operational log and the failure counter.
type Logger struct {
	store   Writer
	log     *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
	now     func() time.Time
}

func NewLogger(store Writer, log *slog.Logger, m *metrics.Metrics, timeout time.Duration) *Logger {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &Logger{
		store:   store,
		log:     log.With("component", "audit_logger"),
		metrics: m,
		timeout: timeout,
		now:     time.Now,
	}
}

// Record writes one event for p, attempting the insert exactly once. The
// write is detached from ctx cancellation and bounded by the logger timeout.
func (l *Logger) Record(ctx context.Context, p Payload, who identity.Identity) {
	err := l.write(ctx, p, who)
	l.metrics.RecordAuditWrite(string(p.Category()), err)
	if err != nil {
		l.log.Error("failed to record audit event",
			"category", p.Category(),
			"session_id", who.SessionID,
			"error", err,
		)
		return
	}
	l.log.Debug("audit event recorded", "category", p.Category())
}

func (l *Logger) write(ctx context.Context, p Payload, who identity.Identity) error {
	who = who.Normalized()
	e := Event{
		ID:            model.NewID(),
		Category:      p.Category(),
		Timestamp:     l.now().UTC(),
		SessionID:     who.SessionID,
		UserAgent:     who.UserAgent,
		ClientAddress: who.ClientAddress,
	}
	p.apply(&e)

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	doc := model.Document{ID: e.ID, CreatedAt: e.Timestamp, Body: body}
	if err := l.store.Insert(ctx, e.Category.Collection(), doc); err != nil {
		return fmt.Errorf("insert %s event: %w", e.Category, err)
	}
	return nil
}
