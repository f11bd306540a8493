package admin

import (
	"context"

	"clipshare/internal/app/server/api/http/apierr"
	"clipshare/internal/domain/audit"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const typeAll = "all"

// Reporter reads the audit collections.
type Reporter interface {
	Summarize(ctx context.Context) (audit.Summary, error)
	List(ctx context.Context, c audit.Category, limit int) ([]audit.Event, error)
}

type Handler struct {
	reporter   Reporter
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(reporter Reporter, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		reporter:   reporter,
		log:        log.With("component", "admin_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.logsOp(), h.logs)
}

func (h *Handler) logs(ctx context.Context, in *logsInput) (*logsOutput, error) {
	var resp logsResponse

	for _, c := range audit.Categories() {
		if in.Type != typeAll && in.Type != string(c) {
			continue
		}

		events, err := h.reporter.List(ctx, c, in.Limit)
		if err != nil {
			return nil, apierr.Internal(h.log, "failed to fetch audit logs", err)
		}

		switch c {
		case audit.CategoryPaste:
			resp.PasteLogs = events
		case audit.CategoryDelete:
			resp.DeleteLogs = events
		case audit.CategoryCopy:
			resp.CopyLogs = events
		case audit.CategoryLogin:
			resp.LoginLogs = events
		}
	}

	s, err := h.reporter.Summarize(ctx)
	if err != nil {
		return nil, apierr.Internal(h.log, "failed to fetch audit logs", err)
	}
	resp.Summary = summary{
		TotalPasteLogs:  s[audit.CategoryPaste],
		TotalDeleteLogs: s[audit.CategoryDelete],
		TotalCopyLogs:   s[audit.CategoryCopy],
		TotalLoginLogs:  s[audit.CategoryLogin],
	}

	return &logsOutput{Body: resp}, nil
}
