package copylog

import (
	"context"
	"errors"

	"clipshare/internal/app/server/api/http/apierr"
	"clipshare/internal/domain/clipboard"
	"clipshare/internal/identity"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// CopyLogger is the part of the clipboard service this handler needs.
type CopyLogger interface {
	LogCopy(ctx context.Context, contentID, content string, who identity.Identity) error
}

type Handler struct {
	service    CopyLogger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service CopyLogger, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "copylog_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.logCopyOp(), h.logCopy)
}

func (h *Handler) logCopy(ctx context.Context, in *input) (*output, error) {
	err := h.service.LogCopy(ctx, in.Body.ContentID, in.Body.Content, identity.FromContext(ctx))
	if err != nil {
		if errors.Is(err, clipboard.ErrInvalidCopy) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, apierr.Internal(h.log, "failed to log copy activity", err)
	}

	return &output{Body: logCopyResponse{Success: true}}, nil
}
