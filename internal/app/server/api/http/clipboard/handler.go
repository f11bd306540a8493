package clipboard

import (
	"context"
	"errors"
	"fmt"

	"clipshare/internal/app/server/api/http/apierr"
	"clipshare/internal/domain/clipboard"
	"clipshare/internal/identity"
	"clipshare/internal/pagination"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Handler struct {
	service    clipboard.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service clipboard.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "clipboard_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.pasteOp(), h.paste)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) paste(ctx context.Context, input *pasteInput) (*pasteOutput, error) {
	entry, err := h.service.Paste(ctx, input.Body.Content, identity.FromContext(ctx))
	if err != nil {
		return nil, h.mapError(err, "failed to save entry")
	}

	return &pasteOutput{
		Body: pasteResponse{Success: true, ID: entry.ID},
	}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	limit := input.Limit
	switch {
	case limit < 1:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}

	resp, err := h.service.List(ctx, input.Page, limit)
	if err != nil {
		return nil, h.mapError(err, "failed to fetch entries")
	}

	return &listOutput{Body: resp}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	entry, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(err, "failed to fetch entry")
	}

	return &findOutput{Body: entry}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	who := identity.FromContext(ctx)

	switch {
	case input.DeleteAll:
		n, err := h.service.DeleteAll(ctx, who)
		if err != nil {
			return nil, h.mapError(err, "failed to delete entries")
		}
		return &deleteOutput{
			Body: deleteResponse{Success: true, Message: fmt.Sprintf("Deleted %d entries", n)},
		}, nil

	case input.ID != "":
		if err := h.service.Delete(ctx, input.ID, who); err != nil {
			return nil, h.mapError(err, "failed to delete entry")
		}
		return &deleteOutput{
			Body: deleteResponse{Success: true, Message: "Entry deleted successfully"},
		}, nil

	default:
		return nil, huma.Error400BadRequest(clipboard.ErrMissingTarget.Error())
	}
}

// mapError turns service errors into API errors; anything unexpected is a 500
// with msg as the only text the client sees.
func (h *Handler) mapError(err error, msg string) error {
	switch {
	case errors.Is(err, clipboard.ErrInvalidContent),
		errors.Is(err, clipboard.ErrInvalidID),
		errors.Is(err, pagination.ErrInvalidPageSize):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, clipboard.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	default:
		return apierr.Internal(h.log, msg, err)
	}
}
