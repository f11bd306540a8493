package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store      Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if err := h.store.Ping(ctx); err != nil {
		h.log.Error("store is unreachable", "error", err)
		return nil, huma.Error503ServiceUnavailable("store is unreachable")
	}

	return &Output{
		Body: Response{
			Status: "OK",
		},
	}, nil
}
