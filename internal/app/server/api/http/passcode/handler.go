package passcode

import (
	"context"
	"net/http"

	"clipshare/internal/domain/passcode"
	"clipshare/internal/identity"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    passcode.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service passcode.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.verifyOp(), h.verify)
}

func (h *Handler) verify(ctx context.Context, in *input) (*output, error) {
	if h.service.Verify(ctx, in.Body.Passcode, identity.FromContext(ctx)) {
		return &output{Status: http.StatusOK, Body: verifyResponse{Valid: true}}, nil
	}
	return &output{Status: http.StatusUnauthorized, Body: verifyResponse{Valid: false}}, nil
}
