package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const bearerPrefix = "Bearer "

// Admin guards operations with a single fixed bearer token.
type Admin struct {
	token []byte
	log   *slog.Logger
}

func New(token string, log *slog.Logger) *Admin {
	return &Admin{
		token: []byte(bearerPrefix + token),
		log:   log.With("component", "admin_auth"),
	}
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Admin) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if subtle.ConstantTimeCompare([]byte(header), a.token) != 1 {
			a.log.Warn("admin token mismatch", "path", ctx.URL().Path, "remote_addr", ctx.RemoteAddr())
			ctx.SetHeader("Content-Type", "application/json")
			ctx.SetStatus(http.StatusUnauthorized)

			err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"error": "Unauthorized",
			})
			if err != nil {
				a.log.Error("failed to write unauthorized response", "error", err)
			}
			return
		}

		next(ctx)
	}
}
