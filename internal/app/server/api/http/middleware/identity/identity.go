package identity

import (
	"net/http"

	"clipshare/internal/identity"

	"github.com/danielgtaylor/huma/v2"
)

// Middleware attaches a fresh request identity to the operation context.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := http.Header{}
		ctx.EachHeader(header.Add)
		who := identity.Extract(header)
		next(huma.WithContext(ctx, identity.WithIdentity(ctx.Context(), who)))
	}
}
