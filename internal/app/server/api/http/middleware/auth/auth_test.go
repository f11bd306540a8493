package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestAdmin_Middleware(t *testing.T) {
	tests := []struct {
		name       string
		headers    []any
		wantStatus int
	}{
		{name: "valid token", headers: []any{"Authorization: Bearer s3cret"}, wantStatus: http.StatusNoContent},
		{name: "wrong token", headers: []any{"Authorization: Bearer nope"}, wantStatus: http.StatusUnauthorized},
		{name: "missing scheme", headers: []any{"Authorization: s3cret"}, wantStatus: http.StatusUnauthorized},
		{name: "no header", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			_, api := humatest.New(t)
			huma.Register(api, huma.Operation{
				Method:      http.MethodGet,
				Path:        "/admin",
				Middlewares: huma.Middlewares{New("s3cret", slog.Default()).Middleware()},
			}, func(_ context.Context, _ *struct{}) (*struct{}, error) {
				called = true
				return nil, nil
			})

			resp := api.Get("/admin", tt.headers...)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantStatus != http.StatusUnauthorized, called)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, resp.Body.String())
			}
		})
	}
}
