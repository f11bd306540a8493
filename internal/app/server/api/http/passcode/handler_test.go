package passcode

import (
	"net/http"
	"testing"
	"time"

	"clipshare/internal/domain/audit"
	"clipshare/internal/domain/passcode"
	"clipshare/internal/infrastructure/storage/memory"
	"clipshare/internal/model"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_Verify(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantBody   string
	}{
		{name: "correct", body: map[string]any{"passcode": "admin123"}, wantStatus: http.StatusOK, wantBody: `{"valid":true}`},
		{name: "wrong", body: map[string]any{"passcode": "guess"}, wantStatus: http.StatusUnauthorized, wantBody: `{"valid":false}`},
		{name: "missing", body: map[string]any{}, wantStatus: http.StatusUnauthorized, wantBody: `{"valid":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New()
			rec := audit.NewLogger(store, slog.Default(), nil, time.Second)
			v, err := passcode.NewVerifier("admin123", "", rec, slog.Default())
			require.NoError(t, err)

			_, api := humatest.New(t)
			NewHandler(v, slog.Default(), nil).SetupRoutes(api)

			resp := api.Post("/verify-passcode", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, tt.wantBody, resp.Body.String())

			// exactly one login event per attempt
			n, err := store.Count(t.Context(), model.CollectionLoginLogs)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)

			events, err := audit.NewReporter(store, slog.Default()).List(t.Context(), audit.CategoryLogin, 0)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, tt.wantStatus == http.StatusOK, *events[0].Success)
		})
	}
}
