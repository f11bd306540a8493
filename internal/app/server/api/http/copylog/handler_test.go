package copylog

import (
	"context"
	"net/http"
	"testing"

	"clipshare/internal/domain/clipboard"
	"clipshare/internal/identity"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockCopyLogger struct {
	mock.Mock
}

func (m *MockCopyLogger) LogCopy(ctx context.Context, contentID, content string, who identity.Identity) error {
	return m.Called(ctx, contentID, content, who).Error(0)
}

func TestHandler_LogCopy(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "recorded",
			body:       map[string]any{"contentId": "id-1", "content": "hello"},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true}`,
		},
		{
			name:       "missing content",
			body:       map[string]any{"contentId": "id-1"},
			serviceErr: clipboard.ErrInvalidCopy,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"missing contentId or content"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCopyLogger)
			content, _ := tt.body["content"].(string)
			svc.On("LogCopy", mock.Anything, "id-1", content, mock.AnythingOfType("identity.Identity")).Return(tt.serviceErr)

			_, api := humatest.New(t)
			NewHandler(svc, slog.Default(), nil).SetupRoutes(api)

			resp := api.Post("/log-copy", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.JSONEq(t, tt.wantBody, resp.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
