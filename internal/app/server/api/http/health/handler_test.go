package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus string
		expectedCode   int
	}{
		{
			name:           "health check returns OK",
			expectedStatus: "OK",
		},
		{
			name:         "store down",
			pingErr:      errors.New("connection refused"),
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := new(MockPinger)
			store.On("Ping", mock.Anything).Return(tt.pingErr)
			handler := NewHandler(store, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			if tt.pingErr != nil {
				var se huma.StatusError
				assert.ErrorAs(t, err, &se)
				assert.Equal(t, tt.expectedCode, se.GetStatus())
				assert.Nil(t, output)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
		})
	}
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(new(MockPinger), slog.Default(), huma.Middlewares{})

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
