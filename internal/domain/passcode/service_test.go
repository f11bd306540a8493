package passcode

import (
	"context"
	"testing"

	"clipshare/internal/domain/audit"
	"clipshare/internal/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, p audit.Payload, who identity.Identity) {
	m.Called(ctx, p, who)
}

var who = identity.Identity{SessionID: "s", UserAgent: "ua", ClientAddress: "1.2.3.4"}

func TestVerifier_Plaintext(t *testing.T) {
	tests := []struct {
		name    string
		attempt string
		want    bool
	}{
		{name: "correct", attempt: "admin123", want: true},
		{name: "wrong", attempt: "admin124", want: false},
		{name: "empty", attempt: "", want: false},
		{name: "prefix", attempt: "admin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := new(MockRecorder)
			rec.On("Record", mock.Anything, audit.Login{PasscodeAttempted: tt.attempt, Success: tt.want}, who).Once()

			v, err := NewVerifier("admin123", "", rec, slog.Default())
			require.NoError(t, err)

			assert.Equal(t, tt.want, v.Verify(context.Background(), tt.attempt, who))
			rec.AssertNumberOfCalls(t, "Record", 1)
			rec.AssertExpectations(t)
		})
	}
}

func TestVerifier_Hash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	rec := new(MockRecorder)
	rec.On("Record", mock.Anything, mock.Anything, mock.Anything)

	// the hash wins over the plaintext secret
	v, err := NewVerifier("admin123", string(hash), rec, slog.Default())
	require.NoError(t, err)

	assert.True(t, v.Verify(context.Background(), "s3cret", who))
	assert.False(t, v.Verify(context.Background(), "admin123", who))
	rec.AssertNumberOfCalls(t, "Record", 2)
}

func TestNewVerifier_Invalid(t *testing.T) {
	_, err := NewVerifier("", "", new(MockRecorder), slog.Default())
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewVerifier("", "not-a-bcrypt-hash", new(MockRecorder), slog.Default())
	assert.Error(t, err)
}
