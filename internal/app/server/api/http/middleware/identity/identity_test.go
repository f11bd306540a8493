package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"clipshare/internal/identity"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type whoOutput struct {
	Body identity.Identity
}

func setup(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/who",
		Middlewares: huma.Middlewares{Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*whoOutput, error) {
		return &whoOutput{Body: identity.FromContext(ctx)}, nil
	})
	return api
}

func TestMiddleware(t *testing.T) {
	api := setup(t)

	resp := api.Get("/who",
		"User-Agent: curl/8.0",
		"X-Forwarded-For: 1.2.3.4, 5.6.7.8",
	)
	require.Equal(t, http.StatusOK, resp.Code)

	var who identity.Identity
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &who))
	assert.Equal(t, "curl/8.0", who.UserAgent)
	assert.Equal(t, "1.2.3.4", who.ClientAddress)
	assert.NotEqual(t, identity.Unknown, who.SessionID)
}

func TestMiddleware_NoHeaders(t *testing.T) {
	api := setup(t)

	resp := api.Get("/who", "User-Agent: ")
	require.Equal(t, http.StatusOK, resp.Code)

	var who identity.Identity
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &who))
	assert.Equal(t, identity.Unknown, who.ClientAddress)
	assert.Equal(t, "", who.UserAgent)
}

func TestMiddleware_MissingUserAgent(t *testing.T) {
	api := setup(t)

	resp := api.Get("/who")
	require.Equal(t, http.StatusOK, resp.Code)

	var who identity.Identity
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &who))
	assert.Equal(t, identity.Unknown, who.UserAgent)
}
