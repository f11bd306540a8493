package passcode

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) verifyOp() huma.Operation {
	return huma.Operation{
		OperationID: "verify-passcode",
		Method:      http.MethodPost,
		Path:        "/verify-passcode",
		Summary:     "Check the shared passcode",
		Description: "Returns 200 with valid=true on a match and 401 with valid=false otherwise. No session is issued.",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}
