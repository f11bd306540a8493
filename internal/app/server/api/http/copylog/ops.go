package copylog

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) logCopyOp() huma.Operation {
	return huma.Operation{
		OperationID: "log-copy",
		Method:      http.MethodPost,
		Path:        "/log-copy",
		Summary:     "Report that a client copied an entry",
		Tags:        []string{"audit"},
		Middlewares: h.middleware,
	}
}
