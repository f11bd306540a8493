package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) logsOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-logs",
		Method:      http.MethodGet,
		Path:        "/admin/logs",
		Summary:     "Read audit logs",
		Description: "Returns the newest events per category plus lifetime counts.",
		Tags:        []string{"admin"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
