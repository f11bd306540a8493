package clipboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) pasteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "clipboard-paste",
		Method:        http.MethodPost,
		Path:          "/clipboard",
		Summary:       "Paste text into the shared clipboard",
		Tags:          []string{"clipboard"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "clipboard-list",
		Method:      http.MethodGet,
		Path:        "/clipboard",
		Summary:     "List entries, newest first",
		Tags:        []string{"clipboard"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "clipboard-find",
		Method:      http.MethodGet,
		Path:        "/clipboard/{id}",
		Summary:     "Get one entry",
		Tags:        []string{"clipboard"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "clipboard-delete",
		Method:      http.MethodDelete,
		Path:        "/clipboard",
		Summary:     "Delete one entry or all of them",
		Description: "Pass either `id` or `deleteAll=true`.",
		Tags:        []string{"clipboard"},
		Middlewares: h.middleware,
	}
}
