package data

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) readOp() huma.Operation {
	return huma.Operation{
		OperationID: "data-read",
		Method:      http.MethodGet,
		Path:        "/api/data",
		Summary:     "Read a named document",
		Description: "Fetches the document from the content store and returns its decoded body verbatim.",
		Tags:        []string{"data"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) writeOp(method, id string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        "/api/data",
		Summary:     "Write a named document",
		Description: "Reads the document's current version token, then commits the new content against it.",
		Tags:        []string{"data"},
		Middlewares: h.middleware,
	}
}
