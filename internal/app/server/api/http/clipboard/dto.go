package clipboard

import (
	"clipshare/internal/domain/clipboard"
)

type pasteInput struct {
	Body pasteRequest
}

type pasteRequest struct {
	Content string `json:"content" minLength:"1" doc:"Text to share"`
}

type pasteOutput struct {
	Body pasteResponse
}

type pasteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id" doc:"ID of the new entry"`
}

type listInput struct {
	Page  int `query:"page" default:"1" doc:"Page number, values below 1 are treated as 1"`
	Limit int `query:"limit" default:"10" doc:"Page size, at most 100"`
}

type listOutput struct {
	Body clipboard.ListResponse
}

type findInput struct {
	ID string `path:"id" doc:"ID записи"`
}

type findOutput struct {
	Body clipboard.Entry
}

type deleteInput struct {
	ID        string `query:"id" doc:"ID of the entry to delete"`
	DeleteAll bool   `query:"deleteAll" doc:"Delete every entry"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
