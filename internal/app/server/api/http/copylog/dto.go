package copylog

type input struct {
	Body logCopyRequest
}

// Fields are optional in the schema so that a missing one yields the
// service's own 400 message.
type logCopyRequest struct {
	ContentID string `json:"contentId,omitempty" doc:"ID of the copied entry"`
	Content   string `json:"content,omitempty" doc:"Copied text"`
}

type output struct {
	Body logCopyResponse
}

type logCopyResponse struct {
	Success bool `json:"success"`
}
