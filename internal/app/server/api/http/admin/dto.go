package admin

import "clipshare/internal/domain/audit"

type logsInput struct {
	Type  string `query:"type" enum:"paste,delete,copy,login,all" default:"all" doc:"Which log category to return"`
	Limit int    `query:"limit" default:"50" minimum:"1" maximum:"1000" doc:"Events per category, newest first"`
}

type logsOutput struct {
	Body logsResponse
}

// Categories that were not requested are left out of the response.
type logsResponse struct {
	PasteLogs  []audit.Event `json:"pasteLogs,omitzero"`
	DeleteLogs []audit.Event `json:"deleteLogs,omitzero"`
	CopyLogs   []audit.Event `json:"copyLogs,omitzero"`
	LoginLogs  []audit.Event `json:"loginLogs,omitzero"`
	Summary    summary       `json:"summary"`
}

type summary struct {
	TotalPasteLogs  int64 `json:"totalPasteLogs"`
	TotalDeleteLogs int64 `json:"totalDeleteLogs"`
	TotalCopyLogs   int64 `json:"totalCopyLogs"`
	TotalLoginLogs  int64 `json:"totalLoginLogs"`
}
