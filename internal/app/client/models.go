package client

import (
	"errors"
	"net/http"
	"strconv"

	"clipshare/internal/domain/audit"
)

// ErrUnauthorized is returned when the server rejects the passcode or admin token.
var ErrUnauthorized = errors.New("unauthorized")

// AuditLogs mirrors the /admin/logs response. Categories that were not
// requested are nil.
type AuditLogs struct {
	PasteLogs  []audit.Event `json:"pasteLogs,omitempty"`
	DeleteLogs []audit.Event `json:"deleteLogs,omitempty"`
	CopyLogs   []audit.Event `json:"copyLogs,omitempty"`
	LoginLogs  []audit.Event `json:"loginLogs,omitempty"`
	Summary    LogSummary    `json:"summary"`
}

type LogSummary struct {
	TotalPasteLogs  int64 `json:"totalPasteLogs"`
	TotalDeleteLogs int64 `json:"totalDeleteLogs"`
	TotalCopyLogs   int64 `json:"totalCopyLogs"`
	TotalLoginLogs  int64 `json:"totalLoginLogs"`
}

// StatusError is a non-2xx answer carrying the server's error message.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "ошибка сервера: статус " + strconv.Itoa(e.Code)
	}
	return "ошибка сервера: " + e.Message
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}
