package model

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned by stores when no document matches the requested id.
var ErrNotFound = errors.New("document not found")

// Collection names a document collection in the store.
type Collection string

const (
	CollectionClipboard  Collection = "clipboard_entries"
	CollectionPasteLogs  Collection = "paste_logs"
	CollectionDeleteLogs Collection = "delete_logs"
	CollectionCopyLogs   Collection = "copy_logs"
	CollectionLoginLogs  Collection = "login_logs"
)

// Document is the unit a store persists: an id, the timestamp documents are
// ordered by and an opaque JSON body owned by the caller.
type Document struct {
	ID        string
	CreatedAt time.Time
	Body      json.RawMessage
}

// FindOptions describes a find-with-sort-skip-limit query. Results are always
// ordered by CreatedAt descending, newest first. Limit 0 means no limit.
type FindOptions struct {
	Skip  int
	Limit int
}
