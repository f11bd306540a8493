package audit

import (
	"fmt"
	"time"
	"unicode/utf8"

	"clipshare/internal/model"
)

type Category string

const (
	CategoryPaste  Category = "paste"
	CategoryDelete Category = "delete"
	CategoryCopy   Category = "copy"
	CategoryLogin  Category = "login"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryPaste, CategoryDelete, CategoryCopy, CategoryLogin}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Collection is the log collection the category is written to.
func (c Category) Collection() model.Collection {
	switch c {
	case CategoryPaste:
		return model.CollectionPasteLogs
	case CategoryDelete:
		return model.CollectionDeleteLogs
	case CategoryCopy:
		return model.CollectionCopyLogs
	case CategoryLogin:
		return model.CollectionLoginLogs
	}
	return ""
}

type DeleteType string

const (
	DeleteSingle DeleteType = "single"
	DeleteAll    DeleteType = "all"
)

// Event is one stored audit record. Fields not used by the event's category
// are omitted from its JSON form.
type Event struct {
	ID            string    `json:"id"`
	Category      Category  `json:"category"`
	Timestamp     time.Time `json:"timestamp"`
	SessionID     string    `json:"sessionId"`
	UserAgent     string    `json:"userAgent"`
	ClientAddress string    `json:"clientAddress"`

	Content        string     `json:"content,omitempty"`
	DeletedContent string     `json:"deletedContent,omitempty"`
	CopiedContent  string     `json:"copiedContent,omitempty"`
	ContentID      string     `json:"contentId,omitempty"`
	ContentLength  *int       `json:"contentLength,omitempty"`
	DeleteType     DeleteType `json:"deleteType,omitempty"`

	PasscodeAttempted *string `json:"passcodeAttempted,omitempty"`
	Success           *bool   `json:"success,omitempty"`
}

// Payload is the category specific part of an event. The set of payloads is
// closed; contentLength is always derived from the content by apply.
type Payload interface {
	Category() Category
	apply(e *Event)
}

type Paste struct {
	Content string
}

func (Paste) Category() Category { return CategoryPaste }

func (p Paste) apply(e *Event) {
	e.Content = p.Content
	e.ContentLength = length(p.Content)
}

type Delete struct {
	DeletedContent string
	ContentID      string
	Type           DeleteType
}

func (Delete) Category() Category { return CategoryDelete }

func (p Delete) apply(e *Event) {
	e.DeletedContent = p.DeletedContent
	e.ContentID = p.ContentID
	e.ContentLength = length(p.DeletedContent)
	e.DeleteType = p.Type
	if e.DeleteType == "" {
		e.DeleteType = DeleteSingle
	}
}

type Copy struct {
	CopiedContent string
	ContentID     string
}

func (Copy) Category() Category { return CategoryCopy }

func (p Copy) apply(e *Event) {
	e.CopiedContent = p.CopiedContent
	e.ContentID = p.ContentID
	e.ContentLength = length(p.CopiedContent)
}

type Login struct {
	PasscodeAttempted string
	Success           bool
}

func (Login) Category() Category { return CategoryLogin }

func (p Login) apply(e *Event) {
	attempted := p.PasscodeAttempted
	success := p.Success
	e.PasscodeAttempted = &attempted
	e.Success = &success
}

// length counts code points, not bytes.
func length(s string) *int {
	n := utf8.RuneCountInString(s)
	return &n
}
