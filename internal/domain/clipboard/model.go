package clipboard

import (
	"time"

	"clipshare/internal/pagination"
)

// Entry is one live clipboard item.
type Entry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// body is the stored document body of an entry; id and createdAt live on the document.
type body struct {
	Content string `json:"content"`
}

type ListResponse struct {
	Entries    []Entry           `json:"entries"`
	Pagination pagination.Window `json:"pagination"`
}
