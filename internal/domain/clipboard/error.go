package clipboard

import "errors"

var (
	ErrNotFound       = errors.New("entry not found")
	ErrInvalidContent = errors.New("content must be a non-empty string")
	ErrInvalidID      = errors.New("invalid entry id")
	ErrInvalidCopy    = errors.New("missing contentId or content")
	ErrMissingTarget  = errors.New("either id or deleteAll=true is required")
)
