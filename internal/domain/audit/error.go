package audit

import "errors"

var ErrUnknownCategory = errors.New("unknown audit category")
