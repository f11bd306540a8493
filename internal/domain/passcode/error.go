package passcode

import "errors"

var ErrEmptySecret = errors.New("no passcode configured")
