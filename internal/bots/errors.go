package bots

import "errors"

// ErrInvalidBot marks request validation errors that should return HTTP 400.
var ErrInvalidBot = errors.New("invalid bot request")
