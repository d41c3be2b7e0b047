package errors

import "errors"

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnrecognized = errors.New("unrecognized command")
)
