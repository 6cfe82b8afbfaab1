package errorx

import "fmt"

// Error is the only error type that crosses the HTTP boundary. Anything
// else a handler returns is collapsed to Unknown before responding.
type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
