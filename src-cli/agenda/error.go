package agenda

import (
	"fmt"
	"strings"
)

// CustomError is a parse failure with its underlying cause and a bag
// of diagnostic values such as the line number and the offending
// value.
type CustomError struct {
	msg  string
	err  error
	args map[string]any
}

// Create a new custom error wrapping the cause
func NewCustomError(msg string, err error, args map[string]any) *CustomError {
	if args == nil {
		args = make(map[string]any)
	}
	return &CustomError{
		msg:  msg,
		err:  err,
		args: args,
	}
}

// Get the error message
func (e *CustomError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.msg)
	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}
	if len(e.args) > 0 {
		sb.WriteString(" |")
		for key, value := range e.args {
			sb.WriteString(fmt.Sprintf(" %s: %v", key, value))
		}
	}
	return sb.String()
}

// Get the underlying cause
func (e *CustomError) Unwrap() error {
	return e.err
}
