package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeInputNotFound   = "INPUT_NOT_FOUND"
	CodeInputUnreadable = "INPUT_UNREADABLE"
	CodeMalformedJSON   = "MALFORMED_JSON"
	CodeMalformedInput  = "MALFORMED_INPUT"
	CodeOutputWrite     = "OUTPUT_WRITE"
)

type BaseError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *BaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BaseError) Unwrap() error {
	return e.Cause
}

// ErrCode is promoted to every typed error embedding *BaseError.
func (e *BaseError) ErrCode() string {
	return e.Code
}

func New(message, code string, context map[string]any) *BaseError {
	return &BaseError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *BaseError) WithCause(cause error) *BaseError {
	e.Cause = cause
	return e
}

type InputError struct {
	*BaseError
	Path string
}

func NewInputNotFound(path string, cause error) *InputError {
	return newInputError("input file not found", CodeInputNotFound, path, cause)
}

func NewInputUnreadable(path string, cause error) *InputError {
	return newInputError("cannot read input file", CodeInputUnreadable, path, cause)
}

func newInputError(message, code, path string, cause error) *InputError {
	return &InputError{
		BaseError: &BaseError{
			Message: fmt.Sprintf("%s %q", message, path),
			Code:    code,
			Context: map[string]any{"path": path},
			Cause:   cause,
		},
		Path: path,
	}
}

type MalformedJSONError struct {
	*BaseError
}

func NewMalformedJSON(message string, cause error) *MalformedJSONError {
	return &MalformedJSONError{
		BaseError: &BaseError{
			Message: message,
			Code:    CodeMalformedJSON,
			Cause:   cause,
		},
	}
}

// MalformedInputError reports a record that cannot be read as a boss entry.
type MalformedInputError struct {
	*BaseError
	Index int
}

func NewMalformedInput(index int, reason string, cause error) *MalformedInputError {
	return &MalformedInputError{
		BaseError: &BaseError{
			Message: fmt.Sprintf("record %d: %s", index, reason),
			Code:    CodeMalformedInput,
			Context: map[string]any{"index": index},
			Cause:   cause,
		},
		Index: index,
	}
}

type OutputWriteError struct {
	*BaseError
	Path string
}

func NewOutputWrite(path string, cause error) *OutputWriteError {
	return &OutputWriteError{
		BaseError: &BaseError{
			Message: fmt.Sprintf("cannot write output file %q", path),
			Code:    CodeOutputWrite,
			Context: map[string]any{"path": path},
			Cause:   cause,
		},
		Path: path,
	}
}

// CodeOf returns the code of the first coded error in err's chain, or "" if
// there is none.
func CodeOf(err error) string {
	var c interface{ ErrCode() string }
	if stderrors.As(err, &c) {
		return c.ErrCode()
	}
	return ""
}

// ExitCode maps an error to a process exit status. Nil is 0 and errors
// without a known code are 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch CodeOf(err) {
	case CodeInputNotFound:
		return 2
	case CodeInputUnreadable:
		return 3
	case CodeMalformedJSON:
		return 4
	case CodeMalformedInput:
		return 5
	case CodeOutputWrite:
		return 6
	default:
		return 1
	}
}
