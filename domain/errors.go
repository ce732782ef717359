package domain

import (
	"fmt"
	"strings"
)

// ValidationError indicates invalid input, most prominently a candidate file
// that does not carry every required column. When raised by the header
// validator, File names the offending file and Missing/Required list the
// columns involved.
type ValidationError struct {
	Message  string
	File     string
	Missing  []string
	Required []string
}

func (e *ValidationError) Error() string { return e.Message }

// StorageError indicates a failed object-storage or local-file operation.
// Nothing is bound when a StorageError is returned.
type StorageError struct {
	Op     string // "upload", "read", "parse"
	Target string // file path or object URL
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ProtocolError indicates a server response that is malformed or semantically
// mismatched with the model kind. Payload carries the raw response body.
type ProtocolError struct {
	Message string
	Payload []byte
}

func (e *ProtocolError) Error() string {
	if len(e.Payload) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Payload)
}

// TransportError indicates an HTTP exchange that failed outright or returned
// an unexpected status code. It is produced before any body parsing happens.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int // zero when the request never completed
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrValidationMsg creates a ValidationError with a formatted message.
func ErrValidationMsg(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrMissingColumns creates the ValidationError raised when a candidate file
// does not contain every required column.
func ErrMissingColumns(file string, missing, required []string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("file %s does not contain all defined columns: missing [%s], required [%s]",
			file, strings.Join(missing, ", "), strings.Join(required, ", ")),
		File:     file,
		Missing:  missing,
		Required: required,
	}
}

// ErrStorage creates a StorageError wrapping the underlying cause.
func ErrStorage(op, target string, err error) *StorageError {
	return &StorageError{Op: op, Target: target, Err: err}
}

// ErrProtocol creates a ProtocolError naming the raw payload.
func ErrProtocol(payload []byte, format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Message: fmt.Sprintf(format, args...), Payload: payload}
}
