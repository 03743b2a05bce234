package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies the failures a streaming session can report.
// Every category is fatal to the session that produced it: there is no
// internal retry, and the session must be discarded after any error.
type ErrorCategory int

const (
	// ErrorInit indicates the underlying codec could not be set up,
	// typically because of invalid parameters or resource exhaustion.
	ErrorInit ErrorCategory = iota + 1

	// ErrorCompress indicates the encoder reported an unexpected status
	// mid-stream. The codec's own diagnostic is preserved in Err.
	ErrorCompress

	// ErrorDecompress indicates the decoder reported an unexpected
	// status, usually because of corrupt or truncated compressed data.
	ErrorDecompress

	// ErrorWrite indicates the sink accepted fewer bytes than requested
	// or failed outright.
	ErrorWrite

	// ErrorRead indicates the source failed, or stopped producing bytes
	// in a context that requires an exact count (gzip header parsing).
	ErrorRead

	// ErrorFormat indicates the gzip header failed validation: bad magic
	// bytes, wrong compression method, or reserved flag bits set.
	ErrorFormat

	// ErrorUsage indicates a lifecycle violation, such as writing to a
	// session after it was closed.
	ErrorUsage
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorInit:
		return "init"
	case ErrorCompress:
		return "compress"
	case ErrorDecompress:
		return "decompress"
	case ErrorWrite:
		return "write"
	case ErrorRead:
		return "read"
	case ErrorFormat:
		return "format"
	case ErrorUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// StreamError is the error type returned by compression and
// decompression sessions. It carries the failure category, the
// operation that failed and the underlying cause.
type StreamError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewStreamError creates a StreamError with the current timestamp.
func NewStreamError(category ErrorCategory, operation string, err error) *StreamError {
	return &StreamError{
		Err:       err,
		Category:  category,
		Operation: operation,
		Timestamp: time.Now(),
	}
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// IsCategory reports whether err is a StreamError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	se := AsStreamError(err)
	return se != nil && se.Category == category
}

// AsStreamError attempts to extract a StreamError from a given error.
func AsStreamError(err error) *StreamError {
	var se *StreamError
	if errors.As(err, &se) {
		return se
	}
	return nil
}
