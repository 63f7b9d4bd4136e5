package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized          = errors.New("extraction service rejected credentials")
	ErrEmptyExtraction       = errors.New("could not extract text: file may be empty or scanned")
	ErrExtractionFailed      = errors.New("document extraction failed")
	ErrExtractionUnavailable = errors.New("document extraction service unavailable")
	ErrUnsupportedDocument   = errors.New("unsupported document type")
)

// ExtractionError carries the message and optional hint reported by the
// extraction endpoint. It unwraps to one of the sentinel errors above.
type ExtractionError struct {
	Status  int
	Message string
	Hint    string
	Err     error
}

func (e *ExtractionError) Error() string {
	msg := e.Err.Error()
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (http %d)", msg, e.Status)
	}
	return msg
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
