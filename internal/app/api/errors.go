package api

import (
	"errors"
	"fmt"
)

// Error codes for transcription failures. Every error that escapes the
// pipeline carries exactly one of these.
const (
	CodeNotFound          = "not_found"
	CodeAuth              = "auth"
	CodeUnsupportedFormat = "unsupported_format"
	CodeService           = "service"
	CodeIO                = "io"
)

// TranscriptionError is the typed error returned by transcribers and the
// runner. Provider names the backend that produced the failure, or "local"
// for errors raised before any network call.
type TranscriptionError struct {
	Code     string
	Message  string
	Provider string
	Err      error
}

func (e *TranscriptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing input file.
func NewNotFoundError(path string) *TranscriptionError {
	return &TranscriptionError{
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("input file not found: %s", path),
		Provider: "local",
	}
}

// NewAuthError reports a missing or rejected credential.
func NewAuthError(provider, message string, cause error) *TranscriptionError {
	return &TranscriptionError{Code: CodeAuth, Message: message, Provider: provider, Err: cause}
}

// NewUnsupportedFormatError reports a payload format the backend refuses.
func NewUnsupportedFormatError(provider, message string, cause error) *TranscriptionError {
	return &TranscriptionError{Code: CodeUnsupportedFormat, Message: message, Provider: provider, Err: cause}
}

// NewServiceError reports a network failure, timeout, or non-success
// response from the backend.
func NewServiceError(provider, message string, cause error) *TranscriptionError {
	return &TranscriptionError{Code: CodeService, Message: message, Provider: provider, Err: cause}
}

// NewIOError reports a failure writing the transcript to disk.
func NewIOError(path string, cause error) *TranscriptionError {
	return &TranscriptionError{
		Code:     CodeIO,
		Message:  fmt.Sprintf("failed to write output file: %s", path),
		Provider: "local",
		Err:      cause,
	}
}

// HasCode reports whether err is a TranscriptionError carrying the given code.
func HasCode(err error, code string) bool {
	var te *TranscriptionError
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}
