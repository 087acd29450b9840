package api

import "io"

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}

// ProgressFunc wraps the payload reader so callers can observe upload
// progress. Implementations must close the returned reader when done.
// A nil ProgressFunc disables progress reporting.
type ProgressFunc func(label string, size int64, r io.Reader) io.ReadCloser
