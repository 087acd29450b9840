package whisper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
)

const providerName = "openai"

// Options tune a single transcription request. Language and Prompt are
// passed through to the service verbatim, an empty Model falls back to
// whisper-1.
type Options struct {
	Model    string
	Language string
	Prompt   string
	Progress api.ProgressFunc
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	opts   Options
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, opts Options) *RemoteTranscriber {
	if opts.Model == "" {
		opts.Model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, opts: opts}
}

// Transcript uploads the audio file once and returns the transcript text.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	f, err := os.Open(inputFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", api.NewNotFoundError(inputFilePath)
		}
		return "", &api.TranscriptionError{
			Code:     api.CodeIO,
			Message:  fmt.Sprintf("failed to open input file: %s", inputFilePath),
			Provider: "local",
			Err:      err,
		}
	}
	defer f.Close()

	var reader io.Reader = f
	if rt.opts.Progress != nil {
		var size int64
		if info, statErr := f.Stat(); statErr == nil {
			size = info.Size()
		}
		rc := rt.opts.Progress(filepath.Base(inputFilePath), size, f)
		defer rc.Close()
		reader = rc
	}

	req := openai.AudioRequest{
		Model:    rt.opts.Model,
		FilePath: inputFilePath,
		Reader:   reader,
		Language: rt.opts.Language,
		Prompt:   rt.opts.Prompt,
	}
	resp, err := rt.client.CreateTranscription(context.Background(), req)
	if err != nil {
		return "", classifyError(err)
	}

	return resp.Text, nil
}

// classifyError maps OpenAI API failures onto the error taxonomy. Anything
// that is not a recognizable API status, including timeouts and connection
// failures, counts as a service error.
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return api.NewAuthError(providerName, "API key rejected by the service", err)
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			return api.NewUnsupportedFormatError(providerName, "service rejected the audio payload", err)
		default:
			return api.NewServiceError(providerName,
				fmt.Sprintf("transcription request failed with status %d", apiErr.HTTPStatusCode), err)
		}
	}
	return api.NewServiceError(providerName, "createTranscription failed", err)
}
