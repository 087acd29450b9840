package whisper_server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
)

const (
	providerName  = "whisper_server"
	inferencePath = "/inference"
)

// Config holds the connection settings for a self-hosted whisper-server
// instance. BaseURL is required, everything else has defaults.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Language string
	Prompt   string
	Progress api.ProgressFunc
}

// Provider implements transcription via HTTP to a whisper-server instance.
type Provider struct {
	cfg    Config
	client *http.Client
}

// NewProvider creates a whisper-server HTTP provider.
func NewProvider(cfg Config) *Provider {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// inferenceResponse is the JSON body whisper-server returns.
type inferenceResponse struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// Transcript posts the audio file as multipart form data and returns the
// transcript text.
func (p *Provider) Transcript(inputFilePath string) (string, error) {
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

	body, contentType, err := p.buildRequestBody(inputFilePath, f)
	if err != nil {
		return "", api.NewServiceError(providerName, "failed to build upload request", err)
	}

	var reader io.Reader = body
	if p.cfg.Progress != nil {
		rc := p.cfg.Progress(filepath.Base(inputFilePath), int64(body.Len()), body)
		defer rc.Close()
		reader = rc
	}

	req, err := http.NewRequest(http.MethodPost, strings.TrimSuffix(p.cfg.BaseURL, "/")+inferencePath, reader)
	if err != nil {
		return "", api.NewServiceError(providerName, "failed to build upload request", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", api.NewServiceError(providerName, "inference request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp)
	}

	var result inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", api.NewServiceError(providerName, "failed to decode inference response", err)
	}
	if result.Error != "" {
		return "", api.NewServiceError(providerName, result.Error, nil)
	}

	return strings.TrimSpace(result.Text), nil
}

// buildRequestBody assembles the multipart form whisper-server expects: the
// audio file plus response_format and optional language/prompt hints.
func (p *Provider) buildRequestBody(inputFilePath string, f *os.File) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", err
	}

	fields := map[string]string{"response_format": "json"}
	if p.cfg.Language != "" {
		fields["language"] = p.cfg.Language
	}
	if p.cfg.Prompt != "" {
		fields["prompt"] = p.cfg.Prompt
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func classifyStatus(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	message := fmt.Sprintf("inference returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return api.NewAuthError(providerName, message, nil)
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return api.NewUnsupportedFormatError(providerName, message, nil)
	default:
		return api.NewServiceError(providerName, message, nil)
	}
}
