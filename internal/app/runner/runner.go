package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xrx0xmx/my-ia-assistant/internal/app/api"
	"github.com/xrx0xmx/my-ia-assistant/internal/app/util/files"
)

// AudioRef is a validated handle to a local audio file. It is created once
// from user input and never mutated.
type AudioRef struct {
	Path string
	Ext  string
	Size int64
}

// Transcript is the text returned by the transcription backend together
// with the path it will be written to.
type Transcript struct {
	Text       string
	OutputPath string
}

// Runner drives a single resolve -> transcribe -> persist cycle. The
// transcription backend is injected so tests can substitute a fake instead
// of making network calls.
type Runner struct {
	transcriber api.Transcriber
	logger      *zap.Logger
}

// NewRunner creates a Runner around the given transcriber.
func NewRunner(transcriber api.Transcriber, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{transcriber: transcriber, logger: logger}
}

// ResolveInput validates the user-supplied path. The file must exist, be a
// regular file, and carry a recognized audio extension. Unknown extensions
// are refused here, before any network call.
func (r *Runner) ResolveInput(userInput string) (AudioRef, error) {
	path := strings.TrimSpace(userInput)
	if path == "" {
		return AudioRef{}, api.NewNotFoundError("(no path given)")
	}

	info, err := files.ResolveRegularFile(path)
	if err != nil {
		return AudioRef{}, api.NewNotFoundError(path)
	}

	if !files.IsSupportedAudio(path) {
		return AudioRef{}, api.NewUnsupportedFormatError("local",
			fmt.Sprintf("unrecognized audio extension %q (supported: %s)",
				filepath.Ext(path), strings.Join(files.SupportedExtensions(), " ")), nil)
	}

	return AudioRef{
		Path: path,
		Ext:  strings.ToLower(filepath.Ext(path)),
		Size: info.Size(),
	}, nil
}

// Transcribe submits the referenced file to the backend exactly once and
// derives the default output path, the input path with its extension
// replaced by .txt.
func (r *Runner) Transcribe(ref AudioRef) (Transcript, error) {
	text, err := r.transcriber.Transcript(ref.Path)
	if err != nil {
		return Transcript{}, err
	}

	return Transcript{
		Text:       text,
		OutputPath: files.ReplaceExtension(ref.Path, ".txt"),
	}, nil
}

// Persist writes the transcript as UTF-8, overwriting any existing file at
// the output path, and returns the path written.
func (r *Runner) Persist(t Transcript) (string, error) {
	if err := os.WriteFile(t.OutputPath, []byte(t.Text), 0644); err != nil {
		return "", api.NewIOError(t.OutputPath, err)
	}
	return t.OutputPath, nil
}

// Run sequences the full pipeline. outputOverride, when non-empty, replaces
// the derived output path. Any failure terminates the run, nothing is
// retried and no partial output is written.
func (r *Runner) Run(userInput, outputOverride string) (string, error) {
	log := r.logger.With(zap.String("run_id", uuid.NewString()))
	start := time.Now()

	ref, err := r.ResolveInput(userInput)
	if err != nil {
		log.Warn("input resolution failed", zap.String("input", userInput), zap.Error(err))
		return "", err
	}
	log.Info("input resolved",
		zap.String("file", ref.Path),
		zap.Int64("size_bytes", ref.Size))

	transcript, err := r.Transcribe(ref)
	if err != nil {
		log.Warn("transcription failed", zap.String("file", ref.Path), zap.Error(err))
		return "", err
	}

	if outputOverride != "" {
		transcript.OutputPath = outputOverride
	}

	outputPath, err := r.Persist(transcript)
	if err != nil {
		log.Warn("persist failed", zap.String("output", transcript.OutputPath), zap.Error(err))
		return "", err
	}

	log.Info("transcript written",
		zap.String("output", outputPath),
		zap.Int("chars", len(transcript.Text)),
		zap.Duration("elapsed", time.Since(start)))
	return outputPath, nil
}
