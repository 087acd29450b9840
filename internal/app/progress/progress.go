package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Config controls whether progress bars are rendered and where.
type Config struct {
	Enabled bool
	Writer  io.Writer
}

// Manager owns the mpb container for a run. A disabled manager hands back
// pass-through readers so callers never branch on it.
type Manager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

// NewManager creates a progress manager.
func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)

	return &Manager{container: container, enabled: true}
}

// UploadReader wraps r in a byte-counting progress bar labeled with the file
// name. It satisfies api.ProgressFunc.
func (m *Manager) UploadReader(label string, size int64, r io.Reader) io.ReadCloser {
	if !m.enabled || m.container == nil || size <= 0 {
		return io.NopCloser(r)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bar := m.container.AddBar(size,
		mpb.PrependDecorators(
			decor.Name(label+" ", decor.WC{W: len(label) + 1, C: decor.DindentRight}),
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%d", decor.WCSyncSpace),
			decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " done"),
		),
	)

	return &barReader{ReadCloser: bar.ProxyReader(r), bar: bar}
}

// barReader aborts the bar on Close when the upload did not finish, so
// Manager.Wait never blocks on a failed request.
type barReader struct {
	io.ReadCloser
	bar *mpb.Bar
}

func (r *barReader) Close() error {
	err := r.ReadCloser.Close()
	if !r.bar.Completed() {
		r.bar.Abort(true)
	}
	return err
}

// Wait blocks until all bars have rendered their final state.
func (m *Manager) Wait() {
	if m.enabled && m.container != nil {
		m.container.Wait()
	}
}

// IsTTY reports whether the writer is attached to a terminal.
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress decides whether to render bars by default.
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}
