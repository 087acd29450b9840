package api

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"not found", NewNotFoundError("/tmp/missing.wav"), CodeNotFound},
		{"auth", NewAuthError("openai", "key rejected", nil), CodeAuth},
		{"unsupported format", NewUnsupportedFormatError("openai", "bad payload", nil), CodeUnsupportedFormat},
		{"service", NewServiceError("openai", "timeout", errors.New("context deadline exceeded")), CodeService},
		{"io", NewIOError("/tmp/out.txt", errors.New("permission denied")), CodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !HasCode(tt.err, tt.code) {
				t.Errorf("HasCode(%v, %q) = false, want true", tt.err, tt.code)
			}
			for _, other := range []string{CodeNotFound, CodeAuth, CodeUnsupportedFormat, CodeService, CodeIO} {
				if other != tt.code && HasCode(tt.err, other) {
					t.Errorf("HasCode(%v, %q) = true, want false", tt.err, other)
				}
			}
		})
	}
}

func TestHasCodeWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("run failed: %w", NewNotFoundError("missing.wav"))
	if !HasCode(wrapped, CodeNotFound) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
}

func TestHasCodePlainError(t *testing.T) {
	if HasCode(errors.New("plain"), CodeService) {
		t.Error("HasCode should be false for untyped errors")
	}
	if HasCode(nil, CodeService) {
		t.Error("HasCode should be false for nil")
	}
}

func TestErrorMessageContainsPath(t *testing.T) {
	err := NewNotFoundError("/data/missing.wav")
	if got := err.Error(); !strings.Contains(got, "/data/missing.wav") {
		t.Errorf("error message should name the missing path, got %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewServiceError("whisper_server", "inference request failed", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
