package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// audioExtensions lists the container types the remote services accept.
// Validation stops at the extension, the payload itself is never sniffed.
var audioExtensions = []string{
	".mp3", ".wav", ".m4a", ".flac", ".ogg", ".oga", ".aac", ".webm", ".mpga", ".mpeg", ".mp4",
}

// IsSupportedAudio reports whether the path carries a recognized audio
// extension. Matching is case-insensitive.
func IsSupportedAudio(path string) bool {
	return lo.Contains(audioExtensions, strings.ToLower(filepath.Ext(path)))
}

// SupportedExtensions returns the accepted extension list for error messages.
func SupportedExtensions() []string {
	return append([]string(nil), audioExtensions...)
}

// ReplaceExtension swaps the extension of path for newExt, which must
// include the leading dot. A path without an extension gets newExt appended.
func ReplaceExtension(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// ResolveRegularFile verifies that path names an existing regular file and
// returns its FileInfo.
func ResolveRegularFile(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}
	return info, nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
