package audio

import (
	"encoding/binary"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func requireFFprobe(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed, skipping")
	}
}

// writeTestWav writes a valid mono 16 kHz PCM WAV of the given duration.
func writeTestWav(t *testing.T, dir string, duration time.Duration) string {
	t.Helper()

	const sampleRate = 16000
	samples := int(duration.Seconds() * sampleRate)
	dataSize := samples * 2

	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create wav: %v", err)
	}
	defer f.Close()

	f.Write([]byte("RIFF"))
	binary.Write(f, binary.LittleEndian, uint32(36+dataSize))
	f.Write([]byte("WAVEfmt "))
	binary.Write(f, binary.LittleEndian, uint32(16))
	binary.Write(f, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(f, binary.LittleEndian, uint16(1)) // mono
	binary.Write(f, binary.LittleEndian, uint32(sampleRate))
	binary.Write(f, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(f, binary.LittleEndian, uint16(2))
	binary.Write(f, binary.LittleEndian, uint16(16))
	f.Write([]byte("data"))
	binary.Write(f, binary.LittleEndian, uint32(dataSize))
	f.Write(make([]byte, dataSize))

	return path
}

func TestGetAudioDuration(t *testing.T) {
	requireFFprobe(t)

	path := writeTestWav(t, t.TempDir(), 2*time.Second)

	duration, err := GetAudioDuration(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if duration != 2*time.Second {
		t.Errorf("expected 2s, got %s", duration)
	}
}

func TestGetAudioDurationMissingFile(t *testing.T) {
	requireFFprobe(t)

	if _, err := GetAudioDuration("/non/existent/file.wav"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProbe(t *testing.T) {
	requireFFprobe(t)

	path := writeTestWav(t, t.TempDir(), time.Second)

	info, err := Probe(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.CodecName != "pcm_s16le" {
		t.Errorf("expected pcm_s16le codec, got %q", info.CodecName)
	}
	if info.SampleRate != 16000 {
		t.Errorf("expected 16000 Hz, got %d", info.SampleRate)
	}
	if info.Channels != 1 {
		t.Errorf("expected mono, got %d channels", info.Channels)
	}
	if info.SizeBytes == 0 {
		t.Error("expected a non-zero size")
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := Probe("/non/existent/file.wav"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConvertTo16kHzWavRejectsUnknownFormat(t *testing.T) {
	if _, err := ConvertTo16kHzWav("/tmp/notes.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestConvertTo16kHzWavReusesExistingOutput(t *testing.T) {
	tempDir := t.TempDir()
	input := filepath.Join(tempDir, "memo.mp3")
	existing := filepath.Join(tempDir, "memo_16khz.wav")
	os.WriteFile(input, []byte("fake"), 0644)
	os.WriteFile(existing, []byte("already converted"), 0644)

	// ffmpeg must not run at all when the output is already there.
	out, err := ConvertTo16kHzWav(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != existing {
		t.Errorf("expected %s, got %s", existing, out)
	}
}
