package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ProbeInfo summarizes what ffprobe reports about an audio file.
type ProbeInfo struct {
	Path       string
	FormatName string
	CodecName  string
	SampleRate int
	Channels   int
	Duration   time.Duration
	SizeBytes  int64
}

// ffprobeOutput mirrors the JSON ffprobe emits with -show_streams -show_format.
// Numeric fields arrive as strings.
type ffprobeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate string `json:"sample_rate"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
		Size       string `json:"size"`
	} `json:"format"`
}

// GetAudioDuration returns the duration of the file rounded to the nearest
// second, using ffprobe.
func GetAudioDuration(filePath string) (time.Duration, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", filePath, err)
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(math.Round(durationFloat)) * time.Second, nil
}

// Probe runs ffprobe over the file and returns the parsed stream and
// container information for the first audio stream.
func Probe(filePath string) (*ProbeInfo, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, err
	}

	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json",
		"-show_streams", "-show_format", filePath)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %w", filePath, err)
	}

	var probed ffprobeOutput
	if err := json.Unmarshal(output, &probed); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &ProbeInfo{Path: filePath, FormatName: probed.Format.FormatName}
	if seconds, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
		info.Duration = time.Duration(seconds * float64(time.Second))
	}
	if size, err := strconv.ParseInt(probed.Format.Size, 10, 64); err == nil {
		info.SizeBytes = size
	}
	for _, stream := range probed.Streams {
		if stream.CodecType == "audio" {
			info.CodecName = stream.CodecName
			info.Channels = stream.Channels
			if rate, err := strconv.Atoi(stream.SampleRate); err == nil {
				info.SampleRate = rate
			}
			break
		}
	}

	return info, nil
}

// convertibleExtensions are the inputs ffmpeg conversion accepts.
var convertibleExtensions = []string{".mp3", ".m4a", ".wav", ".flac", ".ogg", ".aac", ".webm", ".mp4"}

// ConvertTo16kHzWav converts the input to a 16 kHz PCM WAV next to the
// original and returns its path. An existing converted file is reused.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(inputFilePath))
	supported := false
	for _, e := range convertibleExtensions {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return "", fmt.Errorf("unsupported audio format for conversion: %s", ext)
	}

	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"
	if _, err := os.Stat(outputFilePath); err == nil {
		return outputFilePath, nil
	}

	cmd := exec.Command("ffmpeg", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le",
		"-ar", "16000", "-ac", "1", outputFilePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputFilePath, nil
}
