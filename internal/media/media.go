// Package media lists and extracts subtitle streams embedded in video
// containers via ffprobe and ffmpeg.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "subtext/internal/ffmpeg"
)

// SubtitleStream describes one embedded subtitle stream.
type SubtitleStream struct {
	Index    int // container stream index
	Position int // position among subtitle streams (ffmpeg 0:s:N)
	Codec    string
	Language string
	Title    string
}

// JSON output from ffprobe
type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	Index     int               `json:"index"`
	CodecName string            `json:"codec_name"`
	CodecType string            `json:"codec_type"`
	Tags      map[string]string `json:"tags"`
}

// ListSubtitleStreams probes a media file and returns its subtitle
// streams in container order.
func ListSubtitleStreams(ctx context.Context, path string) ([]SubtitleStream, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseStreams(out.Bytes())
}

// parseStreams filters ffprobe stream JSON down to subtitle streams.
func parseStreams(data []byte) ([]SubtitleStream, error) {
	var probe probeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var streams []SubtitleStream
	for _, s := range probe.Streams {
		if !strings.EqualFold(s.CodecType, "subtitle") {
			continue
		}
		streams = append(streams, SubtitleStream{
			Index:    s.Index,
			Position: len(streams),
			Codec:    s.CodecName,
			Language: s.Tags["language"],
			Title:    s.Tags["title"],
		})
	}
	return streams, nil
}

// ExtractSubtitle demuxes one subtitle stream (by position among subtitle
// streams) to a standalone file. The output extension selects the target
// codec; ffmpeg converts freely between the text codecs.
func ExtractSubtitle(ctx context.Context, mediaPath, outputPath string, position int) error {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if position < 0 {
		return fmt.Errorf("stream position must not be negative, got %d", position)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", position),
	}

	err = ffmpeg.Input(mediaPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}

// IsTextCodec reports whether the codec demuxes to a text subtitle file.
// Bitmap codecs (PGS, DVD subpictures) need OCR and are out of reach.
func IsTextCodec(codec string) bool {
	switch strings.ToLower(codec) {
	case "subrip", "srt", "webvtt", "vtt", "ass", "ssa", "mov_text", "tx3g", "text":
		return true
	}
	return false
}

// ExtensionForCodec maps an embedded subtitle codec to the natural file
// extension for extraction.
func ExtensionForCodec(codec string) string {
	switch strings.ToLower(codec) {
	case "webvtt", "vtt":
		return ".vtt"
	case "ass", "ssa":
		return ".ass"
	default:
		// subrip, mov_text and friends demux cleanly to SubRip
		return ".srt"
	}
}

// IsMediaFile checks if the file is a video container based on extension.
func IsMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	containerExts := map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".wmv":  true,
		".flv":  true,
		".webm": true,
		".m4v":  true,
		".mpeg": true,
		".mpg":  true,
		".3gp":  true,
		".ts":   true,
	}
	return containerExts[ext]
}
