package cli

import (
	"testing"
	"time"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		ext   string
		want  string
	}{
		{"movie.srt", "vtt", "movie.vtt"},
		{"movie.srt", ".vtt", "movie.vtt"},
		{"movie.srt", "ASS", "movie.ass"},
		{"dir/sub/episode.ssa", "srt", "dir/sub/episode.srt"},
		{"archive.v2.scc", "srt", "archive.v2.srt"},
		{"noextension", "srt", "noextension.srt"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"->"+tt.ext, func(t *testing.T) {
			got := defaultOutputPath(tt.input, tt.ext)
			if got != tt.want {
				t.Errorf(
					"defaultOutputPath(%q, %q) = %q, want %q",
					tt.input,
					tt.ext,
					got,
					tt.want,
				)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{1500 * time.Millisecond, "00:00:01.500"},
		{90*time.Second + 250*time.Millisecond, "00:01:30.250"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04.000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatClock(tt.d); got != tt.want {
				t.Errorf("formatClock(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
