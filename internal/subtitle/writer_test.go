package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriters(t *testing.T) {
	track := testTrack(t)
	dir := t.TempDir()

	for _, format := range []Format{FormatSRT, FormatVTT, FormatSSA} {
		t.Run(string(format), func(t *testing.T) {
			writer, err := NewWriter(format)
			if err != nil {
				t.Fatalf("NewWriter: %v", err)
			}

			ext := "srt"
			switch format {
			case FormatVTT:
				ext = "vtt"
			case FormatSSA:
				ext = "ass"
			}
			path := filepath.Join(dir, "out."+ext)
			if err := writer.Write(track, path); err != nil {
				t.Fatalf("Write: %v", err)
			}

			reread, err := LoadFile(path, DefaultOptions())
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if reread.Len() != track.Len() {
				t.Fatalf("round trip: %d entries, want %d", reread.Len(), track.Len())
			}
			for i, want := range track.All() {
				got, _ := reread.Entry(i)
				if got.Text != want.Text {
					t.Errorf("entry %d text = %q, want %q", i, got.Text, want.Text)
				}
				if got.StartTime != want.StartTime {
					t.Errorf("entry %d start = %v, want %v", i, got.StartTime, want.StartTime)
				}
			}
		})
	}
}

func TestWriterUnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(FormatSCC); err == nil {
		t.Fatal("expected an error for a format without a writer")
	}
}

func TestSRTWriterOutput(t *testing.T) {
	track := newTrack([]Entry{
		{StartTime: 90500 * time.Millisecond, EndTime: 93 * time.Second, Text: "Hello"},
	}, FormatSRT, DefaultOptions())

	path := filepath.Join(t.TempDir(), "one.srt")
	writer, _ := NewWriter(FormatSRT)
	if err := writer.Write(track, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n00:01:30,500 --> 00:01:33,000\nHello\n\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}

func TestASSWriterEscapesNewlines(t *testing.T) {
	track := newTrack([]Entry{
		{StartTime: time.Second, EndTime: 2 * time.Second, Text: "two\nrows"},
	}, FormatSSA, DefaultOptions())

	path := filepath.Join(t.TempDir(), "one.ass")
	writer, _ := NewWriter(FormatSSA)
	if err := writer.Write(track, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `two\Nrows`) {
		t.Errorf("output missing escaped newline:\n%s", data)
	}
}
