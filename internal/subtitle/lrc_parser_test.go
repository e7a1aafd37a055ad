package subtitle

import (
	"testing"
	"time"
)

func TestParseLRC(t *testing.T) {
	content := `[ar:Some Artist]
[ti:Some Title]
[00:12.00]First lyric line
[00:17.20]Second lyric line
[00:21.10][00:45.10]Repeated chorus line
[00:25.00]
`

	entries := parseLRC(content, DefaultOptions())
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	if entries[0].start != 12*time.Second {
		t.Errorf("start = %v, want 12s", entries[0].start)
	}
	if entries[0].end != endUnresolved {
		t.Errorf("end should stay unresolved, got %v", entries[0].end)
	}
	if entries[0].text != "First lyric line" {
		t.Errorf("text = %q", entries[0].text)
	}
	if entries[1].start != 17200*time.Millisecond {
		t.Errorf("centisecond start = %v, want 17.2s", entries[1].start)
	}

	// the doubled timestamp emits the same text twice
	if entries[2].text != "Repeated chorus line" || entries[3].text != "Repeated chorus line" {
		t.Errorf("repeated texts = %q, %q", entries[2].text, entries[3].text)
	}
	if entries[3].start != 45100*time.Millisecond {
		t.Errorf("second chorus start = %v, want 45.1s", entries[3].start)
	}

	// bare timestamp lines are kept as lyric clears
	if entries[4].text != "" {
		t.Errorf("clear entry text = %q, want empty", entries[4].text)
	}
}

func TestParseLRCSkipsMetadata(t *testing.T) {
	content := `[ar:Artist]
[by:Transcriber]
[offset:+500]
plain line without brackets
`
	if entries := parseLRC(content, DefaultOptions()); len(entries) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(entries))
	}
}
