package subtitle

import (
	"testing"
	"time"
)

func TestParseTTXT(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<TextStream version="1.1">
  <TextStreamHeader timeScale="1000">
    <TextSampleDescription horizontalJustification="center"/>
  </TextStreamHeader>
  <TextSample sampleTime="00:00:01.000" text="First sample"/>
  <TextSample sampleTime="00:00:03.000" text=""/>
  <TextSample sampleTime="00:00:05.500" text="Second&#xD;sample"/>
</TextStream>`

	entries := parseTTXT(content, DefaultOptions())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].start != time.Second {
		t.Errorf("start = %v, want 1s", entries[0].start)
	}
	// the empty sample at 3s terminates the first caption
	if entries[0].end != 3*time.Second {
		t.Errorf("end = %v, want 3s", entries[0].end)
	}
	if entries[0].text != "First sample" {
		t.Errorf("text = %q", entries[0].text)
	}

	if entries[1].start != 5500*time.Millisecond {
		t.Errorf("start = %v, want 5.5s", entries[1].start)
	}
	if entries[1].end != endUnresolved {
		t.Errorf("last end should stay unresolved, got %v", entries[1].end)
	}
	if entries[1].text != "Second\nsample" {
		t.Errorf("carriage-return text = %q", entries[1].text)
	}
}

func TestParseTTXTRawUnits(t *testing.T) {
	content := `<TextStream>
  <TextStreamHeader timeScale="600"/>
  <TextSample sampleTime="600">Inner body text</TextSample>
  <TextSample sampleTime="1200"/>
</TextStream>`

	entries := parseTTXT(content, DefaultOptions())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].start != time.Second {
		t.Errorf("start = %v, want 1s at timeScale 600", entries[0].start)
	}
	if entries[0].end != 2*time.Second {
		t.Errorf("end = %v, want 2s", entries[0].end)
	}
	if entries[0].text != "Inner body text" {
		t.Errorf("text = %q", entries[0].text)
	}
}
