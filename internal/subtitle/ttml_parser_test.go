package subtitle

import (
	"testing"
	"time"
)

func TestParseTTML(t *testing.T) {
	content := `<?xml version="1.0" encoding="utf-8"?>
<tt xmlns="http://www.w3.org/ns/ttml">
  <body>
    <div>
      <p begin="00:00:01.000" end="00:00:03.500">Plain clock times</p>
      <p begin="4s" dur="2.5s">Offset with duration</p>
      <p begin="00:00:10:12" end="00:00:11:00">Frame clock</p>
      <p begin="75000000t" end="80000000t">Tick times</p>
      <p begin="12f" end="50f">Frame offsets</p>
      <p begin="20s">No end or dur</p>
      <p begin="22s" end="23s"><span>Nested</span> <span>spans</span><br/>new line</p>
    </div>
  </body>
</tt>`

	entries := parseTTML(content, DefaultOptions())
	if len(entries) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(entries))
	}

	if entries[0].start != time.Second || entries[0].end != 3500*time.Millisecond {
		t.Errorf("clock entry = [%v, %v]", entries[0].start, entries[0].end)
	}
	if entries[1].start != 4*time.Second || entries[1].end != 6500*time.Millisecond {
		t.Errorf("dur entry = [%v, %v]", entries[1].start, entries[1].end)
	}

	// 12 frames at the default 25 fps is 480ms
	if entries[2].start != 10*time.Second+480*time.Millisecond {
		t.Errorf("frame clock start = %v", entries[2].start)
	}

	// 75,000,000 ticks at 10,000,000/s is 7.5s
	if entries[3].start != 7500*time.Millisecond {
		t.Errorf("tick start = %v", entries[3].start)
	}

	if entries[4].start != 480*time.Millisecond || entries[4].end != 2*time.Second {
		t.Errorf("frame offsets = [%v, %v]", entries[4].start, entries[4].end)
	}

	if entries[5].end != 23*time.Second {
		t.Errorf("default duration end = %v, want 23s", entries[5].end)
	}

	if entries[6].text != "Nested spans\nnew line" {
		t.Errorf("flattened text = %q", entries[6].text)
	}
}

func TestParseTTMLSkipsBadTimes(t *testing.T) {
	content := `<tt><body>
<p begin="garbage" end="00:00:02.000">Dropped</p>
<p begin="00:00:03.000" end="00:00:04.000">Kept</p>
</body></tt>`

	entries := parseTTML(content, DefaultOptions())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].text != "Kept" {
		t.Errorf("text = %q", entries[0].text)
	}
}
