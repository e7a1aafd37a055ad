package subtitle

import (
	"testing"
	"time"
)

func TestParseSAMI(t *testing.T) {
	content := `<SAMI>
<HEAD><TITLE>Example</TITLE></HEAD>
<BODY>
<SYNC Start=1000><P Class=ENCC>First caption<br>second row</P>
<SYNC Start=4000><P Class=ENCC>&nbsp;</P>
<SYNC Start=5000><P Class=ENCC>Fish &amp; chips</P>
</BODY>
</SAMI>`

	entries := parseSAMI(content, DefaultOptions())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].start != time.Second {
		t.Errorf("start = %v, want 1s", entries[0].start)
	}
	// the &nbsp; sync at 4s clears the screen and caps the first entry
	if entries[0].end != 4*time.Second {
		t.Errorf("end = %v, want 4s", entries[0].end)
	}
	if entries[0].text != "First caption\nsecond row" {
		t.Errorf("text = %q", entries[0].text)
	}

	if entries[1].text != "Fish & chips" {
		t.Errorf("entity text = %q", entries[1].text)
	}
	// last caption runs for the default duration
	if entries[1].end != 8*time.Second {
		t.Errorf("last end = %v, want 8s", entries[1].end)
	}
}

func TestParseSAMILowercaseTags(t *testing.T) {
	content := `<sami><body>
<sync start="2500"><p>lower case markup</p>
</body></sami>`

	entries := parseSAMI(content, DefaultOptions())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].start != 2500*time.Millisecond {
		t.Errorf("start = %v, want 2.5s", entries[0].start)
	}
	if entries[0].text != "lower case markup" {
		t.Errorf("text = %q", entries[0].text)
	}
}
