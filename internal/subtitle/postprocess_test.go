package subtitle

import (
	"testing"
	"time"
)

func TestFinishEntriesSortsAndResolves(t *testing.T) {
	raw := []rawEntry{
		{start: 10 * time.Second, end: endUnresolved, text: "third"},
		{start: 2 * time.Second, end: endUnresolved, text: "first"},
		{start: 5 * time.Second, end: 7 * time.Second, text: "second"},
	}

	entries := finishEntries(raw, DefaultOptions())
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].StartTime < entries[i-1].StartTime {
			t.Errorf("entries out of order at %d: %v < %v", i, entries[i].StartTime, entries[i-1].StartTime)
		}
	}
	for i, e := range entries {
		if e.EndTime < e.StartTime {
			t.Errorf("entry %d ends before it starts: [%v, %v]", i, e.StartTime, e.EndTime)
		}
	}

	// unresolved end takes the next entry's start
	if entries[0].EndTime != 5*time.Second {
		t.Errorf("resolved end = %v, want 5s", entries[0].EndTime)
	}
	// the last entry gets the tail duration
	if entries[2].EndTime != 13*time.Second {
		t.Errorf("tail end = %v, want 13s", entries[2].EndTime)
	}
}

func TestMergeIdenticalTimestamps(t *testing.T) {
	raw := []rawEntry{
		{start: time.Second, end: 3 * time.Second, text: "Hello"},
		{start: time.Second, end: 3 * time.Second, text: "World"},
	}

	entries := finishEntries(raw, DefaultOptions())
	if len(entries) != 1 {
		t.Fatalf("expected 1 merged entry, got %d", len(entries))
	}
	if entries[0].Text != "Hello\nWorld" {
		t.Errorf("merged text = %q, want %q", entries[0].Text, "Hello\nWorld")
	}
}

func TestMergeWithinTolerance(t *testing.T) {
	raw := []rawEntry{
		{start: time.Second, end: 3 * time.Second, text: "a"},
		{start: time.Second + time.Millisecond, end: 3*time.Second - time.Millisecond, text: "b"},
		{start: time.Second + 5*time.Millisecond, end: 3 * time.Second, text: "c"},
	}

	entries := finishEntries(raw, DefaultOptions())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "a\nb" {
		t.Errorf("merged text = %q", entries[0].Text)
	}
	if entries[1].Text != "c" {
		t.Errorf("second text = %q", entries[1].Text)
	}
}

func TestMergeSkipsEmptyFragments(t *testing.T) {
	raw := []rawEntry{
		{start: time.Second, end: 3 * time.Second, text: "kept"},
		{start: time.Second, end: 3 * time.Second, text: ""},
		{start: time.Second, end: 3 * time.Second, text: "also kept"},
	}

	entries := finishEntries(raw, DefaultOptions())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "kept\nalso kept" {
		t.Errorf("text = %q", entries[0].Text)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	entries := []Entry{
		{StartTime: time.Second, EndTime: 2 * time.Second, Text: "a"},
		{StartTime: time.Second, EndTime: 2 * time.Second, Text: "b"},
		{StartTime: 2 * time.Second, EndTime: 2*time.Second + time.Millisecond, Text: "c"},
		{StartTime: 4 * time.Second, EndTime: 5 * time.Second, Text: "d"},
	}

	once := mergeEntries(entries, defaultMergeTolerance)
	twice := mergeEntries(once, defaultMergeTolerance)
	if len(once) != len(twice) {
		t.Fatalf("merge not idempotent: %d then %d entries", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("entry %d changed on second merge: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestFindOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    int
	}{
		{
			name: "40ms overlap stays quiet",
			entries: []Entry{
				{StartTime: 0, EndTime: 2 * time.Second, Text: "a"},
				{StartTime: 1960 * time.Millisecond, EndTime: 3 * time.Second, Text: "b"},
			},
			want: 0,
		},
		{
			name: "100ms overlap reported",
			entries: []Entry{
				{StartTime: 0, EndTime: 2 * time.Second, Text: "a"},
				{StartTime: 1900 * time.Millisecond, EndTime: 3 * time.Second, Text: "b"},
			},
			want: 1,
		},
		{
			name: "disjoint entries",
			entries: []Entry{
				{StartTime: 0, EndTime: time.Second, Text: "a"},
				{StartTime: 2 * time.Second, EndTime: 3 * time.Second, Text: "b"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, total := findOverlaps(tt.entries, defaultOverlapTolerance)
			if total != tt.want {
				t.Fatalf("total = %d, want %d", total, tt.want)
			}
			if len(reports) != tt.want {
				t.Fatalf("reports = %d, want %d", len(reports), tt.want)
			}
		})
	}
}

func TestFindOverlapsCapsReports(t *testing.T) {
	// eight entries all pairwise overlapping inside the window
	var entries []Entry
	for i := 0; i < 8; i++ {
		entries = append(entries, Entry{
			StartTime: time.Duration(i) * 100 * time.Millisecond,
			EndTime:   5 * time.Second,
			Text:      "x",
		})
	}

	reports, total := findOverlaps(entries, defaultOverlapTolerance)
	if len(reports) != maxOverlapReports {
		t.Errorf("reports = %d, want cap of %d", len(reports), maxOverlapReports)
	}
	if total <= maxOverlapReports {
		t.Errorf("total = %d, want more than the cap", total)
	}
}
