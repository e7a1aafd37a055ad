package subtitle

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Overlap reports two entries that are on screen together for longer
// than the tolerance. Overlaps are diagnostics: the entries stay in the
// track untouched.
type Overlap struct {
	IndexA   int
	IndexB   int
	Duration time.Duration
}

func (o Overlap) String() string {
	return fmt.Sprintf("entries %d and %d overlap by %s", o.IndexA, o.IndexB, o.Duration)
}

const (
	// entries inspected ahead of each entry when hunting overlaps,
	// keeping the scan linear on pathological files
	overlapLookahead = 10

	// individual reports kept before falling back to a bare count
	maxOverlapReports = 5
)

// finishEntries turns parser output into the final sequence: stable-sort
// by start time, resolve unknown end times from the next entry's start
// (the last entry gets the tail duration), then collapse runs that share
// timestamps.
func finishEntries(raw []rawEntry, opts Options) []Entry {
	if len(raw) == 0 {
		return nil
	}

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].start < raw[j].start })

	for i := range raw {
		if raw[i].end != endUnresolved {
			continue
		}
		if i+1 < len(raw) {
			raw[i].end = raw[i+1].start
		} else {
			raw[i].end = raw[i].start + defaultTailDuration
		}
	}

	entries := make([]Entry, len(raw))
	for i, r := range raw {
		entries[i] = Entry{StartTime: r.start, EndTime: r.end, Text: r.text}
	}
	return mergeEntries(entries, opts.MergeTolerance)
}

// mergeEntries collapses consecutive entries whose start and end both sit
// within tolerance of the run's first entry. Texts join with newlines in
// encounter order; empty fragments are skipped. Comparing against the
// run's first entry keeps the pass idempotent.
func mergeEntries(entries []Entry, tolerance time.Duration) []Entry {
	if len(entries) < 2 {
		return entries
	}

	merged := make([]Entry, 0, len(entries))
	anchor := entries[0]
	texts := appendText(nil, anchor.Text)

	flush := func() {
		anchor.Text = strings.Join(texts, "\n")
		merged = append(merged, anchor)
	}

	for _, e := range entries[1:] {
		if within(e.StartTime, anchor.StartTime, tolerance) &&
			within(e.EndTime, anchor.EndTime, tolerance) {
			texts = appendText(texts, e.Text)
			continue
		}
		flush()
		anchor = e
		texts = appendText(nil, e.Text)
	}
	flush()

	return merged
}

// findOverlaps walks the sorted entries and measures pairwise overlap
// inside the lookahead window, stopping early once the next start clears
// the current end. It returns up to maxOverlapReports individual reports
// plus the total count.
func findOverlaps(entries []Entry, tolerance time.Duration) ([]Overlap, int) {
	var reports []Overlap
	total := 0

	for i := range entries {
		for j := i + 1; j < len(entries) && j <= i+overlapLookahead; j++ {
			if entries[j].StartTime >= entries[i].EndTime {
				break
			}
			overlap := minDuration(entries[i].EndTime, entries[j].EndTime) -
				maxDuration(entries[i].StartTime, entries[j].StartTime)
			if overlap <= tolerance {
				continue
			}
			total++
			if len(reports) < maxOverlapReports {
				reports = append(reports, Overlap{IndexA: i, IndexB: j, Duration: overlap})
			}
		}
	}

	return reports, total
}

func appendText(texts []string, s string) []string {
	if s == "" {
		return texts
	}
	return append(texts, s)
}

func within(a, b, tolerance time.Duration) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
