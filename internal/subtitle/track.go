package subtitle

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// ErrEmptyTrack is returned by operations that need at least one entry.
var ErrEmptyTrack = errors.New("track has no entries")

// Track is an immutable, time-ordered caption sequence produced by one
// load or parse call. Queries are read-only and safe for concurrent
// readers.
type Track struct {
	entries      []Entry
	format       Format
	opts         Options
	overlaps     []Overlap
	overlapCount int
}

func newTrack(entries []Entry, format Format, opts Options) *Track {
	overlaps, total := findOverlaps(entries, opts.OverlapTolerance)
	return &Track{
		entries:      entries,
		format:       format,
		opts:         opts,
		overlaps:     overlaps,
		overlapCount: total,
	}
}

// Format returns the dialect the track was parsed from.
func (t *Track) Format() Format {
	return t.format
}

// Len returns the number of entries.
func (t *Track) Len() int {
	return len(t.entries)
}

// Entry returns the entry at index i.
func (t *Track) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(t.entries) {
		return Entry{}, fmt.Errorf("index %d out of range (0-%d)", i, len(t.entries)-1)
	}
	return t.entries[i], nil
}

// All iterates entries in start-time order.
func (t *Track) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range t.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// IndexAt returns the index of the first entry active at the given time,
// or -1. An entry is active on the closed interval [start, end], and the
// first match wins, mirroring a player that renders one caption at a
// time.
func (t *Track) IndexAt(at time.Duration) int {
	for i, e := range t.entries {
		if e.StartTime > at {
			break
		}
		if at <= e.EndTime {
			return i
		}
	}
	return -1
}

// TextAt returns the text active at the given time, or "".
func (t *Track) TextAt(at time.Duration) string {
	if i := t.IndexAt(at); i >= 0 {
		return t.entries[i].Text
	}
	return ""
}

// Range returns the entries whose display interval touches [start, end].
func (t *Track) Range(start, end time.Duration) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.StartTime > end {
			break
		}
		if e.EndTime >= start {
			out = append(out, e)
		}
	}
	return out
}

// TotalDuration returns the end time of the last entry, or zero for an
// empty track.
func (t *Track) TotalDuration() time.Duration {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[len(t.entries)-1].EndTime
}

// Overlaps returns the individual overlap reports gathered at load time,
// capped at a handful; OverlapCount has the full number.
func (t *Track) Overlaps() []Overlap {
	return t.overlaps
}

// OverlapCount returns how many entry pairs overlap beyond tolerance.
func (t *Track) OverlapCount() int {
	return t.overlapCount
}

// Keyframe is one discrete text change on a playback timeline.
type Keyframe struct {
	At   time.Duration
	Text string
}

// Keyframes flattens the track into discrete text changes: set at each
// entry's start, clear at its end. The clear is dropped when the next
// entry starts before the current one ends, and a leading empty frame
// anchors the timeline when the first entry starts late.
func (t *Track) Keyframes() ([]Keyframe, error) {
	if len(t.entries) == 0 {
		return nil, ErrEmptyTrack
	}

	var frames []Keyframe
	if t.entries[0].StartTime > 0 {
		frames = append(frames, Keyframe{At: 0, Text: ""})
	}
	for i, e := range t.entries {
		frames = append(frames, Keyframe{At: e.StartTime, Text: e.Text})
		if i+1 < len(t.entries) && t.entries[i+1].StartTime <= e.EndTime {
			continue
		}
		frames = append(frames, Keyframe{At: e.EndTime, Text: ""})
	}
	return frames, nil
}

// Shifted returns a copy whose entries are moved by delta. Starts clamp
// at zero; entries pushed entirely before zero are dropped. Overlap
// diagnostics are recomputed for the shifted sequence.
func (t *Track) Shifted(delta time.Duration) *Track {
	entries := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		start := e.StartTime + delta
		end := e.EndTime + delta
		if end <= 0 {
			continue
		}
		if start < 0 {
			start = 0
		}
		entries = append(entries, Entry{StartTime: start, EndTime: end, Text: e.Text})
	}
	return newTrack(entries, t.format, t.opts)
}
