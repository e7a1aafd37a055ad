package subtitle

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Wrapper re-flows caption text to fit display conventions.
type Wrapper struct {
	MaxCharsPerLine int
	MaxLinesPerSub  int
	MaxDuration     time.Duration
}

func NewWrapper() *Wrapper {
	return &Wrapper{
		MaxCharsPerLine: 42, // standard subtitle line length
		MaxLinesPerSub:  2,  // most players support 2 lines
		MaxDuration:     7 * time.Second,
	}
}

// Rewrap returns a track whose captions fit the wrapper's rules: each
// entry's rows are joined and re-broken near the middle, and entries too
// long for one caption are split into consecutive entries sharing the
// original time span. Empty entries pass through untouched.
func (w *Wrapper) Rewrap(track *Track) *Track {
	entries := make([]Entry, 0, track.Len())

	for _, e := range track.All() {
		text := strings.Join(strings.Fields(e.Text), " ")
		if w.needsSplit(text, e.Duration()) {
			entries = append(entries, w.split(e, text)...)
			continue
		}
		entries = append(entries, Entry{
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			Text:      w.wrapText(text),
		})
	}

	return newTrack(entries, track.format, track.opts)
}

func (w *Wrapper) needsSplit(text string, duration time.Duration) bool {
	// if text is too long, split
	if utf8.RuneCountInString(text) > w.MaxCharsPerLine*w.MaxLinesPerSub {
		return true
	}

	// if duration is too long, split
	if duration > w.MaxDuration {
		return true
	}

	return false
}

// splits a long entry into multiple entries over the same time span
func (w *Wrapper) split(e Entry, text string) []Entry {
	words := strings.Fields(text)
	totalDuration := e.Duration()

	if len(words) == 0 {
		return []Entry{e}
	}

	// approximate characters per caption
	maxChars := w.MaxCharsPerLine * w.MaxLinesPerSub
	totalChars := utf8.RuneCountInString(text)

	// estimate of splits needed
	numSplits := (totalChars + maxChars - 1) / maxChars
	if numSplits < 1 {
		numSplits = 1
	}

	durationSplits := int(totalDuration/w.MaxDuration) + 1
	if durationSplits > numSplits {
		numSplits = durationSplits
	}

	// distribute words across splits
	wordsPerSplit := (len(words) + numSplits - 1) / numSplits
	durationPerSplit := totalDuration / time.Duration(numSplits)

	var entries []Entry
	currentStart := e.StartTime

	for i := 0; i < numSplits && len(words) > 0; i++ {
		endIdx := wordsPerSplit
		if endIdx > len(words) {
			endIdx = len(words)
		}

		splitWords := words[:endIdx]
		words = words[endIdx:]

		currentEnd := currentStart + durationPerSplit

		// last split ends at the original end time
		if len(words) == 0 {
			currentEnd = e.EndTime
		}

		entries = append(entries, Entry{
			StartTime: currentStart,
			EndTime:   currentEnd,
			Text:      w.wrapText(strings.Join(splitWords, " ")),
		})

		currentStart = currentEnd
	}

	return entries
}

// wrapText breaks text onto two lines at the word boundary nearest the
// middle when it exceeds one line.
func (w *Wrapper) wrapText(text string) string {
	text = strings.TrimSpace(text)
	runeCount := utf8.RuneCountInString(text)

	// if text fits on one line, return as is
	if runeCount <= w.MaxCharsPerLine {
		return text
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	// find the best split point (closest to middle)
	middle := runeCount / 2
	bestSplit := 0
	bestDiff := runeCount

	currentLen := 0
	for i, word := range words[:len(words)-1] {
		currentLen += utf8.RuneCountInString(word)
		if i > 0 {
			currentLen++ // space
		}

		diff := abs(currentLen - middle)
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i + 1
		}
	}

	if bestSplit > 0 && bestSplit < len(words) {
		line1 := strings.Join(words[:bestSplit], " ")
		line2 := strings.Join(words[bestSplit:], " ")
		return line1 + "\n" + line2
	}

	return text
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
