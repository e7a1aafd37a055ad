package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var lrcTimestampPattern = regexp.MustCompile(`\[(\d+):(\d{1,2})(?:\.(\d{1,3}))?\]`)

// parseLRC reads lyric lines of the form "[mm:ss.xx]text". A line may
// carry several leading timestamps that all share one text. Metadata
// tags like [ar:...] and [ti:...] fail the numeric-timestamp match and
// are skipped. End times are unknown here; the post-processing pass
// assigns each entry the next entry's start. Empty-text timestamps are
// kept: they clear the previous lyric.
func parseLRC(content string, opts Options) []rawEntry {
	var entries []rawEntry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}

		matches := lrcTimestampPattern.FindAllStringSubmatchIndex(line, -1)
		pos := 0
		var starts []time.Duration
		for _, m := range matches {
			if m[0] != pos {
				break
			}
			pos = m[1]

			minutes, okM := atoi(line[m[2]:m[3]])
			seconds, okS := atoi(line[m[4]:m[5]])
			if !okM || !okS {
				continue
			}
			var frac time.Duration
			if m[6] != -1 {
				var ok bool
				if frac, ok = millisPart(line[m[6]:m[7]]); !ok {
					continue
				}
			}
			starts = append(starts, clockDuration(0, minutes, seconds, frac))
		}
		if len(starts) == 0 {
			continue
		}

		text := cleanMarkup(strings.TrimSpace(line[pos:]), opts)
		for _, start := range starts {
			entries = append(entries, rawEntry{start: start, end: endUnresolved, text: text})
		}
	}

	return entries
}
