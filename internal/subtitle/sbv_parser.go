package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var sbvTimestampPattern = regexp.MustCompile(
	`^(\d+):(\d{1,2}):(\d{1,2})\.(\d{1,3}),(\d+):(\d{1,2}):(\d{1,2})\.(\d{1,3})$`,
)

// parseSBV reads YouTube SBV blocks: a "H:MM:SS.mmm,H:MM:SS.mmm" line
// followed by text lines until a blank line.
func parseSBV(content string, opts Options) []rawEntry {
	var entries []rawEntry

	for _, block := range splitBlocks(content) {
		lines := strings.Split(block, "\n")

		match := sbvTimestampPattern.FindStringSubmatch(strings.TrimSpace(lines[0]))
		if match == nil {
			continue
		}

		start, okS := sbvTimestamp(match[1], match[2], match[3], match[4])
		end, okE := sbvTimestamp(match[5], match[6], match[7], match[8])
		if !okS || !okE || end < start {
			continue
		}

		text := cleanMarkup(strings.Join(lines[1:], "\n"), opts)
		entries = append(entries, rawEntry{start: start, end: end, text: strings.TrimSpace(text)})
	}

	return entries
}

func sbvTimestamp(hours, minutes, seconds, millis string) (time.Duration, bool) {
	h, okH := atoi(hours)
	m, okM := atoi(minutes)
	s, okS := atoi(seconds)
	frac, okF := millisPart(millis)
	if !okH || !okM || !okS || !okF {
		return 0, false
	}
	return clockDuration(h, m, s, frac), true
}
