package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var encoreLinePattern = regexp.MustCompile(
	`^(\d+)\s+(\d{1,2});(\d{1,2});(\d{1,2});(\d{1,2})\s+(\d{1,2});(\d{1,2});(\d{1,2});(\d{1,2})\s+(.*)$`,
)

// parseEncore reads Adobe Encore exports: numbered lines holding a
// semicolon timecode pair and the first caption row. Unnumbered lines
// continue the previous caption.
func parseEncore(content string, opts Options) []rawEntry {
	fps := opts.frames(defaultFrameRate)

	var entries []rawEntry
	for _, line := range strings.Split(stripBOM(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := encoreLinePattern.FindStringSubmatch(line)
		if match == nil {
			if len(entries) > 0 {
				entries[len(entries)-1].text += "\n" + cleanMarkup(line, opts)
			}
			continue
		}

		start, okS := encoreTimecode(match[2], match[3], match[4], match[5], fps)
		end, okE := encoreTimecode(match[6], match[7], match[8], match[9], fps)
		if !okS || !okE || end < start {
			continue
		}

		entries = append(entries, rawEntry{
			start: start,
			end:   end,
			text:  cleanMarkup(strings.TrimSpace(match[10]), opts),
		})
	}

	return entries
}

func encoreTimecode(hours, minutes, seconds, frames string, fps float64) (time.Duration, bool) {
	h, okH := atoi(hours)
	m, okM := atoi(minutes)
	s, okS := atoi(seconds)
	f, okF := atoi(frames)
	if !okH || !okM || !okS || !okF {
		return 0, false
	}
	return timecodeDuration(h, m, s, f, fps), true
}
