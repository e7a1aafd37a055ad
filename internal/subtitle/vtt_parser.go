package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var vttTimestampPattern = regexp.MustCompile(
	`(?:(\d+):)?(\d{1,2}):(\d{1,2})\.(\d{1,3})\s*-->\s*(?:(\d+):)?(\d{1,2}):(\d{1,2})\.(\d{1,3})`,
)

// parseVTT reads WebVTT cues. The file must open with a WEBVTT header
// line; cues are blank-line separated blocks with an optional identifier
// line, a "[H:]MM:SS.mmm --> [H:]MM:SS.mmm" line (cue settings after the
// end time are ignored), then payload lines. NOTE and STYLE blocks carry
// no timestamp line and fall out naturally.
func parseVTT(content string, opts Options) []rawEntry {
	content = stripBOM(content)
	if !strings.HasPrefix(strings.TrimSpace(content), "WEBVTT") {
		return nil
	}

	var entries []rawEntry
	for _, block := range splitBlocks(content) {
		lines := strings.Split(block, "\n")

		tsLine := -1
		var match []string
		for i, line := range lines {
			if match = vttTimestampPattern.FindStringSubmatch(line); match != nil {
				tsLine = i
				break
			}
		}
		if tsLine == -1 || tsLine > 1 {
			continue
		}

		start, ok := vttTimestamp(match[1], match[2], match[3], match[4])
		if !ok {
			continue
		}
		end, ok := vttTimestamp(match[5], match[6], match[7], match[8])
		if !ok || end < start {
			continue
		}

		text := decodeEntities(strings.Join(lines[tsLine+1:], "\n"))
		text = cleanMarkup(text, opts)
		entries = append(entries, rawEntry{start: start, end: end, text: strings.TrimSpace(text)})
	}

	return entries
}

func vttTimestamp(hours, minutes, seconds, millis string) (time.Duration, bool) {
	h := 0
	if hours != "" {
		var ok bool
		if h, ok = atoi(hours); !ok {
			return 0, false
		}
	}
	m, okM := atoi(minutes)
	s, okS := atoi(seconds)
	frac, okF := millisPart(millis)
	if !okM || !okS || !okF {
		return 0, false
	}
	return clockDuration(h, m, s, frac), true
}
