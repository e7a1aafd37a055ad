package subtitle

import (
	"regexp"
	"strings"
)

var transtationHeaderPattern = regexp.MustCompile(
	`^SUB\[[^\]]*?(\d{1,2}):(\d{1,2}):(\d{1,2}):(\d{1,2})>(\d{1,2}):(\d{1,2}):(\d{1,2}):(\d{1,2})[^\]]*\]`,
)

// parseTranstation reads SUB[...] header lines carrying a ">"-separated
// timecode pair, each followed by a text block that runs until the next
// header or a blank line.
func parseTranstation(content string, opts Options) []rawEntry {
	fps := opts.frames(defaultFrameRate)

	var entries []rawEntry
	var current *rawEntry
	var textLines []string

	flush := func() {
		if current == nil {
			return
		}
		text := cleanMarkup(strings.TrimSpace(strings.Join(textLines, "\n")), opts)
		if text != "" {
			current.text = text
			entries = append(entries, *current)
		}
		current = nil
		textLines = nil
	}

	for _, line := range strings.Split(stripBOM(content), "\n") {
		line = strings.TrimSpace(line)

		if match := transtationHeaderPattern.FindStringSubmatch(line); match != nil {
			flush()
			start, okS := encoreTimecode(match[1], match[2], match[3], match[4], fps)
			end, okE := encoreTimecode(match[5], match[6], match[7], match[8], fps)
			if okS && okE && end >= start {
				current = &rawEntry{start: start, end: end}
			}
			continue
		}

		if line == "" {
			if len(textLines) > 0 {
				flush()
			}
			continue
		}
		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	return entries
}
