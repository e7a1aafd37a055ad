package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var mpl2LinePattern = regexp.MustCompile(`^\[(\d+)\]\[(\d+)\](.*)$`)

// parseMPL2 reads "[start][end]text" lines where both fields count
// tenths of a second. Pipes split caption rows.
func parseMPL2(content string, opts Options) []rawEntry {
	var entries []rawEntry

	for _, line := range strings.Split(stripBOM(content), "\n") {
		match := mpl2LinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		startDeci, okS := atoi(match[1])
		endDeci, okE := atoi(match[2])
		if !okS || !okE || endDeci < startDeci {
			continue
		}

		text := cleanMarkup(strings.ReplaceAll(match[3], "|", "\n"), opts)
		entries = append(entries, rawEntry{
			start: time.Duration(startDeci) * 100 * time.Millisecond,
			end:   time.Duration(endDeci) * 100 * time.Millisecond,
			text:  strings.TrimSpace(text),
		})
	}

	return entries
}
