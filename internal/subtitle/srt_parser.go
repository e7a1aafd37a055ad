package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var (
	srtTimestampPattern = regexp.MustCompile(
		`(\d+):(\d{1,2}):(\d{1,2})[,.](\d{1,3})\s*-->\s*(\d+):(\d{1,2}):(\d{1,2})[,.](\d{1,3})`,
	)
	blockSplitPattern = regexp.MustCompile(`\n\s*\n`)
)

// parseSRT reads SubRip blocks: an optional numeric index line, a
// "H:MM:SS,mmm --> H:MM:SS,mmm" line (comma or dot before the millis),
// then text lines until a blank line. Malformed blocks are skipped.
func parseSRT(content string, opts Options) []rawEntry {
	var entries []rawEntry

	for _, block := range splitBlocks(content) {
		lines := strings.Split(block, "\n")

		tsLine := -1
		var match []string
		for i, line := range lines {
			if match = srtTimestampPattern.FindStringSubmatch(line); match != nil {
				tsLine = i
				break
			}
		}
		if tsLine == -1 || tsLine > 1 {
			continue
		}

		start, ok := srtTimestamp(match[1], match[2], match[3], match[4])
		if !ok {
			continue
		}
		end, ok := srtTimestamp(match[5], match[6], match[7], match[8])
		if !ok || end < start {
			continue
		}

		text := cleanMarkup(strings.Join(lines[tsLine+1:], "\n"), opts)
		entries = append(entries, rawEntry{start: start, end: end, text: strings.TrimSpace(text)})
	}

	return entries
}

func srtTimestamp(hours, minutes, seconds, millis string) (time.Duration, bool) {
	h, okH := atoi(hours)
	m, okM := atoi(minutes)
	s, okS := atoi(seconds)
	frac, okF := millisPart(millis)
	if !okH || !okM || !okS || !okF {
		return 0, false
	}
	return clockDuration(h, m, s, frac), true
}

// splitBlocks cuts normalized text into blank-line separated blocks.
func splitBlocks(content string) []string {
	content = strings.TrimSpace(stripBOM(content))
	if content == "" {
		return nil
	}
	var blocks []string
	for _, block := range blockSplitPattern.Split(content, -1) {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
