package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var ssaTimestampPattern = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2})[.:](\d{1,2})$`)

// standard ASS event field order, used when no Format line precedes the
// dialogue: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV,
// Effect, Text.
const (
	ssaDefaultFields     = 10
	ssaDefaultStartIndex = 1
	ssaDefaultEndIndex   = 2
	ssaDefaultTextIndex  = 9
)

// parseSSA reads Dialogue lines from the [Events] section of a SubStation
// Alpha script. A Format line remaps the field positions; the text field
// is always last and may contain commas, so only the preceding fields are
// split on.
func parseSSA(content string, opts Options) []rawEntry {
	var entries []rawEntry

	inEvents := false
	fieldCount := ssaDefaultFields
	startIndex := ssaDefaultStartIndex
	endIndex := ssaDefaultEndIndex
	textIndex := ssaDefaultTextIndex

	for _, line := range strings.Split(stripBOM(content), "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "[") {
			inEvents = strings.EqualFold(line, "[events]")
			continue
		}
		if !inEvents {
			continue
		}

		if rest, ok := cutPrefixFold(line, "format:"); ok {
			fields := strings.Split(rest, ",")
			fieldCount = len(fields)
			for i, field := range fields {
				switch strings.ToLower(strings.TrimSpace(field)) {
				case "start":
					startIndex = i
				case "end":
					endIndex = i
				case "text":
					textIndex = i
				}
			}
			continue
		}

		rest, ok := cutPrefixFold(line, "dialogue:")
		if !ok {
			continue
		}

		fields := strings.SplitN(rest, ",", fieldCount)
		if len(fields) <= startIndex || len(fields) <= endIndex || len(fields) <= textIndex {
			continue
		}

		start, okS := ssaTimestamp(strings.TrimSpace(fields[startIndex]))
		end, okE := ssaTimestamp(strings.TrimSpace(fields[endIndex]))
		if !okS || !okE || end < start {
			continue
		}

		text := cleanMarkup(strings.TrimSpace(fields[textIndex]), opts)
		entries = append(entries, rawEntry{start: start, end: end, text: text})
	}

	return entries
}

func ssaTimestamp(value string) (time.Duration, bool) {
	match := ssaTimestampPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	h, okH := atoi(match[1])
	m, okM := atoi(match[2])
	s, okS := atoi(match[3])
	cs, okC := atoi(match[4])
	if !okH || !okM || !okS || !okC {
		return 0, false
	}
	if len(match[4]) == 1 {
		cs *= 10
	}
	return clockDuration(h, m, s, time.Duration(cs)*10*time.Millisecond), true
}

// cutPrefixFold is strings.CutPrefix with ASCII case folding on the prefix.
func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
