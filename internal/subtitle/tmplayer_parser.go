package subtitle

import (
	"regexp"
	"strings"
)

var tmplayerLinePattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})[:=](.*)$`)

// parseTMPlayer reads "HH:MM:SS:text" lines (an equals sign also
// separates). Times are whole seconds; a caption shows until the next
// one starts, so ends stay unresolved. Lines without a leading timecode
// continue the previous caption on a new row.
func parseTMPlayer(content string, opts Options) []rawEntry {
	var entries []rawEntry

	for _, line := range strings.Split(stripBOM(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		match := tmplayerLinePattern.FindStringSubmatch(line)
		if match == nil {
			if len(entries) > 0 {
				entries[len(entries)-1].text += "\n" + cleanMarkup(line, opts)
			}
			continue
		}

		h, okH := atoi(match[1])
		m, okM := atoi(match[2])
		s, okS := atoi(match[3])
		if !okH || !okM || !okS {
			continue
		}

		entries = append(entries, rawEntry{
			start: clockDuration(h, m, s, 0),
			end:   endUnresolved,
			text:  cleanMarkup(strings.TrimSpace(match[4]), opts),
		})
	}

	return entries
}
