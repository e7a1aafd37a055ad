package subtitle

import (
	"regexp"
	"strings"
	"time"
)

var (
	samiSyncPattern  = regexp.MustCompile(`(?i)<sync[^>]*?start\s*=\s*"?(\d+)"?[^>]*>`)
	samiBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
	samiBodyEnd      = regexp.MustCompile(`(?i)</body>`)
)

// parseSAMI slices the document at <SYNC Start=ms> markers. Each region
// shows until the next sync fires, so a region holding only &nbsp; is
// the conventional way to clear the screen: its start time ends the
// previous caption and the region itself is dropped. Markup inside a
// region is structural (<P> wrappers, <br> rows) and is always removed.
func parseSAMI(content string, opts Options) []rawEntry {
	matches := samiSyncPattern.FindAllStringSubmatchIndex(content, -1)

	type syncPoint struct {
		start time.Duration
		text  string
	}
	var syncs []syncPoint
	for i, m := range matches {
		ms, ok := atoi(content[m[2]:m[3]])
		if !ok {
			continue
		}
		regionEnd := len(content)
		if i+1 < len(matches) {
			regionEnd = matches[i+1][0]
		}
		region := content[m[1]:regionEnd]
		if loc := samiBodyEnd.FindStringIndex(region); loc != nil {
			region = region[:loc[0]]
		}

		text := samiBreakPattern.ReplaceAllString(region, "\n")
		text = stripHTMLTags(text)
		text = strings.TrimSpace(decodeEntities(text))
		syncs = append(syncs, syncPoint{start: time.Duration(ms) * time.Millisecond, text: text})
	}

	var entries []rawEntry
	for i, sync := range syncs {
		if sync.text == "" {
			continue
		}
		end := sync.start + defaultEntryDuration
		if i+1 < len(syncs) {
			end = syncs[i+1].start
		}
		entries = append(entries, rawEntry{start: sync.start, end: end, text: sync.text})
	}

	return entries
}
