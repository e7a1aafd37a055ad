package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

var microDVDLinePattern = regexp.MustCompile(`^\{(\d+)\}\{(\d+)\}(.*)$`)

// declared in-file framerates outside this range are treated as caption
// text rather than a header
const (
	microDVDMinRate = 10
	microDVDMaxRate = 120
)

// parseMicroDVD reads "{start}{end}text" lines with frame-number times.
// A leading {0}{0} or {1}{1} line whose text is a bare number declares
// the framerate for every following line and is not itself a caption,
// taking precedence over the caller's rate. Pipes split caption rows.
func parseMicroDVD(content string, opts Options) []rawEntry {
	fps := opts.frames(defaultFrameRate)

	var entries []rawEntry
	for _, line := range strings.Split(stripBOM(content), "\n") {
		match := microDVDLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		startFrame, okS := atoi(match[1])
		endFrame, okE := atoi(match[2])
		if !okS || !okE {
			continue
		}
		body := match[3]

		if startFrame == endFrame && startFrame <= 1 {
			declared, err := strconv.ParseFloat(strings.TrimSpace(body), 64)
			if err == nil && declared >= microDVDMinRate && declared <= microDVDMaxRate {
				fps = declared
				continue
			}
		}
		if endFrame < startFrame {
			continue
		}

		text := cleanMarkup(strings.ReplaceAll(body, "|", "\n"), opts)
		entries = append(entries, rawEntry{
			start: framesToDuration(int64(startFrame), fps),
			end:   framesToDuration(int64(endFrame), fps),
			text:  strings.TrimSpace(text),
		})
	}

	return entries
}
