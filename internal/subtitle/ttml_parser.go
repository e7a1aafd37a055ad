package subtitle

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ttmlClockPattern  = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2})(?:\.(\d{1,3})|:(\d+))?$`)
	ttmlOffsetPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(h|ms|m|s|f|t)$`)
)

// ttml ticks per second when a "t" offset unit is used
const ttmlTickRate = 10_000_000

// parseTTML walks the XML token stream and turns every <p> element into
// an entry. Times come from the begin/end/dur attributes in either clock
// form (HH:MM:SS.mmm or HH:MM:SS:FF) or offset form with a unit suffix.
// Entries missing both end and dur run for the default duration. Nested
// markup is flattened: <br/> becomes a newline, text nodes are joined
// with single spaces.
func parseTTML(content string, opts Options) []rawEntry {
	decoder := xml.NewDecoder(strings.NewReader(stripBOM(content)))
	decoder.Strict = false
	fps := opts.frames(defaultFrameRate)

	var entries []rawEntry
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		elem, ok := tok.(xml.StartElement)
		if !ok || !strings.EqualFold(elem.Name.Local, "p") {
			continue
		}

		var begin, end, dur string
		for _, attr := range elem.Attr {
			switch strings.ToLower(attr.Name.Local) {
			case "begin":
				begin = attr.Value
			case "end":
				end = attr.Value
			case "dur":
				dur = attr.Value
			}
		}

		text := flattenTTML(decoder)

		start, ok := ttmlTime(begin, fps)
		if !ok {
			continue
		}
		stop := start + defaultEntryDuration
		if d, ok := ttmlTime(end, fps); ok {
			stop = d
		} else if d, ok := ttmlTime(dur, fps); ok {
			stop = start + d
		}
		if stop < start {
			continue
		}

		entries = append(entries, rawEntry{start: start, end: stop, text: cleanMarkup(text, opts)})
	}

	return entries
}

// flattenTTML consumes tokens up to the close of the current element,
// concatenating character data.
func flattenTTML(decoder *xml.Decoder) string {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if strings.EqualFold(t.Name.Local, "br") {
				b.WriteString("\n")
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			piece := strings.TrimSpace(string(t))
			if piece == "" {
				continue
			}
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString(" ")
			}
			b.WriteString(piece)
		}
	}
	return b.String()
}

func ttmlTime(value string, fps float64) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if match := ttmlClockPattern.FindStringSubmatch(value); match != nil {
		h, okH := atoi(match[1])
		m, okM := atoi(match[2])
		s, okS := atoi(match[3])
		if !okH || !okM || !okS {
			return 0, false
		}
		d := clockDuration(h, m, s, 0)
		switch {
		case match[4] != "":
			frac, ok := millisPart(match[4])
			if !ok {
				return 0, false
			}
			d += frac
		case match[5] != "":
			frames, ok := atoi(match[5])
			if !ok {
				return 0, false
			}
			d += framesToDuration(int64(frames), fps)
		}
		return d, true
	}

	match := ttmlOffsetPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	switch match[2] {
	case "h":
		return time.Duration(amount * float64(time.Hour)), true
	case "m":
		return time.Duration(amount * float64(time.Minute)), true
	case "s":
		return time.Duration(amount * float64(time.Second)), true
	case "ms":
		return time.Duration(amount * float64(time.Millisecond)), true
	case "f":
		return time.Duration(amount / fps * float64(time.Second)), true
	case "t":
		return time.Duration(amount / ttmlTickRate * float64(time.Second)), true
	}
	return 0, false
}
