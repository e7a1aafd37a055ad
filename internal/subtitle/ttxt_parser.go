package subtitle

import (
	"encoding/xml"
	"regexp"
	"strings"
	"time"
)

var ttxtClockPattern = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2})(?:\.(\d{1,3}))?$`)

const ttxtDefaultTimeScale = 1000

// parseTTXT reads GPAC timed text. Every <TextSample> carries a
// sampleTime, either as a clock string or as raw units over the stream's
// declared timeScale. A sample shows until the next sample fires, so
// empty samples terminate the previous caption and are dropped. Text
// lives in a text attribute or in the element body.
func parseTTXT(content string, opts Options) []rawEntry {
	decoder := xml.NewDecoder(strings.NewReader(stripBOM(content)))
	decoder.Strict = false
	timeScale := float64(ttxtDefaultTimeScale)

	type sample struct {
		at   time.Duration
		text string
	}
	var samples []sample

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		elem, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !strings.EqualFold(elem.Name.Local, "TextSample") {
			for _, attr := range elem.Attr {
				if strings.EqualFold(attr.Name.Local, "timeScale") {
					if n, ok := atoi(attr.Value); ok && n > 0 {
						timeScale = float64(n)
					}
				}
			}
			continue
		}

		var sampleTime, attrText string
		hasAttrText := false
		for _, attr := range elem.Attr {
			switch strings.ToLower(attr.Name.Local) {
			case "sampletime":
				sampleTime = attr.Value
			case "text":
				attrText = attr.Value
				hasAttrText = true
			}
		}

		text := flattenTTML(decoder)
		if hasAttrText {
			text = attrText
		}
		at, ok := ttxtTime(sampleTime, timeScale)
		if !ok {
			continue
		}

		// carriage returns from &#xD; attribute escapes become rows
		text = normalizeNewlines(decodeEntities(text))
		text = strings.TrimSpace(cleanMarkup(text, opts))
		samples = append(samples, sample{at: at, text: text})
	}

	var entries []rawEntry
	for i, s := range samples {
		if s.text == "" {
			continue
		}
		end := endUnresolved
		if i+1 < len(samples) {
			end = samples[i+1].at
		}
		entries = append(entries, rawEntry{start: s.at, end: end, text: s.text})
	}

	return entries
}

func ttxtTime(value string, timeScale float64) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if match := ttxtClockPattern.FindStringSubmatch(value); match != nil {
		h, okH := atoi(match[1])
		m, okM := atoi(match[2])
		s, okS := atoi(match[3])
		if !okH || !okM || !okS {
			return 0, false
		}
		var frac time.Duration
		if match[4] != "" {
			var ok bool
			if frac, ok = millisPart(match[4]); !ok {
				return 0, false
			}
		}
		return clockDuration(h, m, s, frac), true
	}

	if n, ok := atoi(value); ok && n >= 0 {
		return time.Duration(float64(n) / timeScale * float64(time.Second)), true
	}
	return 0, false
}
