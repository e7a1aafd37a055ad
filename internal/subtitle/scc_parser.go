package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

var sccTimecodePattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})[:;](\d{1,2})$`)

// CEA-608 control pairs that mark a break between caption rows. All
// other control pairs only steer the decoder and carry no text.
const (
	sccRowBreakA = 0x1450
	sccRowBreakB = 0x1470
)

// cea608Chars maps the handful of basic-charset codes that differ from
// ASCII. Codes below 0x20 are null padding.
var cea608Chars = map[byte]rune{
	0x2A: 'á',
	0x5C: 'é',
	0x5E: 'í',
	0x5F: 'ó',
	0x60: 'ú',
	0x7B: 'ç',
	0x7C: '÷',
	0x7D: 'Ñ',
	0x7E: 'ñ',
	0x7F: '█',
}

// parseSCC reads Scenarist closed-caption lines: an HH:MM:SS:FF timecode
// followed by hex byte pairs. Each pair is decoded after stripping the
// odd-parity bit from both bytes; pairs whose first byte lands in
// 0x10..0x1F are control codes and produce no text, except the row-break
// codes which become newlines. Captions end when the next caption
// starts, so ends stay unresolved here. Lines that decode to nothing,
// like erase-display commands, are dropped.
func parseSCC(content string, opts Options) []rawEntry {
	fps := opts.frames(defaultSCCFrameRate)

	var entries []rawEntry
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 {
			continue
		}
		match := sccTimecodePattern.FindStringSubmatch(fields[0])
		if match == nil {
			continue
		}

		h, okH := atoi(match[1])
		m, okM := atoi(match[2])
		s, okS := atoi(match[3])
		f, okF := atoi(match[4])
		if !okH || !okM || !okS || !okF {
			continue
		}

		text := decodeCEA608(fields[1:])
		if text == "" {
			continue
		}

		entries = append(entries, rawEntry{
			start: timecodeDuration(h, m, s, f, fps),
			end:   endUnresolved,
			text:  text,
		})
	}

	return entries
}

func decodeCEA608(pairs []string) string {
	var b strings.Builder
	var prevControl uint16
	prevWasControl := false

	for _, pair := range pairs {
		if len(pair) != 4 {
			continue
		}
		value, err := strconv.ParseUint(pair, 16, 16)
		if err != nil {
			continue
		}
		hi := byte(value>>8) & 0x7F
		lo := byte(value) & 0x7F

		if hi >= 0x10 && hi <= 0x1F {
			code := uint16(hi)<<8 | uint16(lo)
			// control codes are transmitted twice; the echo is dropped
			if prevWasControl && code == prevControl {
				prevWasControl = false
				continue
			}
			prevControl = code
			prevWasControl = true
			if code == sccRowBreakA || code == sccRowBreakB {
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteString("\n")
				}
			}
			continue
		}
		prevWasControl = false

		for _, c := range [2]byte{hi, lo} {
			if c < 0x20 {
				continue
			}
			if r, ok := cea608Chars[c]; ok {
				b.WriteRune(r)
				continue
			}
			b.WriteByte(c)
		}
	}

	return strings.TrimSpace(b.String())
}
