package subtitle

import (
	"strings"
)

// EBU tech 3264: a 1024-byte General Subtitle Information block followed
// by 128-byte Text and Timing Information blocks.
const (
	stlGSISize = 1024
	stlTTISize = 128

	stlLastBlock   = 0xFF // EBN value for the only/last block of a subtitle
	stlNewline     = 0x8A
	stlTerminator  = 0x8F
	stlControlLow  = 0x80
	stlControlHigh = 0x9F
)

// parseSTL decodes binary EBU-STL. The framerate comes from the disk
// format code in the GSI header ("STL25.01", "STL30.01"); the caller's
// rate is ignored. Only whole subtitles are kept: continuation blocks,
// comment blocks, and blocks whose out-code does not follow their
// in-code are dropped.
func parseSTL(data []byte, opts Options) []rawEntry {
	if len(data) < stlGSISize+stlTTISize {
		return nil
	}
	gsi := data[:stlGSISize]
	if string(gsi[3:6]) != "STL" {
		return nil
	}

	fps := defaultFrameRate
	if n, ok := atoi(string(gsi[6:8])); ok && n > 0 {
		fps = float64(n)
	}

	var entries []rawEntry
	for off := stlGSISize; off+stlTTISize <= len(data); off += stlTTISize {
		tti := data[off : off+stlTTISize]
		if tti[3] != stlLastBlock {
			continue
		}
		if tti[15] != 0 {
			continue
		}

		start := timecodeDuration(int(tti[5]), int(tti[6]), int(tti[7]), int(tti[8]), fps)
		end := timecodeDuration(int(tti[9]), int(tti[10]), int(tti[11]), int(tti[12]), fps)
		if end <= start {
			continue
		}

		text := decodeSTLText(tti[16:])
		if text == "" {
			continue
		}
		entries = append(entries, rawEntry{start: start, end: end, text: text})
	}

	return entries
}

// decodeSTLText reads a TTI text field: 0x8F terminates, 0x8A breaks a
// row, the remaining control range carries formatting and is dropped.
func decodeSTLText(field []byte) string {
	var buf []byte
	for _, c := range field {
		switch {
		case c == stlTerminator:
			return strings.TrimSpace(string(buf))
		case c == stlNewline:
			buf = append(buf, '\n')
		case c >= stlControlLow && c <= stlControlHigh:
		case c < 0x20:
		default:
			buf = append(buf, c)
		}
	}
	return strings.TrimSpace(string(buf))
}
