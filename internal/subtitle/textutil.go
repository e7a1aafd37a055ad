package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	htmlTagPattern     = regexp.MustCompile(`<[^<>]*>`)
	assOverridePattern = regexp.MustCompile(`\{[^{}]*\}`)
	entityPattern      = regexp.MustCompile(`&(#[xX]?[0-9a-fA-F]+|[a-zA-Z]+[0-9]*);`)
)

// named entities the formats actually use; unknown names are left alone
var namedEntities = map[string]string{
	"amp":   "&",
	"lt":    "<",
	"gt":    ">",
	"quot":  `"`,
	"apos":  "'",
	"nbsp":  " ",
	"copy":  "©",
	"reg":   "®",
	"trade": "™",
}

// normalizeNewlines converts CRLF and bare CR line endings to LF. It runs
// once on every textual input before a parser tokenizes it.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// stripBOM drops a leading UTF-8 byte order mark.
func stripBOM(text string) string {
	return strings.TrimPrefix(text, "\uFEFF")
}

// decodeEntities resolves named, decimal and hex character references.
// Numeric references outside the valid code point range are kept verbatim.
func decodeEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}
	return entityPattern.ReplaceAllStringFunc(text, func(ref string) string {
		body := ref[1 : len(ref)-1]
		if repl, ok := namedEntities[body]; ok {
			return repl
		}
		if !strings.HasPrefix(body, "#") {
			return ref
		}
		digits := body[1:]
		base := 10
		if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
			digits = digits[1:]
			base = 16
		}
		code, err := strconv.ParseInt(digits, base, 32)
		if err != nil || code < 1 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
			return ref
		}
		return string(rune(code))
	})
}

// stripHTMLTags removes <...> tags, non-greedy, keeping inner text.
func stripHTMLTags(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	return htmlTagPattern.ReplaceAllString(text, "")
}

// stripASSTags removes {...} override blocks and resolves the SSA escape
// sequences \N and \n to newlines and \h to a space.
func stripASSTags(text string) string {
	if strings.Contains(text, "{") {
		text = assOverridePattern.ReplaceAllString(text, "")
	}
	text = strings.ReplaceAll(text, `\N`, "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	return strings.ReplaceAll(text, `\h`, " ")
}

// cleanMarkup applies the option-controlled tag stripping shared by the
// text formats. Order matters for builds like <i>{\i1}text{\i0}</i>.
func cleanMarkup(text string, opts Options) string {
	if !opts.KeepHTML {
		text = stripHTMLTags(text)
	}
	if !opts.KeepASS {
		text = stripASSTags(text)
	}
	return text
}

// clockDuration assembles hours/minutes/seconds plus a sub-second part.
func clockDuration(h, m, s int, frac time.Duration) time.Duration {
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		frac
}

// millisPart interprets a fractional-seconds field of one to three digits:
// "5" is 500ms, "50" is 500ms, "500" is 500ms.
func millisPart(digits string) (time.Duration, bool) {
	if len(digits) == 0 || len(digits) > 3 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	for i := len(digits); i < 3; i++ {
		n *= 10
	}
	return time.Duration(n) * time.Millisecond, true
}

// framesToDuration converts a frame count at the given rate to a duration.
func framesToDuration(frames int64, fps float64) time.Duration {
	return time.Duration(float64(frames) / fps * float64(time.Second))
}

// timecodeDuration converts HH:MM:SS:FF-style fields at the given rate.
func timecodeDuration(h, m, s, f int, fps float64) time.Duration {
	return clockDuration(h, m, s, time.Duration(float64(f)/fps*float64(time.Second)))
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
