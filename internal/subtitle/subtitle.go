// Package subtitle parses timed-text files in fifteen dialects into a
// canonical, time-ordered Track and answers playback-style queries over it.
//
// Every parser shares the same contract: consume normalized text (or raw
// bytes for EBU-STL), emit raw entries, skip malformed blocks instead of
// failing, and let the load pipeline sort, merge, and diagnose the result.
// Only a completely empty result is an error.
package subtitle

import (
	"time"
)

// represents single subtitle entry
type Entry struct {
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// Duration returns how long the entry stays on screen.
func (e Entry) Duration() time.Duration {
	return e.EndTime - e.StartTime
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT         Format = "srt"
	FormatVTT         Format = "vtt"
	FormatLRC         Format = "lrc"
	FormatSSA         Format = "ssa"
	FormatSBV         Format = "sbv"
	FormatTTML        Format = "ttml"
	FormatSCC         Format = "scc"
	FormatMicroDVD    Format = "microdvd"
	FormatSAMI        Format = "sami"
	FormatSTL         Format = "stl"
	FormatTTXT        Format = "ttxt"
	FormatMPL2        Format = "mpl2"
	FormatTMPlayer    Format = "tmplayer"
	FormatEncore      Format = "encore"
	FormatTranstation Format = "transtation"
)

// Options controls parsing for all formats. The zero value of FrameRate
// selects each frame-based format's conventional rate (29.97 for SCC, 25
// for MicroDVD, Encore and Transtation); a positive value overrides it
// everywhere. KeepHTML/KeepASS retain markup that is stripped by default.
type Options struct {
	FrameRate        float64
	KeepHTML         bool
	KeepASS          bool
	MergeTolerance   time.Duration
	OverlapTolerance time.Duration
}

func DefaultOptions() Options {
	return Options{
		MergeTolerance:   defaultMergeTolerance,
		OverlapTolerance: defaultOverlapTolerance,
	}
}

// frames selects the effective framerate for a frame-based format.
func (o Options) frames(formatDefault float64) float64 {
	if o.FrameRate > 0 {
		return o.FrameRate
	}
	return formatDefault
}

// withDefaults fills zero tolerances so a literal Options{} behaves like
// DefaultOptions.
func (o Options) withDefaults() Options {
	if o.MergeTolerance <= 0 {
		o.MergeTolerance = defaultMergeTolerance
	}
	if o.OverlapTolerance <= 0 {
		o.OverlapTolerance = defaultOverlapTolerance
	}
	return o
}

const (
	defaultMergeTolerance   = time.Millisecond
	defaultOverlapTolerance = 50 * time.Millisecond

	// display time granted to entries whose format leaves the final
	// end time open (LRC, TMPlayer, SAMI, TTXT, SCC)
	defaultTailDuration = 3 * time.Second

	// display time for TTML paragraphs carrying neither end nor dur
	defaultEntryDuration = 3 * time.Second

	defaultFrameRate    = 25.0
	defaultSCCFrameRate = 29.97
)

// rawEntry is what a format parser emits before post-processing. An end of
// endUnresolved is filled in later from the next entry's start time.
type rawEntry struct {
	start time.Duration
	end   time.Duration
	text  string
}

const endUnresolved = time.Duration(-1)

// formatSpec describes one dialect in the dispatch table.
type formatSpec struct {
	parse      func(content string, opts Options) []rawEntry
	parseBytes func(data []byte, opts Options) []rawEntry
	binary     bool
	frameBased bool
}

var formatTable = map[Format]formatSpec{
	FormatSRT:         {parse: parseSRT},
	FormatVTT:         {parse: parseVTT},
	FormatLRC:         {parse: parseLRC},
	FormatSSA:         {parse: parseSSA},
	FormatSBV:         {parse: parseSBV},
	FormatTTML:        {parse: parseTTML},
	FormatSCC:         {parse: parseSCC, frameBased: true},
	FormatMicroDVD:    {parse: parseMicroDVD, frameBased: true},
	FormatSAMI:        {parse: parseSAMI},
	FormatSTL:         {parseBytes: parseSTL, binary: true},
	FormatTTXT:        {parse: parseTTXT},
	FormatMPL2:        {parse: parseMPL2},
	FormatTMPlayer:    {parse: parseTMPlayer},
	FormatEncore:      {parse: parseEncore, frameBased: true},
	FormatTranstation: {parse: parseTranstation, frameBased: true},
}

var extensionTable = map[string]Format{
	"srt":         FormatSRT,
	"vtt":         FormatVTT,
	"lrc":         FormatLRC,
	"ssa":         FormatSSA,
	"ass":         FormatSSA,
	"sbv":         FormatSBV,
	"ttml":        FormatTTML,
	"dfxp":        FormatTTML,
	"scc":         FormatSCC,
	"sub":         FormatMicroDVD,
	"smi":         FormatSAMI,
	"sami":        FormatSAMI,
	"stl":         FormatSTL,
	"ttxt":        FormatTTXT,
	"mpl":         FormatMPL2,
	"tmp":         FormatTMPlayer,
	"encore":      FormatEncore,
	"transtation": FormatTranstation,
}

// FormatForExtension maps a file extension (with or without the leading
// dot, any case) to its format. Canonical format names such as
// "microdvd" are accepted alongside extensions.
func FormatForExtension(ext string) (Format, bool) {
	e := normalizeExtension(ext)
	if f, ok := extensionTable[e]; ok {
		return f, true
	}
	if _, ok := formatTable[Format(e)]; ok {
		return Format(e), true
	}
	return "", false
}

// Extensions returns every recognized file extension, one per dialect
// alias, in no particular order.
func Extensions() []string {
	exts := make([]string, 0, len(extensionTable))
	for ext := range extensionTable {
		exts = append(exts, ext)
	}
	return exts
}

// Binary reports whether the format must be parsed from raw bytes.
func (f Format) Binary() bool {
	return formatTable[f].binary
}

// FrameBased reports whether the format needs a framerate to convert
// timecodes to seconds.
func (f Format) FrameBased() bool {
	return formatTable[f].frameBased
}
