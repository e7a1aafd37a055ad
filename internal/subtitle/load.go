package subtitle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for the load and parse entry points. Wrapped errors
// carry detail; match with errors.Is.
var (
	ErrFileOpen          = errors.New("cannot open subtitle file")
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")
	ErrInvalidData       = errors.New("invalid subtitle data")
	ErrParse             = errors.New("no usable subtitle entries")
)

// LoadFile reads and parses a subtitle file, picking the format from the
// file extension. EBU-STL is read as raw bytes; every other format is
// read as text, with UTF-16 input converted by its byte-order mark.
func LoadFile(path string, opts Options) (*Track, error) {
	format, ok := FormatForExtension(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}

	if format.Binary() {
		return runParser(format, "", data, opts)
	}
	return runParser(format, decodeText(data), nil, opts)
}

// ParseString parses textual subtitle content with the format chosen by
// extension or format name. Binary formats must go through ParseBytes.
func ParseString(content, extension string, opts Options) (*Track, error) {
	format, ok := FormatForExtension(extension)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, extension)
	}
	if format.Binary() {
		return nil, fmt.Errorf("%w: %s is a binary format, parse it from bytes", ErrInvalidData, format)
	}
	return runParser(format, content, nil, opts)
}

// ParseBytes parses subtitle content from raw bytes. Textual formats are
// decoded first, so this is the entry point that handles every format.
func ParseBytes(data []byte, extension string, opts Options) (*Track, error) {
	format, ok := FormatForExtension(extension)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, extension)
	}
	if format.Binary() {
		return runParser(format, "", data, opts)
	}
	return runParser(format, decodeText(data), nil, opts)
}

func runParser(format Format, content string, data []byte, opts Options) (*Track, error) {
	opts = opts.withDefaults()
	spec := formatTable[format]

	var raw []rawEntry
	if spec.binary {
		raw = spec.parseBytes(data, opts)
	} else {
		raw = spec.parse(stripBOM(normalizeNewlines(content)), opts)
	}

	entries := finishEntries(raw, opts)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w (format %s)", ErrParse, format)
	}
	return newTrack(entries, format, opts), nil
}

// decodeText turns file bytes into a string, converting UTF-16 input
// recognized by its byte-order mark.
func decodeText(data []byte) string {
	if len(data) >= 2 && (data[0] == 0xFF && data[1] == 0xFE || data[0] == 0xFE && data[1] == 0xFF) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, _, err := transform.Bytes(decoder, data); err == nil {
			return string(out)
		}
	}
	return string(data)
}
