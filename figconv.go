package figconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrIO                = errors.New("i/o error")
	ErrMalformedData     = errors.New("malformed data")
	ErrUnsupportedView   = errors.New("unsupported view")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Figure is a named rectangle.
type Figure struct {
	Name   string
	Width  int
	Height int
}

// Format is a file format a Figure can be stored in.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	XML  Format = "xml"
)

var formats = []Format{Text, JSON, XML}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Extension returns the file extension, including the leading dot, that
// selects f. It returns "" for an unknown format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case JSON:
		return ".json"
	case XML:
		return ".xml"
	default:
		return ""
	}
}

// Formats returns all supported formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name such as "json".
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatOf returns the format selected by the extension of path. The match is
// exact and case-sensitive: ".txt", ".json" and ".xml" are recognized, anything
// else (".TXT", ".csv", no extension) is [ErrUnsupportedFormat].
func FormatOf(path string) (Format, error) {
	ext := filepath.Ext(path)
	for _, f := range formats {
		if f.Extension() == ext {
			return f, nil
		}
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}

// Marshal encodes fig in format f.
func Marshal(f Format, fig Figure) ([]byte, error) {
	switch f {
	case Text:
		return marshalText(fig)
	case JSON:
		return marshalJSON(fig)
	case XML:
		return marshalXML(fig)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Unmarshal decodes a Figure stored in format f.
func Unmarshal(f Format, data []byte) (Figure, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	switch f {
	case Text:
		return unmarshalText(data)
	case JSON:
		return unmarshalJSON(data)
	case XML:
		return unmarshalXML(data)
	default:
		return Figure{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Encode writes fig to w in format f. Nothing is written if fig cannot be
// encoded.
func Encode(w io.Writer, f Format, fig Figure) error {
	data, err := Marshal(f, fig)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Decode reads all of r and decodes it as format f.
func Decode(r io.Reader, f Format) (Figure, error) {
	if _, err := ParseFormat(string(f)); err != nil {
		return Figure{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Figure{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Unmarshal(f, data)
}

// Read loads the Figure stored at path, in the format its extension selects.
// The extension is checked before the file is opened.
func Read(path string) (Figure, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Figure{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Figure{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer file.Close()

	fig, err := Decode(file, f)
	if err != nil {
		return Figure{}, fmt.Errorf("read %s: %w", path, err)
	}
	return fig, nil
}

// Write replaces the contents of path with fig, in the format its extension
// selects. The file is created if needed and truncated otherwise; there is no
// rollback if the write fails partway.
func Write(path string, fig Figure) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(f, fig)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Convert reads the Figure at src and writes it to dst. Each path is stored in
// the format its own extension selects, so Convert("a.txt", "a.json") turns a
// text file into JSON. Both extensions are checked before any I/O.
func Convert(src, dst string) (Figure, error) {
	if _, err := FormatOf(src); err != nil {
		return Figure{}, err
	}
	if _, err := FormatOf(dst); err != nil {
		return Figure{}, err
	}
	fig, err := Read(src)
	if err != nil {
		return Figure{}, err
	}
	if err := Write(dst, fig); err != nil {
		return Figure{}, err
	}
	return fig, nil
}
