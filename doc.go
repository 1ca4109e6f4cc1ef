// Package figconv reads and writes a [Figure] (a named rectangle) stored as
// line-delimited text, JSON, or XML.
//
// The format is chosen from the file extension by [FormatOf]: ".txt" is
// [Text], ".json" is [JSON] and ".xml" is [XML]. Matching is exact, so ".TXT"
// is not recognized. The central entry points are [Read] and [Write]:
//
//	fig, err := figconv.Read("shape.txt")
//	if err != nil { ... }
//	err = figconv.Write("shape.txt", fig)
//
// [Marshal], [Unmarshal], [Encode] and [Decode] do the same work on bytes and
// streams when the format is already known, and [Convert] moves a figure from
// one file to another, changing format on the way.
//
// # Text
//
// Exactly three lines: name, width, height. Width and height are base-10
// integers. A name containing a line break cannot be written.
//
//	Square
//	10
//	10
//
// # JSON
//
// An object with the case-sensitive keys "Name", "Width" and "Height". Missing
// keys decode as zero values and unknown keys are ignored. Output is indented
// with two spaces.
//
// # XML
//
// A <Figure> element holding <Name>, <Width> and <Height> children in any
// order. Output carries the standard XML declaration.
//
// # Views
//
// A [View] renders a figure for people rather than for storage. [Plain] prints
// "Name: ..." lines, [Table] draws a bordered key/value table (see
// [BorderStyle]), [YAMLView] prints a YAML document and [GoTemplate] executes a
// text/template against the [Figure]:
//
//	figconv.Show(os.Stdout, figconv.GoTemplate("{{.Name}} {{.Width}}x{{.Height}}"), fig)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — extension or format name not recognized; no I/O
//     has happened
//   - [ErrIO] — the file could not be opened, read or written; the underlying
//     error is wrapped as well
//   - [ErrMalformedData] — content does not follow the format's rules
//   - [ErrUnsupportedView] — unknown view or border name
//   - [ErrInvalidTemplate] — invalid go-template syntax
package figconv
