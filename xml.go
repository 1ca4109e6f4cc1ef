package figconv

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const xmlRoot = "Figure"

func marshalXML(fig Figure) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	fields := []struct{ name, value string }{
		{"Name", fig.Name},
		{"Width", strconv.Itoa(fig.Width)},
		{"Height", strconv.Itoa(fig.Height)},
	}
	for _, field := range fields {
		if err := writeXMLElement(enc, field.name, field.value); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeXMLElement(enc *xml.Encoder, name, value string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(value)); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// unmarshalXML reads the root element's children in any order. Unknown
// children are skipped; missing ones keep the zero value.
func unmarshalXML(data []byte) (Figure, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	root, err := xmlRootElement(dec)
	if err != nil {
		return Figure{}, err
	}
	if root.Name.Local != xmlRoot {
		return Figure{}, fmt.Errorf("%w: format %q expects root element <%s>, got <%s>", ErrMalformedData, XML, xmlRoot, root.Name.Local)
	}

	var fig Figure
	for {
		tok, err := dec.Token()
		if err != nil {
			return Figure{}, xmlSyntaxError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var text string
			if err := dec.DecodeElement(&text, &t); err != nil {
				return Figure{}, xmlSyntaxError(err)
			}
			if err := setXMLField(&fig, t.Name.Local, text); err != nil {
				return Figure{}, err
			}
		case xml.EndElement:
			return fig, nil
		}
	}
}

func xmlRootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, xmlSyntaxError(err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func setXMLField(fig *Figure, name, text string) error {
	var err error
	switch name {
	case "Name":
		fig.Name = text
	case "Width":
		fig.Width, err = parseInt("width", text)
	case "Height":
		fig.Height, err = parseInt("height", text)
	}
	return err
}

func xmlSyntaxError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: format %q: unexpected end of document", ErrMalformedData, XML)
	}
	return fmt.Errorf("%w: %w", ErrMalformedData, err)
}
