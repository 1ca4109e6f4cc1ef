package figconv

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonFigure fixes the key order of the encoded object.
type jsonFigure struct {
	Name   string `json:"Name"`
	Width  int    `json:"Width"`
	Height int    `json:"Height"`
}

func marshalJSON(fig Figure) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonFigure{Name: fig.Name, Width: fig.Width, Height: fig.Height}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshalJSON matches keys case-sensitively, which rules out decoding
// straight into a struct. Missing keys and null values keep the zero value.
func unmarshalJSON(data []byte) (Figure, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return Figure{}, fmt.Errorf("%w: format %q requires an object, got null", ErrMalformedData, JSON)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return Figure{}, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	var fig Figure
	if err := jsonField(obj, "Name", &fig.Name); err != nil {
		return Figure{}, err
	}
	if err := jsonField(obj, "Width", &fig.Width); err != nil {
		return Figure{}, err
	}
	if err := jsonField(obj, "Height", &fig.Height); err != nil {
		return Figure{}, err
	}
	return fig, nil
}

func jsonField(obj map[string]json.RawMessage, key string, dst any) error {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrMalformedData, key, err)
	}
	return nil
}
