package figconv

import (
	"fmt"
	"strconv"
	"strings"
)

const textLines = 3

func marshalText(fig Figure) ([]byte, error) {
	if strings.ContainsAny(fig.Name, "\r\n") {
		return nil, fmt.Errorf("%w: format %q cannot store a name containing a line break", ErrMalformedData, Text)
	}
	var b strings.Builder
	b.WriteString(fig.Name)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(fig.Width))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(fig.Height))
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func unmarshalText(data []byte) (Figure, error) {
	lines := splitLines(string(data))
	if len(lines) != textLines {
		return Figure{}, fmt.Errorf("%w: format %q needs %d lines, got %d", ErrMalformedData, Text, textLines, len(lines))
	}
	width, err := parseInt("width", lines[1])
	if err != nil {
		return Figure{}, err
	}
	height, err := parseInt("height", lines[2])
	if err != nil {
		return Figure{}, err
	}
	return Figure{Name: lines[0], Width: width, Height: height}, nil
}

// splitLines splits s on "\n", dropping a trailing "\r" from each line. A final
// newline terminates the last line rather than starting an empty one.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedData, field, s)
	}
	return n, nil
}
