package figconv

import (
	"fmt"
	"io"
	"strings"
)

// View is how a Figure is rendered for a person to read. Views are not file
// formats: nothing written by a View can be read back with [Read].
type View string

const (
	Plain    View = "plain"
	Table    View = "table"
	YAMLView View = "yaml"
)

const goTemplatePrefix = "go-template="

var views = []View{Plain, Table, YAMLView}

// String returns the view name.
func (v View) String() string { return string(v) }

// Views returns all static view names.
// GoTemplate is not included because it is parameterized.
func Views() []View {
	out := make([]View, len(views))
	copy(out, views)
	return out
}

// GoTemplate returns a View that renders the Figure with a Go text/template,
// followed by a newline.
func GoTemplate(tmpl string) View {
	return View(goTemplatePrefix + tmpl)
}

// ParseView parses a view name. Recognizes all static views and
// go-template=<tmpl> strings.
func ParseView(s string) (View, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return View(s), nil
	}
	for _, v := range views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedView, s)
}

// Viewer renders figures with a fixed View. Border only applies to [Table].
type Viewer struct {
	View   View
	Border BorderStyle
}

// Show renders fig to w with v and the default border.
func Show(w io.Writer, v View, fig Figure) error {
	return Viewer{View: v}.Show(w, fig)
}

// Show renders fig to w.
func (vw Viewer) Show(w io.Writer, fig Figure) error {
	switch vw.View {
	case Plain:
		return showPlain(w, fig)
	case Table:
		return showTable(w, fig, vw.Border)
	case YAMLView:
		return showYAML(w, fig)
	default:
		if tmpl, ok := strings.CutPrefix(string(vw.View), goTemplatePrefix); ok {
			return showGoTemplate(w, tmpl, fig)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedView, vw.View)
	}
}
