package figconv

import (
	"fmt"
	"io"
	"text/template"
)

func showGoTemplate(w io.Writer, tmplStr string, fig Figure) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	if err := tmpl.Execute(w, fig); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
