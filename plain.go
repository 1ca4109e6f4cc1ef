package figconv

import (
	"fmt"
	"io"
)

func showPlain(w io.Writer, fig Figure) error {
	_, err := fmt.Fprintf(w, "Name: %s\nWidth: %d\nHeight: %d\n", fig.Name, fig.Width, fig.Height)
	return err
}
