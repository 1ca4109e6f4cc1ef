package figconv

import (
	"io"

	"gopkg.in/yaml.v3"
)

type yamlFigure struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func showYAML(w io.Writer, fig Figure) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlFigure{Name: fig.Name, Width: fig.Width, Height: fig.Height}); err != nil {
		return err
	}
	return enc.Close()
}
