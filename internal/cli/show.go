package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/figconv"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show PATH",
		Short: "Read a figure and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fig, err := figconv.Read(path)
			if err != nil {
				return err
			}
			a.log.Debug("figure.read", "path", path, "name", fig.Name)
			return a.show(cmd, fig)
		},
	}
}
