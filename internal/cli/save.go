package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/figconv"
)

func newSaveCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "save PATH",
		Short: "Read a figure, print it and write it back to the same file",
		Long: `Read the figure stored at PATH, print it, then rewrite PATH in the
format its extension selects. The file is replaced in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fig, err := figconv.Read(path)
			if err != nil {
				return err
			}
			a.log.Debug("figure.read", "path", path, "name", fig.Name)

			if !quiet {
				if err := a.show(cmd, fig); err != nil {
					return err
				}
			}

			if err := figconv.Write(path, fig); err != nil {
				return err
			}
			a.log.Info("figure.written", "path", path)
			cmd.PrintErrln("File saved.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the figure")
	return cmd
}
