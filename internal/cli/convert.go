package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/figconv"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Copy a figure to another file, changing format by extension",
		Example: `  figconv convert shape.txt shape.json
  figconv convert shape.json shape.xml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			fig, err := figconv.Convert(src, dst)
			if err != nil {
				return err
			}
			a.log.Info("figure.written", "src", src, "dst", dst)
			return a.show(cmd, fig)
		},
	}
}
