package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/figconv"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported file formats and their extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range figconv.Formats() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-5s %s\n", f, f.Extension()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
