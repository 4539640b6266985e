package cmd

import (
	"github.com/mouse-blink/docslice/internal/domain"
	m "github.com/mouse-blink/docslice/internal/model"
	"github.com/spf13/cobra"
)

var viewGapsFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view SOURCE HEADER",
		Short: "View merged slices and the functions they cover",
		Long:  "View the merged output ranges together with the documented functions each range covers.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			source, header := parsePaths(args)

			return workflow.View(domain.ViewArgs{
				Source: source,
				Header: header,
				Gaps:   m.Path(viewGapsFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&viewGapsFlag, "gaps", "g", "", "bridge adjacent ranges across gaps listed in this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
