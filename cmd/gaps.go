package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/docslice/internal/domain"
	m "github.com/mouse-blink/docslice/internal/model"
)

var gapsOutputFlag string

// gapsCmd represents the gaps command.
var gapsCmd = newGapsCmd()

func newGapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gaps SOURCE HEADER",
		Short: "Derive a gap table from the space between documented ranges",
		Long: `Derive a gap table listing the unclaimed lines between consecutive
documented function ranges. Feeding the table back through --gaps joins
the ranges on either side of each gap.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			source, header := parsePaths(args)

			return workflow.Gaps(domain.GapsArgs{
				Source: source,
				Header: header,
				Output: m.Path(gapsOutputFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&gapsOutputFlag, "output", "o", "", "write the gap table to this file instead of stdout")

	return cmd
}

func init() {
	rootCmd.AddCommand(gapsCmd)
}
