package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/docslice/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list SOURCE HEADER",
		Short: "List extraction candidates",
		Long: `List every function selected for extraction: header-declared functions
and the static helpers they reach, in source order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			source, header := parsePaths(args)

			return workflow.List(domain.ListArgs{
				Source: source,
				Header: header,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
