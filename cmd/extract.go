package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/docslice/internal/domain"
	m "github.com/mouse-blink/docslice/internal/model"
)

var extractNamesFlag bool
var extractGapsFlag string
var extractKindsFlag bool

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract SOURCE HEADER",
		Short: "Print sed directives for documented function ranges",
		Long: `Print one sed print directive per merged line range. This is the same
operation the bare root command performs, plus a node kind histogram
for inspecting how the source was parsed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			source, header := parsePaths(args)

			return workflow.Extract(domain.ExtractArgs{
				Source: source,
				Header: header,
				Gaps:   m.Path(extractGapsFlag),
				Names:  extractNamesFlag,
				Kinds:  extractKindsFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&extractNamesFlag, "names", "n", false, "print function names with raw line ranges instead of sed directives")
	cmd.Flags().StringVarP(&extractGapsFlag, "gaps", "g", "", "bridge adjacent ranges across gaps listed in this file")
	cmd.Flags().BoolVarP(&extractKindsFlag, "kinds", "k", false, "print a histogram of syntax node kinds instead of directives")

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
