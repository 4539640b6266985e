// Package cmd provides the root command and CLI setup for docslice.
package cmd

import (
	"os"

	"github.com/mouse-blink/docslice/internal/adapter"
	"github.com/mouse-blink/docslice/internal/controller"
	"github.com/mouse-blink/docslice/internal/domain"
	m "github.com/mouse-blink/docslice/internal/model"
	"github.com/spf13/cobra"
)

var cFileAdapter adapter.CFileAdapter
var headerAdapter adapter.HeaderAdapter
var gapStore adapter.GapStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	cFileAdapter = adapter.NewTreeSitterCFileAdapter()
	headerAdapter = adapter.NewLocalHeaderAdapter()
	gapStore = adapter.NewLocalGapStore()
	workflow = domain.NewWorkflow(cFileAdapter, headerAdapter, gapStore, ui)
}

var namesFlag bool
var gapsFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docslice SOURCE HEADER",
		Short: "Extract documented C function ranges",
		Long: `Docslice scans a C source file for definitions of functions declared in a
header, follows the static helpers they call, and prints sed line ranges
covering each documented function together with its doc comment.

The output can be piped straight into sed:
  docslice scip.c scip.h | sed -n -f - scip.c`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			source, header := parsePaths(args)

			return workflow.Extract(domain.ExtractArgs{
				Source: source,
				Header: header,
				Gaps:   m.Path(gapsFlag),
				Names:  namesFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&namesFlag, "names", "n", false, "print function names with raw line ranges instead of sed directives")
	cmd.Flags().StringVarP(&gapsFlag, "gaps", "g", "", "bridge adjacent ranges across gaps listed in this file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) (m.Path, m.Path) {
	return m.Path(args[0]), m.Path(args[1])
}
