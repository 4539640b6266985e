package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	m "github.com/mouse-blink/docslice/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait blocks until the UI is done. SimpleUI never blocks.
func (s *SimpleUI) Wait() error {
	return nil
}

// DisplayDirectives prints one sed print directive per interval.
func (s *SimpleUI) DisplayDirectives(intervals []m.Interval) error {
	for _, iv := range intervals {
		s.printf("%d,%dp\n", iv.Start, iv.End)
	}

	return nil
}

// DisplayFunctions prints one raw name-and-range line per documented function.
func (s *SimpleUI) DisplayFunctions(docs []m.DocumentedFunction) error {
	for _, doc := range docs {
		s.printf("%s %d %d\n", doc.Function.Qualified, doc.Interval.Start, doc.Interval.End)
	}

	return nil
}

// DisplayGaps prints each gap in the from:to table entry format.
func (s *SimpleUI) DisplayGaps(gaps []m.Interval) error {
	for _, gap := range gaps {
		s.printf("%d:%d,\n", gap.Start, gap.End)
	}

	return nil
}

// DisplayCandidates prints the candidate table.
func (s *SimpleUI) DisplayCandidates(candidates []m.Candidate) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Storage", "Lines", "Origin", "Doc"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	documented := 0

	for _, cand := range candidates {
		origin := "header"
		if cand.Internal {
			origin = "walk"
		}

		doc := "no"
		if cand.Documented {
			doc = "yes"

			documented++
		}

		table.Append([]string{
			cand.Function.Name,
			string(cand.Function.Storage),
			fmt.Sprintf("%d-%d", cand.Function.StartLine, cand.Function.EndLine),
			origin,
			doc,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(candidates)),
		"",
		"",
		"",
		fmt.Sprintf("%d documented", documented),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySlices prints the merged slice table.
func (s *SimpleUI) DisplaySlices(slices []m.Slice) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Slice", "Lines", "Functions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	functions := 0

	for i, slice := range slices {
		functions += len(slice.Functions)

		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d-%d", slice.Interval.Start, slice.Interval.End),
			joinFunctionNames(slice.Functions),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(slices)),
		"",
		fmt.Sprintf("%d functions", functions),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayKindCounts prints the node kind histogram table.
func (s *SimpleUI) DisplayKindCounts(kinds map[string]int) error {
	names := sortedKindNames(kinds)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, name := range names {
		count := kinds[name]
		table.Append([]string{name, fmt.Sprintf("%d", count)})

		total += count
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Kinds %d", len(names)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func joinFunctionNames(functions []*m.Function) string {
	names := make([]string, 0, len(functions))
	for _, fn := range functions {
		names = append(names, fn.Name)
	}

	return strings.Join(names, ", ")
}

func sortedKindNames(kinds map[string]int) []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
