package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/docslice/internal/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI. In browse mode it launches the interactive
// program in the background; data arrives later through the Display methods.
func (t *TUI) Start(options ...StartOption) error {
	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	if config.mode != ModeBrowse {
		return nil
	}

	model := newBrowseModel()

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	t.group = &errgroup.Group{}
	t.group.Go(func() error {
		_, err := t.program.Run()

		return err
	})

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
	if t.program != nil {
		t.program.Quit()
	}
}

// Wait blocks until the user closes the interactive program.
func (t *TUI) Wait() error {
	if t.group == nil {
		return nil
	}

	return t.group.Wait()
}

// DisplayDirectives prints sed print directives. Directives stay plain even
// on a terminal so they can be piped into sed directly.
func (t *TUI) DisplayDirectives(intervals []m.Interval) error {
	for _, iv := range intervals {
		_, _ = fmt.Fprintf(t.output, "%d,%dp\n", iv.Start, iv.End)
	}

	return nil
}

// DisplayFunctions prints raw name-and-range lines.
func (t *TUI) DisplayFunctions(docs []m.DocumentedFunction) error {
	for _, doc := range docs {
		_, _ = fmt.Fprintf(t.output, "%s %d %d\n", doc.Function.Qualified, doc.Interval.Start, doc.Interval.End)
	}

	return nil
}

// DisplayGaps prints gap table entries.
func (t *TUI) DisplayGaps(gaps []m.Interval) error {
	for _, gap := range gaps {
		_, _ = fmt.Fprintf(t.output, "%d:%d,\n", gap.Start, gap.End)
	}

	return nil
}

// DisplayCandidates sends the candidate list to the interactive browser.
func (t *TUI) DisplayCandidates(candidates []m.Candidate) error {
	if t.program == nil {
		return fmt.Errorf("interactive browser not started")
	}

	t.program.Send(candidatesMsg{candidates: candidates})

	return nil
}

// DisplaySlices sends the merged slices to the interactive browser.
func (t *TUI) DisplaySlices(slices []m.Slice) error {
	if t.program == nil {
		return fmt.Errorf("interactive browser not started")
	}

	t.program.Send(slicesMsg{slices: slices})

	return nil
}

// DisplayKindCounts prints the node kind histogram.
func (t *TUI) DisplayKindCounts(kinds map[string]int) error {
	for _, name := range sortedKindNames(kinds) {
		_, _ = fmt.Fprintf(t.output, "%s %d\n", name, kinds[name])
	}

	return nil
}
