package domain

import (
	"sort"

	"github.com/mouse-blink/docslice/internal/adapter"
	"github.com/mouse-blink/docslice/internal/controller"
	m "github.com/mouse-blink/docslice/internal/model"
)

// ExtractArgs parameterizes the extraction pipeline.
type ExtractArgs struct {
	Source m.Path
	Header m.Path
	Gaps   m.Path // optional gap table file; empty means no bridging
	Names  bool   // human-readable raw listing instead of directives
	Kinds  bool   // node kind histogram instead of directives
}

// GapsArgs parameterizes gap table derivation.
type GapsArgs struct {
	Source m.Path
	Header m.Path
	Output m.Path // optional; empty prints to stdout
}

// ListArgs parameterizes candidate listing.
type ListArgs struct {
	Source m.Path
	Header m.Path
}

// ViewArgs parameterizes the merged slice view.
type ViewArgs struct {
	Source m.Path
	Header m.Path
	Gaps   m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Extract(args ExtractArgs) error
	Gaps(args GapsArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	cFiles   adapter.CFileAdapter
	headers  adapter.HeaderAdapter
	gapStore adapter.GapStore
	ui       controller.UI
}

// NewWorkflow creates a Workflow wired to the provided adapters and UI.
func NewWorkflow(cFiles adapter.CFileAdapter, headers adapter.HeaderAdapter, gapStore adapter.GapStore, ui controller.UI) Workflow {
	return &workflow{
		cFiles:   cFiles,
		headers:  headers,
		gapStore: gapStore,
		ui:       ui,
	}
}

// analyze runs the shared front of the pipeline: parse, header load,
// candidate registration with the dependency walk, and documentation
// attachment. Everything downstream is pure interval arithmetic.
func (w *workflow) analyze(source, header m.Path) (*m.TranslationUnit, *Registry, []m.DocumentedFunction, error) {
	tu, err := w.cFiles.Parse(source)
	if err != nil {
		return nil, nil, nil, err
	}

	filter, err := w.headers.Load(header)
	if err != nil {
		return nil, nil, nil, err
	}

	reg := BuildRegistry(tu, filter)
	docs := AttachDocumentation(tu.Comments, reg)

	return tu, reg, docs, nil
}

// Extract prints extraction directives for the merged intervals, or one of
// the diagnostic listings when requested.
func (w *workflow) Extract(args ExtractArgs) error {
	tu, _, docs, err := w.analyze(args.Source, args.Header)
	if err != nil {
		return err
	}

	if args.Kinds {
		return w.ui.DisplayKindCounts(tu.NodeKinds)
	}

	if args.Names {
		return w.ui.DisplayFunctions(docs)
	}

	gaps := m.GapTable{}
	if args.Gaps != "" {
		gaps, err = w.gapStore.Load(args.Gaps)
		if err != nil {
			return err
		}
	}

	return w.ui.DisplayDirectives(MergeIntervals(rawIntervals(docs), gaps))
}

// Gaps derives a candidate gap table and writes it to the output file or
// the UI.
func (w *workflow) Gaps(args GapsArgs) error {
	_, _, docs, err := w.analyze(args.Source, args.Header)
	if err != nil {
		return err
	}

	gaps := DeriveGaps(rawIntervals(docs))

	if args.Output != "" {
		return w.gapStore.Save(args.Output, gaps)
	}

	return w.ui.DisplayGaps(gaps)
}

// List shows every registered candidate in start line order.
func (w *workflow) List(args ListArgs) error {
	_, reg, docs, err := w.analyze(args.Source, args.Header)
	if err != nil {
		return err
	}

	documented := make(map[int]bool, len(docs))
	for _, doc := range docs {
		documented[doc.Function.StartLine] = true
	}

	var cands []m.Candidate

	for _, fn := range reg.Exported() {
		cands = append(cands, m.Candidate{Function: fn, Documented: documented[fn.StartLine]})
	}

	for _, fn := range reg.Internal() {
		cands = append(cands, m.Candidate{Function: fn, Internal: true, Documented: documented[fn.StartLine]})
	}

	sort.Slice(cands, func(i, j int) bool {
		return cands[i].Function.StartLine < cands[j].Function.StartLine
	})

	if err := w.ui.Start(controller.WithBrowseMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	if err := w.ui.DisplayCandidates(cands); err != nil {
		return err
	}

	return w.ui.Wait()
}

// View shows the merged output intervals with the functions each covers.
func (w *workflow) View(args ViewArgs) error {
	_, _, docs, err := w.analyze(args.Source, args.Header)
	if err != nil {
		return err
	}

	gaps := m.GapTable{}
	if args.Gaps != "" {
		gaps, err = w.gapStore.Load(args.Gaps)
		if err != nil {
			return err
		}
	}

	merged := MergeIntervals(rawIntervals(docs), gaps)

	out := make([]m.Slice, 0, len(merged))

	for _, iv := range merged {
		slice := m.Slice{Interval: iv}

		for _, doc := range docs {
			if doc.Interval.Start >= iv.Start && doc.Interval.End <= iv.End {
				slice.Functions = append(slice.Functions, doc.Function)
			}
		}

		out = append(out, slice)
	}

	if err := w.ui.Start(controller.WithBrowseMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	if err := w.ui.DisplaySlices(out); err != nil {
		return err
	}

	return w.ui.Wait()
}

func rawIntervals(docs []m.DocumentedFunction) []m.Interval {
	raw := make([]m.Interval, 0, len(docs))
	for _, doc := range docs {
		raw = append(raw, doc.Interval)
	}

	return raw
}
