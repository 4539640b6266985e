package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// Simple delegate for browse list items.
type browseDelegate struct {
	offset int
}

func (d browseDelegate) Height() int  { return 1 }
func (d browseDelegate) Spacing() int { return 0 }
func (d browseDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d browseDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	isSelected := index == l.Index()

	switch it := item.(type) {
	case candidateItem:
		d.renderCandidate(w, l, it, isSelected)
	case sliceItem:
		d.renderSlice(w, l, it, isSelected)
	}
}

func (d browseDelegate) renderCandidate(w io.Writer, l list.Model, item candidateItem, isSelected bool) {
	nameWidth := l.Width() - 38 // Reserve space for Storage, Lines, Origin, Doc columns and spacing

	columnStyle, nameStyle, displayName := d.rowStyles(item.name, isSelected, nameWidth)

	doc := " "
	if item.documented {
		doc = "*"
	}

	line := fmt.Sprintf("%s  %s  %s  %s  %s",
		columnStyle.Width(8).Render(item.storage),
		columnStyle.Width(12).Render(item.lines),
		columnStyle.Width(8).Render(item.origin),
		columnStyle.Width(4).Render(doc),
		nameStyle.Render(displayName),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d browseDelegate) renderSlice(w io.Writer, l list.Model, item sliceItem, isSelected bool) {
	functionsWidth := l.Width() - 16 // Reserve space for the Lines column and spacing

	columnStyle, functionsStyle, displayFunctions := d.rowStyles(item.functions, isSelected, functionsWidth)

	line := fmt.Sprintf("%s  %s",
		columnStyle.Width(12).Render(item.lines),
		functionsStyle.Render(displayFunctions),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d browseDelegate) rowStyles(text string, isSelected bool, width int) (lipgloss.Style, lipgloss.Style, string) {
	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		return selected, selected, animateScroll(text, width, d.offset)
	}

	columnStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true)

	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	return columnStyle, textStyle, truncateToWidth(text, width)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	// Create the repeating pattern: text + gap
	// We work with runes to handle multi-byte characters correctly
	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	// Construct the window
	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browseModel lists candidates or merged slices interactively.
type browseModel struct {
	width        int
	height       int
	browseList   list.Model
	delegate     browseDelegate
	title        string
	summary      string
	headers      string
	rendered     bool
	animOffset   int
	lastSelected int
}

func newBrowseModel() browseModel {
	delegate := browseDelegate{}
	browseList := list.New([]list.Item{}, delegate, 80, 20)
	browseList.SetShowPagination(false)
	browseList.SetShowFilter(true)
	browseList.SetShowHelp(false)
	browseList.SetShowTitle(false)
	browseList.SetShowStatusBar(false)
	browseList.FilterInput.Placeholder = "Filter…"

	return browseModel{
		browseList:   browseList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (bm browseModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.browseList.SetWidth(bm.width)

	case tickMsg:
		if bm.browseList.FilterState() != list.Filtering && bm.rendered {
			bm.animOffset++
			bm.delegate.offset = bm.animOffset
			bm.browseList.SetDelegate(bm.delegate)

			return bm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return bm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return bm, tea.Quit
		default:
			// Pass all key events to the list
			var newList list.Model

			newList, cmd = bm.browseList.Update(msg)
			bm.browseList = newList

			// Detect selection change to reset animation
			if bm.browseList.Index() != bm.lastSelected {
				bm.lastSelected = bm.browseList.Index()
				bm.animOffset = 0
				bm.delegate.offset = 0
				bm.browseList.SetDelegate(bm.delegate)
			}

			return bm, cmd
		}

	case candidatesMsg:
		bm = bm.handleCandidatesMsg(msg)

	case slicesMsg:
		bm = bm.handleSlicesMsg(msg)
	}

	return bm, cmd
}

func (bm browseModel) handleCandidatesMsg(msg candidatesMsg) browseModel {
	items := make([]list.Item, 0, len(msg.candidates))
	documented := 0

	for _, cand := range msg.candidates {
		origin := "header"
		if cand.Internal {
			origin = "walk"
		}

		if cand.Documented {
			documented++
		}

		items = append(items, candidateItem{
			name:       cand.Function.Name,
			storage:    string(cand.Function.Storage),
			lines:      fmt.Sprintf("%d-%d", cand.Function.StartLine, cand.Function.EndLine),
			origin:     origin,
			documented: cand.Documented,
		})
	}

	bm.title = "📄 Docslice Candidates"
	bm.summary = fmt.Sprintf("Functions: %d   Documented: %d", len(msg.candidates), documented)
	bm.headers = fmt.Sprintf("%-8s  %-12s  %-8s  %-4s  %s", "Storage", "Lines", "Origin", "Doc", "Function")

	return bm.showItems(items)
}

func (bm browseModel) handleSlicesMsg(msg slicesMsg) browseModel {
	items := make([]list.Item, 0, len(msg.slices))
	functions := 0

	for _, slice := range msg.slices {
		functions += len(slice.Functions)

		items = append(items, sliceItem{
			lines:     fmt.Sprintf("%d-%d", slice.Interval.Start, slice.Interval.End),
			functions: joinFunctionNames(slice.Functions),
		})
	}

	bm.title = "📄 Docslice Slices"
	bm.summary = fmt.Sprintf("Slices: %d   Functions: %d", len(msg.slices), functions)
	bm.headers = fmt.Sprintf("%-12s  %s", "Lines", "Functions")

	return bm.showItems(items)
}

func (bm browseModel) showItems(items []list.Item) browseModel {
	bm.browseList.SetItems(items)
	bm.rendered = true

	if len(items) > 0 && bm.lastSelected == -1 {
		bm.lastSelected = 0
	}

	return bm
}

func (bm browseModel) View() string {
	if !bm.rendered {
		return "Analyzing source…\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	// 1. Title
	title := titleStyle.Render(bm.title)

	// 2. Summary
	summary := summaryStyle.Render(bm.summary)

	// 3. Table with border
	table := bm.renderTable()

	// 4. Footer
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(bm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (bm browseModel) renderTable() string {
	// List sizing
	// Display calculations:
	// Screen Height
	// - Title (2)
	// - Summary (2)
	// - Footer (1)
	// - Border (2)
	// - Padding/Headers (2)
	// = Left for list
	listHeight := bm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Widths:
	// Window Width
	// - Margin (2)
	// - Border (2)
	// - Padding (2)
	// = List Width
	listWidth := bm.width - 6

	bm.browseList.SetHeight(listHeight)
	bm.browseList.SetWidth(listWidth)

	// Column Headers inside the table area
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(bm.headers)

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1). // Outer margin
		Padding(0, 1) // Inner padding

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			bm.browseList.View(),
		),
	)
}
