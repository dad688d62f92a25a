package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tsep/internal/domain"
)

// GroupViewer browses the groups of a manifest in an interactive TUI
type GroupViewer struct{}

// NewGroupViewer creates a new GroupViewer
func NewGroupViewer() *GroupViewer {
	return &GroupViewer{}
}

// View shows one list entry per group on the left and its keys and files on the right
func (gv *GroupViewer) View(manifest *domain.Manifest) error {
	if len(manifest.Groups) == 0 {
		color.Yellow("No groups in manifest")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, g := range manifest.Groups {
		list.AddItem(groupItemText(g), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(manifest.Meta))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(manifest.Groups) {
			return
		}
		g := manifest.Groups[index]
		statsView.SetText(groupStats(g, manifest.Meta.TotalCostMillis))
		detailsView.SetText(groupDetails(g)).ScrollToBeginning()
	}
	list.SetChangedFunc(func(int, string, string, rune) { updateDetails() })

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEscape:
			app.SetFocus(list)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	updateDetails()

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("group viewer: %w", err)
	}
	return nil
}

func headerText(meta domain.ManifestMeta) string {
	return fmt.Sprintf(" %d groups, strategy [yellow]%s[white], level [yellow]%s[white] | ↑↓ navigate, → details, ← back, q to exit ",
		meta.Groups, meta.Strategy, meta.DepthLevel)
}

func groupItemText(g domain.ManifestGroup) string {
	return fmt.Sprintf("[yellow]%d.[white] %s [gray](%s)[white]", g.Index, g.File, formatMillis(g.TotalCostMillis))
}

func groupStats(g domain.ManifestGroup, total int64) string {
	share := 0.0
	if total > 0 {
		share = float64(g.TotalCostMillis) * 100 / float64(total)
	}
	return fmt.Sprintf("[cyan]Group %d[white] %s\n[gray]%s estimated, %.1f%% of total, %d keys, %d files[white]",
		g.Index, g.File, formatMillis(g.TotalCostMillis), share, len(g.Keys), len(g.Files))
}

func groupDetails(g domain.ManifestGroup) string {
	var b strings.Builder
	b.WriteString("[green]Keys[white]\n")
	for _, k := range g.Keys {
		fmt.Fprintf(&b, "  %s\n", tview.Escape(k))
	}
	b.WriteString("\n[green]Files[white]\n")
	for _, f := range g.Files {
		fmt.Fprintf(&b, "  %s\n", tview.Escape(f))
	}
	return b.String()
}
