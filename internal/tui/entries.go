package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"listo/internal/model"
	"listo/internal/ui"
)

// listEntry adapts a CheckList to bubbles/list.Item.
type listEntry struct {
	list model.CheckList
}

func (e listEntry) Title() string {
	done, pending := e.list.Progress()
	return fmt.Sprintf("%s (%d/%d)", e.list.Title, done, done+pending)
}
func (e listEntry) Description() string { return "" }
func (e listEntry) FilterValue() string { return e.list.Title }

// itemEntry adapts an Item to bubbles/list.Item. index addresses the
// item in the list's underlying Items sequence; the view's own index
// diverges from it whenever a filter is applied, so mutations must go
// through this one.
type itemEntry struct {
	item  model.Item
	index int
}

func (e itemEntry) Title() string {
	return fmt.Sprintf("%s %s", ui.Box(e.item.Done), e.item.Message)
}
func (e itemEntry) Description() string { return "" }
func (e itemEntry) FilterValue() string { return e.item.Message }

// Single-line delegates, as in the non-interactive views.

type listDelegate struct{}

func (d listDelegate) Height() int                               { return 1 }
func (d listDelegate) Spacing() int                              { return 0 }
func (d listDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d listDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(listEntry)
	if !ok {
		return
	}
	s := ui.Current()
	done, pending := e.list.Progress()

	line := fmt.Sprintf("%s %s  %s",
		s.Title.Render(e.list.Title),
		s.Muted.Render("("+e.list.Slug+")"),
		ui.ProgressBar(done, done+pending, 12))
	prefix := "  "
	if index == m.Index() {
		prefix = s.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(itemEntry)
	if !ok {
		return
	}
	s := ui.Current()

	box := s.Muted.Render(ui.Box(false))
	text := e.item.Message
	if e.item.Done {
		box = s.Success.Render(ui.Box(true))
		text = s.Done.Render(text)
	}
	if len(text) > 80 {
		text = text[:77] + "..."
	}

	prefix := "  "
	if index == m.Index() {
		prefix = s.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s\n", prefix, box, strings.TrimSpace(text))
}

func listEntries(lists model.Collection) []list.Item {
	out := make([]list.Item, 0, len(lists))
	for _, l := range lists {
		out = append(out, listEntry{list: l})
	}
	return out
}

func itemEntries(items []model.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for i, it := range items {
		out = append(out, itemEntry{item: it, index: i})
	}
	return out
}
