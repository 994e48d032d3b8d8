// Package tui is the interactive surface: browse checklists, drill
// into one, and add, edit, toggle or delete inline. Every change
// persists immediately, and writes from other processes show up live.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"listo/internal/model"
	"listo/internal/mutate"
	"listo/internal/store"
	"listo/internal/ui"
	"listo/internal/validate"
)

type level int

const (
	levelLists level = iota
	levelItems
)

// externalMsg carries a collection written by another process.
type externalMsg struct {
	lists model.Collection
}

type Model struct {
	st    *store.Store
	lists model.Collection

	level level
	slug  string // open list when level == levelItems

	lv list.Model
	iv list.Model

	// Inline add/edit (shared text input, as in the single-pane version)
	ti        textinput.Model
	adding    bool
	editing   bool
	editIndex int
	editSlug  string
	inputErr  string

	// Single-level undo for the last deleted item
	canUndo   bool
	undoSlug  string
	undoIndex int
	undoItem  model.Item

	width, height int
}

// Run starts the interactive session on an open store.
func Run(st *store.Store) error {
	m := newModel(st)
	p := tea.NewProgram(m, tea.WithAltScreen())

	cancel := st.Subscribe(func(lists model.Collection) {
		p.Send(externalMsg{lists: lists})
	})
	defer cancel()

	_, err := p.Run()
	return err
}

func newModel(st *store.Store) Model {
	lists := st.Lists()

	lv := list.New(listEntries(lists), listDelegate{}, 0, 0)
	lv.Title = listsTitle(lists)
	lv.SetShowHelp(true)
	lv.SetShowStatusBar(true)
	lv.SetFilteringEnabled(true)
	lv.FilterInput.Prompt = "/ "
	lv.SetStatusBarItemName("list", "lists")
	lv.Styles.Title = ui.Current().Title
	lv.Styles.HelpStyle = ui.Current().Help
	lv.Styles.PaginationStyle = ui.Current().Help
	lv.AdditionalShortHelpKeys = listsHelpKeys
	lv.AdditionalFullHelpKeys = listsHelpKeys

	iv := list.New(nil, itemDelegate{}, 0, 0)
	iv.SetShowHelp(true)
	iv.SetShowStatusBar(true)
	iv.SetFilteringEnabled(true)
	iv.FilterInput.Prompt = "/ "
	iv.SetStatusBarItemName("item", "items")
	iv.Styles.Title = ui.Current().Title
	iv.Styles.HelpStyle = ui.Current().Help
	iv.Styles.PaginationStyle = ui.Current().Help
	iv.AdditionalShortHelpKeys = itemsHelpKeys
	iv.AdditionalFullHelpKeys = itemsHelpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{st: st, lists: lists, lv: lv, iv: iv, ti: ti}
}

func listsHelpKeys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func itemsHelpKeys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func listsTitle(lists model.Collection) string {
	done, pending := 0, 0
	for _, l := range lists {
		d, p := l.Progress()
		done += d
		pending += p
	}
	s := ui.Current()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		s.Title.Render("Checklists"),
		s.Success.Render("✔"), done,
		s.Pending.Render("•"), pending,
		s.Accent.Render("Lists"), len(lists))
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case externalMsg:
		// Full replacement of local state; last writer wins.
		m.adopt(msg.lists)
		return m, nil

	case tea.KeyMsg:
		if m.adding || m.editing {
			return m.updateInput(msg)
		}
		if m.level == levelItems {
			return m.updateItems(msg)
		}
		return m.updateLists(msg)
	}

	return m.updateActiveList(msg)
}

func (m *Model) adopt(lists model.Collection) {
	m.lists = lists
	m.lv.SetItems(listEntries(lists))
	m.lv.Title = listsTitle(lists)
	if m.level == levelItems {
		i := model.Find(lists, m.slug)
		if i < 0 {
			// The open list vanished under us; fall back to the overview.
			m.level = levelLists
			m.slug = ""
			return
		}
		m.iv.SetItems(itemEntries(lists[i].Items))
		m.iv.Title = ui.Current().Title.Render(lists[i].Title)
	}
}

// mutateStore applies fn to the authoritative collection and refreshes
// the local views from whatever the store now holds.
func (m *Model) mutateStore(fn func(model.Collection) model.Collection) {
	if err := m.st.Update(fn); err != nil {
		m.inputErr = err.Error()
		return
	}
	m.adopt(m.st.Lists())
}

func (m Model) updateLists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.lv.FilterState() == list.Filtering {
		return m.updateActiveList(msg)
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if e, ok := m.lv.SelectedItem().(listEntry); ok {
			m.level = levelItems
			m.slug = e.list.Slug
			m.iv.SetItems(itemEntries(e.list.Items))
			m.iv.Title = ui.Current().Title.Render(e.list.Title)
			m.iv.ResetSelected()
		}
		return m, nil

	case "a":
		m.adding = true
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New list title..."
		m.ti.Focus()
		return m, nil

	case "e":
		if e, ok := m.lv.SelectedItem().(listEntry); ok {
			m.editing = true
			m.editIndex = -1 // editing a list title, not an item
			m.editSlug = e.list.Slug
			m.inputErr = ""
			m.ti.SetValue(e.list.Title)
			m.ti.CursorEnd()
			m.ti.Placeholder = "List title..."
			m.ti.Focus()
		}
		return m, nil

	case "d":
		if e, ok := m.lv.SelectedItem().(listEntry); ok {
			slug := e.list.Slug
			m.mutateStore(func(lists model.Collection) model.Collection {
				return mutate.DeleteList(lists, slug)
			})
		}
		return m, nil
	}

	return m.updateActiveList(msg)
}

func (m Model) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.iv.FilterState() == list.Filtering {
		return m.updateActiveList(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.level = levelLists
		m.slug = ""
		return m, nil

	case " ":
		if e, ok := m.iv.SelectedItem().(itemEntry); ok {
			slug, idx := m.slug, e.index
			m.mutateStore(func(lists model.Collection) model.Collection {
				return mutate.ToggleItemDone(lists, slug, idx)
			})
		}
		return m, nil

	case "a":
		m.adding = true
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New item..."
		m.ti.Focus()
		return m, nil

	case "e":
		if e, ok := m.iv.SelectedItem().(itemEntry); ok {
			m.editing = true
			m.editIndex = e.index
			m.inputErr = ""
			m.ti.SetValue(e.item.Message)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Item message..."
			m.ti.Focus()
		}
		return m, nil

	case "d":
		if e, ok := m.iv.SelectedItem().(itemEntry); ok {
			slug, idx := m.slug, e.index
			m.canUndo = true
			m.undoSlug = slug
			m.undoIndex = idx
			m.undoItem = e.item
			m.mutateStore(func(lists model.Collection) model.Collection {
				return mutate.DeleteItem(lists, slug, idx)
			})
		}
		return m, nil

	case "u":
		if m.canUndo {
			slug, idx, it := m.undoSlug, m.undoIndex, m.undoItem
			m.mutateStore(func(lists model.Collection) model.Collection {
				return restoreItem(lists, slug, idx, it)
			})
			m.canUndo = false
		}
		return m, nil
	}

	return m.updateActiveList(msg)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.ti.Value())
		if done := m.applyInput(value); !done {
			return m, nil
		}
		m.closeInput()
		return m, nil
	case "esc":
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// applyInput commits the pending add/edit. It reports false when the
// value is rejected, keeping the input open with an error.
func (m *Model) applyInput(value string) bool {
	now := time.Now()

	switch {
	case m.level == levelLists && m.adding:
		if err := validate.Title(m.lists, value); err != nil {
			m.inputErr = err.Error()
			return false
		}
		m.mutateStore(func(lists model.Collection) model.Collection {
			out, _ := mutate.AddList(lists, value, now)
			return out
		})

	case m.level == levelLists && m.editing:
		slug := m.editSlug
		if err := validate.Title(withoutSlug(m.lists, slug), value); err != nil {
			m.inputErr = err.Error()
			return false
		}
		m.mutateStore(func(lists model.Collection) model.Collection {
			return mutate.UpdateListTitle(lists, slug, value)
		})

	case m.level == levelItems && m.adding:
		if err := validate.Message(value); err != nil {
			m.inputErr = err.Error()
			return false
		}
		slug := m.slug
		m.mutateStore(func(lists model.Collection) model.Collection {
			return mutate.AddItem(lists, slug, value, now)
		})

	case m.level == levelItems && m.editing:
		if err := validate.Message(value); err != nil {
			m.inputErr = err.Error()
			return false
		}
		slug, idx := m.slug, m.editIndex
		m.mutateStore(func(lists model.Collection) model.Collection {
			return mutate.UpdateItemMessage(lists, slug, idx, value)
		})
	}
	return true
}

func (m *Model) closeInput() {
	m.adding = false
	m.editing = false
	m.inputErr = ""
	m.editSlug = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) updateActiveList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.level == levelItems {
		m.iv, cmd = m.iv.Update(msg)
	} else {
		m.lv, cmd = m.lv.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 7
	}

	var content string
	if m.level == levelItems {
		m.iv.SetSize(w-4, listHeight)
		content = m.iv.View()
	} else {
		m.lv.SetSize(w-4, listHeight)
		content = m.lv.View()
	}

	if m.adding || m.editing {
		s := ui.Current()
		title := inputTitle(m.level, m.adding)
		if m.inputErr != "" {
			title += "  " + s.Error.Render(m.inputErr)
		}
		content += "\n" + s.Border.Render(title+"\n"+m.ti.View())
	}
	return ui.Panel([]string{content})
}

func inputTitle(l level, adding bool) string {
	switch {
	case l == levelLists && adding:
		return "Add list"
	case l == levelLists:
		return "Rename list"
	case adding:
		return "Add item"
	default:
		return "Edit item"
	}
}

// restoreItem reinserts a previously deleted item at its old position,
// copy-on-write like the engine operations.
func restoreItem(lists model.Collection, slug string, index int, it model.Item) model.Collection {
	i := model.Find(lists, slug)
	if i < 0 {
		return lists
	}
	if index < 0 {
		index = 0
	}
	if index > len(lists[i].Items) {
		index = len(lists[i].Items)
	}

	items := make([]model.Item, 0, len(lists[i].Items)+1)
	items = append(items, lists[i].Items[:index]...)
	items = append(items, it)
	items = append(items, lists[i].Items[index:]...)

	out := make(model.Collection, len(lists))
	copy(out, lists)
	out[i].Items = items
	return out
}

// withoutSlug filters one list out, so a rename can be checked against
// every other title.
func withoutSlug(lists model.Collection, slug string) model.Collection {
	out := make(model.Collection, 0, len(lists))
	for _, l := range lists {
		if l.Slug != slug {
			out = append(out, l)
		}
	}
	return out
}
