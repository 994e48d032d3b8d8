// Package ui holds the shared terminal styling for the CLI and TUI.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles bundles palette + checkbox symbols for one theme.
type Styles struct {
	Title    lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style

	BoxChecked, BoxUnchecked string
}

var current = classic()

func classic() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:        lipgloss.NewStyle().Faint(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		BoxChecked:   "☑",
		BoxUnchecked: "☐",
	}
}

func neon() Styles {
	s := classic()
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	s.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	s.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	s.BoxChecked, s.BoxUnchecked = "◼", "◻"
	return s
}

func mono() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain, Success: plain, Pending: plain, Accent: plain,
		Muted: plain, Error: plain, Selected: plain, Done: plain, Help: plain,
		Border:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		BoxChecked:   "[x]",
		BoxUnchecked: "[ ]",
	}
}

// SetTheme switches the active theme: classic (default), neon, mono.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current returns the active theme's styles.
func Current() Styles { return current }

// OK prints a success confirmation.
func OK(msg string) {
	fmt.Println(current.Success.Render("✔ " + msg))
}

// Fail prints an error message to stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg))
}

// Panel renders lines inside a framed box.
func Panel(lines []string) string {
	return current.Border.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders a fixed-width bar with a done/total tally.
func ProgressBar(done, total, width int) string {
	if total == 0 {
		total = 1
	}
	if width <= 0 {
		width = 28
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}

// Box returns the checkbox symbol for a done state.
func Box(done bool) string {
	if done {
		return current.BoxChecked
	}
	return current.BoxUnchecked
}
