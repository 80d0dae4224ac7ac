// Package components provides the render-only pieces (header, footer and
// status line) that frame the pkgsort TUI views.
package components

import (
	"os"
	"strings"

	"nathanbeddoewebdev/pkgsort/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar.
//
//	┌──────────────────────────────────────────────────────┐
//	│  pkgsort > config    ~/.config/pkgsort/config.json   │
//	└──────────────────────────────────────────────────────┘
//
// A detail path under the home directory is shown relative to "~" and is
// shortened from the left when it does not fit.
func Header(width int, breadcrumb string, detail string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("pkgsort")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	innerWidth := width - 4 // account for padding
	room := innerWidth - lipgloss.Width(left) - 1

	right := ""
	if detail = shortenPath(tildePath(detail), room); detail != "" {
		right = styles.Subtitle.Render(detail)
	}

	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	content := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(content)
}

func tildePath(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" || !strings.HasPrefix(p, home) {
		return p
	}
	return "~" + strings.TrimPrefix(p, home)
}

// shortenPath keeps the tail of p so that it fits in n cells.
func shortenPath(p string, n int) string {
	if lipgloss.Width(p) <= n {
		return p
	}
	if n < 2 {
		return ""
	}
	r := []rune(p)
	return "…" + string(r[len(r)-(n-1):])
}

// KeyBinding represents a single key binding for the footer.
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer renders the key binding help bar at the bottom of the screen.
func Footer(width int, bindings []KeyBinding) string {
	if width < 10 || len(bindings) == 0 {
		return ""
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = styles.FormatKeyBinding(b.Key, b.Desc)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(strings.Join(parts, styles.KeySepStyle.Render("  ")))
}

// StatusKind selects the color of a status message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// StatusBar renders a status message line between the content and footer.
func StatusBar(width int, message string, kind StatusKind) string {
	if message == "" {
		return ""
	}

	style := styles.MutedText
	switch kind {
	case StatusSuccess:
		style = styles.SuccessText
	case StatusError:
		style = styles.ErrorText
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(message))
}
