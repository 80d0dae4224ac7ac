package tui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/pkgsort/internal/keysort"
	"nathanbeddoewebdev/pkgsort/internal/manifest"
	"nathanbeddoewebdev/pkgsort/internal/tui/styles"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels the interactive flow.
var ErrAborted = errors.New("sort aborted by user")

// ConfirmWrite asks whether the sorted output may be written to path. It
// matches runner.ConfirmFunc.
func ConfirmWrite(path string, before, after []byte) (bool, error) {
	accessible := os.Getenv("ACCESSIBLE") != ""

	confirm := true
	summaryNote := huh.NewNote().
		Title(path).
		Description(KeyOrderSummary(before, after))

	confirmField := huh.NewConfirm().
		Title("Write the sorted manifest?").
		Affirmative("Write").
		Negative("Skip").
		Value(&confirm)

	if err := runForm(accessible, huh.NewGroup(summaryNote, confirmField)); err != nil {
		return false, err
	}
	return confirm, nil
}

// KeyOrderSummary lists the top-level keys of after, marking the ones whose
// position differs from before.
func KeyOrderSummary(before, after []byte) string {
	oldKeys := topLevelKeys(before)
	newKeys := topLevelKeys(after)
	if newKeys == nil {
		return styles.MutedText.Render("(unable to read sorted output)")
	}

	oldPos := make(map[string]int, len(oldKeys))
	for i, k := range oldKeys {
		oldPos[k] = i
	}

	var b strings.Builder
	moved := 0
	for i, k := range newKeys {
		j, ok := oldPos[k]
		switch {
		case !ok:
			fmt.Fprintf(&b, "  %s %s\n", styles.AccentText.Render("+"), k)
		case i != j:
			moved++
			fmt.Fprintf(&b, "  %s %s %s\n", styles.WarningText.Render("~"), k, styles.MutedText.Render(fmt.Sprintf("(%d → %d)", j+1, i+1)))
		default:
			fmt.Fprintf(&b, "    %s\n", styles.MutedText.Render(k))
		}
	}
	if moved == 0 {
		b.WriteString(styles.MutedText.Render("Top-level order unchanged; nested values were reordered."))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func topLevelKeys(data []byte) []string {
	m, err := keysort.ParseMapping(bytes.TrimPrefix(data, manifest.UTF8BOM))
	if err != nil {
		return nil
	}
	return m.Keys()
}

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
