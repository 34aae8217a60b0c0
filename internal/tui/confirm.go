// Package tui holds the interactive delete confirmation prompt.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// maxPreview caps how many ids are listed above the prompt.
const maxPreview = 10

// ConfirmModel asks whether a bulk delete should proceed. The default
// answer is no.
type ConfirmModel struct {
	alias     string
	host      string
	ids       []string
	decided   bool
	confirmed bool
}

// NewConfirm builds the prompt for deleting ids of alias on host.
func NewConfirm(alias, host string, ids []string) ConfirmModel {
	return ConfirmModel{alias: alias, host: host, ids: ids}
}

func (m ConfirmModel) Init() tea.Cmd { return nil }

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Confirm):
			m.decided, m.confirmed = true, true
			return m, tea.Quit
		case key.Matches(msg, keys.Cancel):
			m.decided, m.confirmed = true, false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.decided {
		if m.confirmed {
			return StyleDim.Render("confirmed") + "\n"
		}
		return StyleDim.Render("cancelled") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleWarning.Render("WARNING: This action cannot be undone."))
	b.WriteString("\n\n")
	shown := m.ids
	if len(shown) > maxPreview {
		shown = shown[:maxPreview]
	}
	for _, id := range shown {
		b.WriteString("  • " + StyleItem.Render(sanitize(id)) + "\n")
	}
	if hidden := len(m.ids) - len(shown); hidden > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  ...and %d more", hidden)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(StylePrompt.Render(Question(m.alias, m.host, len(m.ids))))
	b.WriteString(" " + StyleDim.Render("[y/N]") + "\n")
	return b.String()
}

// Confirmed reports whether the user answered yes.
func (m ConfirmModel) Confirmed() bool { return m.decided && m.confirmed }

// Question is the prompt text without the answer hint.
func Question(alias, host string, n int) string {
	return fmt.Sprintf("Delete %d %s resources from %s?", n, alias, host)
}

// Confirm runs the prompt on in/out and reports the answer. A cancelled
// ctx aborts the prompt with ctx's error.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, alias, host string, ids []string) (bool, error) {
	p := tea.NewProgram(
		NewConfirm(alias, host, ids),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return false, context.Canceled
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	m, ok := final.(ConfirmModel)
	if !ok {
		return false, fmt.Errorf("confirmation prompt: unexpected model %T", final)
	}
	return m.Confirmed(), nil
}

// sanitize drops control characters so ids cannot move the cursor.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
