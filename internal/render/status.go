package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("#10b981")
	colorRed   = lipgloss.Color("#ef4444")
)

const (
	iconOK   = "✔"
	iconFail = "✖"
)

// StatusLine is one per-item or fatal outcome line:
// "<icon> <status> <alias> <target> <message>". Empty parts are omitted.
type StatusLine struct {
	OK      bool
	Status  int
	Alias   string
	Target  string
	Message string
}

// String returns the unstyled line.
func (s StatusLine) String() string {
	return strings.Join(s.parts(s.icon()), " ")
}

func (s StatusLine) icon() string {
	if s.OK {
		return iconOK
	}
	return iconFail
}

func (s StatusLine) parts(icon string) []string {
	parts := []string{icon}
	if s.Status > 0 {
		parts = append(parts, strconv.Itoa(s.Status))
	}
	for _, p := range []string{s.Alias, s.Target, s.Message} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// WriteStatus writes s to w, coloring the icon when w is a terminal.
func WriteStatus(w io.Writer, s StatusLine) error {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Bold(true).Foreground(colorRed)
	if s.OK {
		style = r.NewStyle().Bold(true).Foreground(colorGreen)
	}
	_, err := fmt.Fprintln(w, strings.Join(s.parts(style.Render(s.icon())), " "))
	return err
}
