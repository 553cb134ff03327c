package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders text for the terminal. Rendering is best-effort: any
// renderer problem falls back to the raw text.
func Markdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
