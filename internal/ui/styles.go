// Package ui holds the terminal presentation layer: styles, the gradient
// banner, panels, tables, and markdown rendering. Nothing here carries
// behavioral weight for the agent.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	PinkHex  = "#ffb6c1"
	WhiteHex = "#ffffff"
)

var (
	Pink = lipgloss.Color(PinkHex)

	AccentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Pink)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Pink).
			Padding(0, 1)

	successPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("10")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Pink)
)

// Panel wraps content in a pink rounded border.
func Panel(content string) string {
	return panelStyle.Render(content)
}

// TitledPanel renders a panel with a bold title line above the content.
func TitledPanel(title, content string) string {
	return panelStyle.Render(titleStyle.Render(title) + "\n" + content)
}

// SuccessPanel wraps content in a green border, used for tool success
// markers.
func SuccessPanel(content string) string {
	return successPanelStyle.Render(content)
}

// Table renders headers and rows as a bordered table.
func Table(title string, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Pink)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)

	if title == "" {
		return t.Render()
	}
	return titleStyle.Render(title) + "\n" + t.Render()
}
