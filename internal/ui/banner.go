package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var bannerArt = []string{
	` ███╗   ███╗███████╗ ██████╗ ██╗    ██╗     ██████╗██╗     ██╗ `,
	`████╗ ████║██╔════╝██╔═══██╗██║    ██║    ██╔════╝██║     ██║`,
	`██╔████╔██║█████╗  ██║   ██║██║ █╗ ██║    ██║     ██║     ██║`,
	`██║╚██╔╝██║██╔══╝  ██║   ██║██║███╗██║    ██║     ██║     ██║`,
	`██║ ╚═╝ ██║███████╗╚██████╔╝╚███╔███╔╝    ╚██████╗███████╗██║`,
	`╚═╝     ╚═╝╚══════╝ ╚═════╝  ╚══╝╚══╝      ╚═════╝╚══════╝╚═╝`,
}

// Gradient colors each rune of line on a left-to-right blend between two hex
// colors.
func Gradient(line, fromHex, toHex string) string {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return line
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return line
	}

	runes := []rune(line)
	steps := len(runes)
	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		c := from.BlendRgb(to, t)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// Banner renders the startup art plus the help hint panel.
func Banner() string {
	var b strings.Builder
	for _, line := range bannerArt {
		b.WriteString(Gradient(line, PinkHex, WhiteHex))
		b.WriteString("\n")
	}
	b.WriteString(Panel("https://github.com/QWKiks meow :3 !\nType /help to see the available commands."))
	return b.String()
}
