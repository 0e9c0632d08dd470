package views

import (
	"strings"

	"github.com/berth-dev/dice/internal/session"
	"github.com/berth-dev/dice/internal/tui"
)

// HistoryToggleLabel is the caption of the show/hide control.
func HistoryToggleLabel(visible bool) string {
	if visible {
		return "Hide History"
	}
	return "Show History"
}

// History renders the "Roll History" panel, most recent roll first.
func History(rolls []session.Roll, width int) string {
	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Roll History"))
	b.WriteString("\n")

	if len(rolls) == 0 {
		b.WriteString(tui.DimStyle.Render("No rolls yet"))
	}
	for i, r := range rolls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Roll: ")
		b.WriteString(r.Values.String())
		b.WriteString(tui.DimStyle.Render("  (" + r.Die.String() + ")"))
	}
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("x: Restart"))

	style := tui.HistoryBoxStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(b.String())
}
