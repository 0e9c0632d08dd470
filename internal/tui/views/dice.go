// Package views renders the pieces of the dice screen from a session
// snapshot. Renderers are pure: they read state and return strings.
package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/dice/internal/dice"
	"github.com/berth-dev/dice/internal/session"
	"github.com/berth-dev/dice/internal/tui"
)

// DieSelector renders one tab per die type with the active one highlighted.
func DieSelector(active dice.DieType) string {
	tabs := make([]string, 0, len(dice.Types()))
	for _, t := range dice.Types() {
		if t == active {
			tabs = append(tabs, tui.ActiveTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, tui.InactiveTabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// CountSlider renders "Number of Dice: N" above a ten-step bar.
func CountSlider(count int) string {
	full := strings.Repeat("█", count)
	empty := strings.Repeat("░", session.MaxDice-count)
	bar := tui.ProgressFullStyle.Render(full) + tui.ProgressEmptyStyle.Render(empty)
	return fmt.Sprintf("Number of Dice: %d\n%s", count, bar)
}

// DiceRow renders one face per value with the rolled number underneath.
// fresh highlights the faces right after a roll.
func DiceRow(t dice.DieType, values dice.RollResult, fresh bool) string {
	style := tui.FaceStyle
	if fresh {
		style = tui.LatestFaceStyle
	}
	faces := make([]string, len(values))
	for i, v := range values {
		art := tui.FaceArt(dice.FaceImageKey(t, v))
		label := lipgloss.PlaceHorizontal(lipgloss.Width(art), lipgloss.Center, strconv.Itoa(v))
		faces[i] = style.Render(art) + "\n" + tui.DimStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, faces...)
}

// Total renders "Total: N" for the current result.
func Total(values dice.RollResult) string {
	return "Total: " + tui.TotalStyle.Render(strconv.Itoa(values.Total()))
}
