// Package app provides the main TUI application that wires the dice
// session to the views.
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/dice/internal/dice"
	"github.com/berth-dev/dice/internal/session"
	"github.com/berth-dev/dice/internal/tui"
	"github.com/berth-dev/dice/internal/tui/views"
)

// App is the Bubble Tea model for the dice screen. It owns no dice state
// of its own; everything is read from and dispatched to the session.
type App struct {
	session *session.Session
	keys    tui.KeyMap
	help    help.Model

	// fresh is true between a roll and the next state change, so the new
	// faces can be highlighted.
	fresh bool

	width  int
	height int
}

// New creates an App driving the given session.
func New(s *session.Session) *App {
	return &App{
		session: s,
		keys:    tui.DefaultKeyMap,
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Session returns the session the app dispatches to.
func (a *App) Session() *session.Session {
	return a.session
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Roll):
		a.session.Roll()
		a.fresh = true
		return a, nil

	case key.Matches(msg, a.keys.PrevDie):
		a.session.SelectDieType(stepDie(a.session.DieType(), -1))

	case key.Matches(msg, a.keys.NextDie):
		a.session.SelectDieType(stepDie(a.session.DieType(), 1))

	case key.Matches(msg, a.keys.PickDie):
		types := dice.Types()
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(types) {
			a.session.SelectDieType(types[idx])
		}

	case key.Matches(msg, a.keys.MoreDice):
		a.session.SelectDiceCount(a.session.Count() + 1)

	case key.Matches(msg, a.keys.LessDice):
		a.session.SelectDiceCount(a.session.Count() - 1)

	case key.Matches(msg, a.keys.ToggleHistory):
		a.session.ToggleHistoryVisible()
		return a, nil

	case key.Matches(msg, a.keys.ResetHistory):
		a.session.ResetHistory()
		return a, nil

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil

	default:
		return a, nil
	}

	a.fresh = false
	return a, nil
}

// stepDie moves through the die types, wrapping at either end.
func stepDie(current dice.DieType, delta int) dice.DieType {
	types := dice.Types()
	for i, t := range types {
		if t == current {
			return types[(i+delta+len(types))%len(types)]
		}
	}
	return dice.D6
}

// View renders the current application state.
func (a *App) View() string {
	snap := a.session.Snapshot()

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Dice Roller"))
	b.WriteString("\n\n")
	b.WriteString(views.DieSelector(snap.Die))
	b.WriteString("\n\n")
	b.WriteString(views.CountSlider(snap.Count))
	b.WriteString("\n\n")
	b.WriteString(views.DiceRow(snap.Die, snap.Current, a.fresh))
	b.WriteString("\n")
	b.WriteString(views.Total(snap.Current))
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("t: " + views.HistoryToggleLabel(snap.HistoryVisible)))

	content := b.String()
	if snap.HistoryVisible {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", views.History(snap.History, a.panelWidth()))
	}
	content = lipgloss.JoinVertical(lipgloss.Left, content, "", a.help.View(a.keys))

	boxed := tui.BoxStyle.Render(content)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, boxed)
}

func (a *App) panelWidth() int {
	// Ten faces side by side are the widest row on screen.
	w := lipgloss.Width(views.DiceRow(dice.D6, dice.Ones(session.MaxDice), false))
	if a.width > 0 && a.width-8 < w {
		w = a.width - 8
	}
	if w < 20 {
		w = 20
	}
	return w
}
