// Package session holds the state of one dice-rolling session: the selected
// die, how many dice to roll, the current result and a short roll history.
//
// A Session is owned by a single caller (the TUI update loop or a CLI
// command) and is not safe for concurrent use.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/berth-dev/dice/internal/dice"
)

const (
	MinDice    = 1
	MaxDice    = 10
	MaxHistory = 10
)

// Roll is one entry in the roll history.
type Roll struct {
	ID       string
	Die      dice.DieType
	Values   dice.RollResult
	RolledAt time.Time
}

// Snapshot is a read-only copy of session state for renderers.
type Snapshot struct {
	Die            dice.DieType
	Count          int
	Current        dice.RollResult
	History        []Roll
	HistoryVisible bool
}

// Session is the mutable state behind the dice screen.
type Session struct {
	die            dice.DieType
	count          int
	current        dice.RollResult
	history        []Roll
	historyVisible bool

	src       dice.Source
	now       func() time.Time
	observers []Observer
}

// Option configures a Session at construction.
type Option func(*Session)

// WithSource sets the random source used by Roll.
func WithSource(src dice.Source) Option {
	return func(s *Session) { s.src = src }
}

// WithClock overrides the time source used to stamp rolls.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithObserver registers an observer notified after each state change.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observers = append(s.observers, o) }
}

// WithDefaults overrides the starting die, count and history visibility.
// An invalid die keeps D6; the count is clamped like SelectDiceCount.
func WithDefaults(die dice.DieType, count int, showHistory bool) Option {
	return func(s *Session) {
		if die.Valid() {
			s.die = die
		}
		s.count = clampCount(count)
		s.current = dice.Ones(s.count)
		s.historyVisible = showHistory
	}
}

// New creates a session with D6, one die, empty history and the history
// view visible.
func New(opts ...Option) *Session {
	s := &Session{
		die:            dice.D6,
		count:          MinDice,
		current:        dice.Ones(MinDice),
		history:        make([]Roll, 0, MaxHistory+1),
		historyVisible: true,
		src:            dice.NewSource(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.notify(Event{Kind: EventStarted, Die: s.die, Count: s.count, HistoryVisible: s.historyVisible})
	return s
}

// SelectDieType changes the die used by the next roll. Count, current
// result and history are left untouched.
func (s *Session) SelectDieType(t dice.DieType) {
	if !t.Valid() {
		return
	}
	s.die = t
	s.notify(Event{Kind: EventDieSelected, Die: t, Count: s.count})
}

// SelectDiceCount clamps n to [MinDice, MaxDice], stores it and resets the
// current result to n ones. History is kept.
func (s *Session) SelectDiceCount(n int) {
	s.count = clampCount(n)
	s.current = dice.Ones(s.count)
	s.notify(Event{Kind: EventCountSelected, Die: s.die, Count: s.count})
}

// Roll rolls the current number of dice, makes the result current and
// prepends it to the history, evicting the oldest entry past MaxHistory.
func (s *Session) Roll() Roll {
	r := Roll{
		ID:       uuid.New().String(),
		Die:      s.die,
		Values:   dice.Roll(s.src, s.die, s.count),
		RolledAt: s.now().UTC(),
	}
	s.current = copyValues(r.Values)

	s.history = append(s.history, Roll{})
	copy(s.history[1:], s.history)
	s.history[0] = r
	if len(s.history) > MaxHistory {
		s.history = s.history[:MaxHistory]
	}

	// Observers and the caller each get their own values so neither can
	// reach into the session.
	seen := r.clone()
	s.notify(Event{Kind: EventRolled, Die: s.die, Count: s.count, Roll: &seen})
	return r.clone()
}

// ToggleHistoryVisible flips whether the history view is shown.
func (s *Session) ToggleHistoryVisible() {
	s.historyVisible = !s.historyVisible
	s.notify(Event{Kind: EventHistoryToggled, Die: s.die, Count: s.count, HistoryVisible: s.historyVisible})
}

// ResetHistory empties the history. Die, count and current result stay.
func (s *Session) ResetHistory() {
	s.history = s.history[:0]
	s.notify(Event{Kind: EventHistoryReset, Die: s.die, Count: s.count})
}

func (s *Session) DieType() dice.DieType { return s.die }

func (s *Session) Count() int { return s.count }

func (s *Session) HistoryVisible() bool { return s.historyVisible }

// Current returns a copy of the most recent result, all ones before the
// first roll or after a count change.
func (s *Session) Current() dice.RollResult {
	return copyValues(s.current)
}

// History returns a copy of the history, most recent first.
func (s *Session) History() []Roll {
	out := make([]Roll, len(s.history))
	for i, r := range s.history {
		out[i] = r.clone()
	}
	return out
}

// Snapshot returns all session state at once.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Die:            s.die,
		Count:          s.count,
		Current:        s.Current(),
		History:        s.History(),
		HistoryVisible: s.historyVisible,
	}
}

func (r Roll) clone() Roll {
	r.Values = copyValues(r.Values)
	return r
}

func copyValues(v dice.RollResult) dice.RollResult {
	out := make(dice.RollResult, len(v))
	copy(out, v)
	return out
}

func clampCount(n int) int {
	if n < MinDice {
		return MinDice
	}
	if n > MaxDice {
		return MaxDice
	}
	return n
}
