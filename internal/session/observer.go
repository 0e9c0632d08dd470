package session

import "github.com/berth-dev/dice/internal/dice"

// EventKind identifies what changed in a session.
type EventKind string

const (
	EventStarted        EventKind = "session_started"
	EventDieSelected    EventKind = "die_selected"
	EventCountSelected  EventKind = "count_selected"
	EventRolled         EventKind = "rolled"
	EventHistoryToggled EventKind = "history_toggled"
	EventHistoryReset   EventKind = "history_reset"
)

// Event describes a state change. Roll is set only for EventRolled.
type Event struct {
	Kind           EventKind
	Die            dice.DieType
	Count          int
	Roll           *Roll
	HistoryVisible bool
}

// Observer is notified after the session state has changed. Observers run
// synchronously on the caller's goroutine and must not call back into the
// session.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

func (s *Session) notify(e Event) {
	for _, o := range s.observers {
		o.Observe(e)
	}
}
