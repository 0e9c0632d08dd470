package log

import (
	"fmt"
	"io"
	"os"

	"github.com/berth-dev/dice/internal/session"
)

// SessionObserver records session events to a Logger. Write failures are
// reported to Errs (stderr by default) and never reach the session.
type SessionObserver struct {
	Logger *Logger
	Errs   io.Writer
}

// NewSessionObserver returns an observer that appends to l.
func NewSessionObserver(l *Logger) *SessionObserver {
	return &SessionObserver{Logger: l, Errs: os.Stderr}
}

// Observe implements session.Observer.
func (o *SessionObserver) Observe(e session.Event) {
	if err := o.Logger.Append(FromSessionEvent(e)); err != nil && o.Errs != nil {
		fmt.Fprintf(o.Errs, "dice: %v\n", err)
	}
}

// FromSessionEvent converts a session event into a log record.
func FromSessionEvent(e session.Event) LogEvent {
	ev := LogEvent{
		Event: string(e.Kind),
		Die:   e.Die.String(),
		Count: e.Count,
	}
	switch e.Kind {
	case session.EventRolled:
		if e.Roll != nil {
			ev.Time = e.Roll.RolledAt
			ev.RollID = e.Roll.ID
			ev.Values = e.Roll.Values
			ev.Total = e.Roll.Values.Total()
		}
	case session.EventStarted, session.EventHistoryToggled:
		visible := e.HistoryVisible
		ev.Visible = &visible
	}
	return ev
}
