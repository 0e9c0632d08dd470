// Package ui provides plain terminal output for the non-interactive commands.
// This file prints rolls, history and logged events, with ANSI colors when
// stdout is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/berth-dev/dice/internal/dice"
	dicelog "github.com/berth-dev/dice/internal/log"
	"github.com/berth-dev/dice/internal/session"
)

// Printer writes roll output to a writer.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer on stdout, colored when stdout is a TTY.
func NewPrinter() *Printer {
	return &Printer{
		out:   os.Stdout,
		color: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewPlainPrinter creates a Printer without colors on w.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// PrintRoll prints one roll as "#1 3d6: 4, 2, 6 (total 12)".
func (p *Printer) PrintRoll(n int, r session.Roll) {
	values := r.Values.String()
	total := fmt.Sprintf("(total %d)", r.Values.Total())
	if p.color {
		values = "\033[1m" + values + "\033[0m"
		total = "\033[32m" + total + "\033[0m"
	}
	fmt.Fprintf(p.out, "#%d %s: %s %s\n", n, notation(len(r.Values), r.Die), values, total)
}

// PrintHistory prints the roll history, most recent first.
func (p *Printer) PrintHistory(rolls []session.Roll) {
	fmt.Fprintln(p.out, p.dim("Roll History"))
	if len(rolls) == 0 {
		fmt.Fprintln(p.out, "  (empty)")
		return
	}
	for _, r := range rolls {
		fmt.Fprintf(p.out, "  Roll: %s %s\n", r.Values.String(), p.dim("["+notation(len(r.Values), r.Die)+"]"))
	}
}

// PrintEvents prints logged events one per line.
func (p *Printer) PrintEvents(events []dicelog.LogEvent) {
	if len(events) == 0 {
		fmt.Fprintln(p.out, "No events logged.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(p.out, "%s  %-16s %s\n", p.dim(e.Time.Local().Format("2006-01-02 15:04:05")), e.Event, eventDetail(e))
	}
}

func (p *Printer) dim(s string) string {
	if !p.color {
		return s
	}
	return "\033[90m" + s + "\033[0m"
}

// eventDetail returns the right-side text for a logged event.
func eventDetail(e dicelog.LogEvent) string {
	switch e.Event {
	case dicelog.EventRolled:
		values := make([]string, len(e.Values))
		for i, v := range e.Values {
			values[i] = fmt.Sprint(v)
		}
		return fmt.Sprintf("%dx%s: %s (total %d)", e.Count, e.Die, strings.Join(values, ", "), e.Total)
	case dicelog.EventDieSelected:
		return e.Die
	case dicelog.EventCountSelected:
		return fmt.Sprintf("%d dice", e.Count)
	case dicelog.EventSessionStarted, dicelog.EventHistoryToggled:
		if e.Visible != nil && !*e.Visible {
			return "history hidden"
		}
		return "history shown"
	case dicelog.EventSoundReleased:
		return "after " + formatDuration(time.Duration(e.DurationMs)*time.Millisecond)
	case dicelog.EventSoundFailed:
		return e.Error
	default:
		return ""
	}
}

// notation renders a count and die as "3d6".
func notation(count int, t dice.DieType) string {
	return fmt.Sprintf("%dd%d", count, t.Sides())
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}
