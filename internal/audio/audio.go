// Package audio plays the roll sound. Playback is fire-and-forget: Play
// returns immediately and completion only releases the player process.
package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/berth-dev/dice/internal/session"
)

// Player plays the fixed roll sound once per call.
type Player interface {
	Play()
}

// Result reports how a detached playback ended.
type Result struct {
	Err      error
	Duration time.Duration
}

// Nop plays nothing.
type Nop struct{}

func (Nop) Play() {}

// BellPlayer rings the terminal bell.
type BellPlayer struct {
	Out io.Writer
}

// Play writes BEL to the output, stderr when Out is nil.
func (b BellPlayer) Play() {
	out := b.Out
	if out == nil {
		out = os.Stderr
	}
	_, _ = io.WriteString(out, "\a")
}

// CommandPlayer runs an external command such as "paplay roll.wav" for
// every roll. Each run is detached; there is no way to cancel it.
type CommandPlayer struct {
	name string
	args []string

	// OnDone, if set, is called from the playback goroutine once the
	// process has exited and been released.
	OnDone func(Result)
}

// NewCommandPlayer splits command on whitespace. A leading "~/" in any
// argument is expanded to the user's home directory.
func NewCommandPlayer(command string) (*CommandPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("sound command is empty")
	}
	home, _ := os.UserHomeDir()
	for i, f := range fields {
		if home != "" && strings.HasPrefix(f, "~/") {
			fields[i] = home + f[1:]
		}
	}
	return &CommandPlayer{name: fields[0], args: fields[1:]}, nil
}

// Play starts the command in the background and returns at once.
func (p *CommandPlayer) Play() {
	go p.run()
}

func (p *CommandPlayer) run() {
	start := time.Now()
	cmd := exec.Command(p.name, p.args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	var err error
	if err = cmd.Start(); err != nil {
		err = fmt.Errorf("start sound player %s: %w", p.name, err)
	} else if err = cmd.Wait(); err != nil {
		err = fmt.Errorf("sound player %s: %w", p.name, err)
	}

	if p.OnDone != nil {
		p.OnDone(Result{Err: err, Duration: time.Since(start)})
	}
}

// RollTrigger plays a sound whenever a session rolls.
type RollTrigger struct {
	Player Player
}

// Observe implements session.Observer.
func (t RollTrigger) Observe(e session.Event) {
	if e.Kind == session.EventRolled && t.Player != nil {
		t.Player.Play()
	}
}
