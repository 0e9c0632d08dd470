// wire.go builds a session with its event log and roll sound attached.
package cli

import (
	"fmt"
	"os"

	"github.com/berth-dev/dice/internal/audio"
	"github.com/berth-dev/dice/internal/config"
	"github.com/berth-dev/dice/internal/dice"
	"github.com/berth-dev/dice/internal/log"
	"github.com/berth-dev/dice/internal/session"
)

// newSession creates a session seeded from cfg. Extra options (a seeded
// source for instance) are applied after the defaults.
func newSession(cfg *config.Config, dir string, extra ...session.Option) (*session.Session, error) {
	opts := []session.Option{
		session.WithDefaults(cfg.Session.Die, cfg.Session.Count, cfg.Session.ShowHistory),
	}

	var logger *log.Logger
	if cfg.Log.Enabled {
		var err error
		logger, err = log.NewLogger(dir)
		if err != nil {
			return nil, fmt.Errorf("opening event log: %w", err)
		}
		opts = append(opts, session.WithObserver(log.NewSessionObserver(logger)))
	}

	player, err := newPlayer(cfg.Sound, logger)
	if err != nil {
		return nil, err
	}
	opts = append(opts, session.WithObserver(audio.RollTrigger{Player: player}))

	opts = append(opts, extra...)
	return session.New(opts...), nil
}

// newPlayer picks the roll sound: nothing, the terminal bell, or an
// external command whose release is recorded in the event log.
func newPlayer(cfg config.SoundConfig, logger *log.Logger) (audio.Player, error) {
	if !cfg.Enabled {
		return audio.Nop{}, nil
	}
	if cfg.Command == "" {
		return audio.BellPlayer{}, nil
	}

	p, err := audio.NewCommandPlayer(cfg.Command)
	if err != nil {
		return nil, fmt.Errorf("configuring sound: %w", err)
	}
	p.OnDone = func(r audio.Result) {
		ev := log.LogEvent{Event: log.EventSoundReleased, DurationMs: r.Duration.Milliseconds()}
		if r.Err != nil {
			ev.Event = log.EventSoundFailed
			ev.Error = r.Err.Error()
		}
		if logger == nil {
			return
		}
		if err := logger.Append(ev); err != nil {
			fmt.Fprintf(os.Stderr, "dice: %v\n", err)
		}
	}
	return p, nil
}

// parseDie resolves a --die flag, falling back when it is empty.
func parseDie(flag string, fallback dice.DieType) (dice.DieType, error) {
	if flag == "" {
		return fallback, nil
	}
	return dice.ParseDieType(flag)
}
