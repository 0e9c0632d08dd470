// Package log provides structured event logging.
// This file appends JSON events to .dice/log.jsonl.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSessionStarted = "session_started"
	EventDieSelected    = "die_selected"
	EventCountSelected  = "count_selected"
	EventRolled         = "rolled"
	EventHistoryToggled = "history_toggled"
	EventHistoryReset   = "history_reset"
	EventSoundReleased  = "sound_released"
	EventSoundFailed    = "sound_failed"
)

// LogEvent represents a single structured event written to the log.
type LogEvent struct {
	Time       time.Time `json:"time"`
	Event      string    `json:"event"`
	RollID     string    `json:"roll,omitempty"`
	Die        string    `json:"die,omitempty"`
	Count      int       `json:"count,omitempty"`
	Values     []int     `json:"values,omitempty"`
	Total      int       `json:"total,omitempty"`
	Visible    *bool     `json:"visible,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms,omitempty"`
}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// NewLogger creates a Logger that writes to .dice/log.jsonl inside dir.
// Creates the .dice/ directory if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir string) (*Logger, error) {
	diceDir := filepath.Join(dir, ".dice")
	if err := os.MkdirAll(diceDir, 0755); err != nil {
		return nil, fmt.Errorf("create .dice directory: %w", err)
	}

	return &Logger{
		path: filepath.Join(diceDir, "log.jsonl"),
	}, nil
}

// OpenLogger returns a Logger for reading an existing log without creating
// any directories.
func OpenLogger(dir string) *Logger {
	return &Logger{path: filepath.Join(dir, ".dice", "log.jsonl")}
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// The file is opened in append mode, written to, and then closed.
// Thread-safe via mutex: sound completion logs from its own goroutine.
func (l *Logger) Append(event LogEvent) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}
