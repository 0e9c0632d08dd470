package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/berth-dev/dice/internal/dice"
	"github.com/berth-dev/dice/internal/session"
	"github.com/berth-dev/dice/internal/testutil"
)

func TestAppendAndReadAll(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	if err := l.Append(LogEvent{Event: EventRolled, Die: "D6", Values: []int{3, 4}, Total: 7}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := l.Append(LogEvent{Event: EventHistoryReset}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	events, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Event != EventRolled || events[0].Total != 7 || len(events[0].Values) != 2 {
		t.Errorf("first event: got %+v", events[0])
	}
	if events[0].Time.IsZero() {
		t.Error("Append should stamp a zero Time")
	}
	if events[1].Event != EventHistoryReset {
		t.Errorf("second event: got %q", events[1].Event)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	events, err := OpenLogger(t.TempDir()).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestReadAllBadLine(t *testing.T) {
	dir := testutil.TempProject(t, map[string]string{
		".dice/log.jsonl": "{\"event\":\"rolled\"}\nnot json\n",
	})
	if _, err := OpenLogger(dir).ReadAll(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSessionObserverRecordsRolls(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := session.New(
		session.WithSource(testutil.NewSequenceSource(6, 2)),
		session.WithClock(func() time.Time { return at }),
		session.WithObserver(NewSessionObserver(l)),
	)
	s.SelectDieType(dice.D20)
	s.SelectDiceCount(2)
	r := s.Roll()

	events, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d: %+v", len(events), events)
	}
	if events[0].Event != EventSessionStarted || events[0].Visible == nil || !*events[0].Visible {
		t.Errorf("start event: got %+v", events[0])
	}
	last := events[3]
	if last.Event != EventRolled || last.RollID != r.ID || last.Die != "D20" || last.Total != 8 {
		t.Errorf("roll event: got %+v", last)
	}
	if !last.Time.Equal(at) {
		t.Errorf("roll event time: got %v, want %v", last.Time, at)
	}
}

func TestSessionObserverReportsWriteErrors(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	// Replace the log file with a directory so opening it fails.
	if err := os.Mkdir(filepath.Join(dir, ".dice", "log.jsonl"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var errs bytes.Buffer
	obs := &SessionObserver{Logger: l, Errs: &errs}
	s := session.New(session.WithObserver(obs))
	s.Roll()

	if errs.Len() == 0 {
		t.Error("expected write errors to be reported")
	}
	if len(s.History()) != 1 {
		t.Error("roll must succeed even when logging fails")
	}
}
