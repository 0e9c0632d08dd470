package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/berth-dev/dice/internal/log"
	"github.com/berth-dev/dice/internal/testutil"
)

// run executes the root command with args, starting from default flags.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t, rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags puts every flag of cmd and its subcommands back to its default
// and clears its changed mark.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func TestRollPrintsRollsAndHistory(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "roll", "--dir", dir, "--no-sound",
		"--die", "d6", "--count", "3", "--times", "11", "--seed", "5")
	if err != nil {
		t.Fatalf("roll: %v\n%s", err, out)
	}

	if !strings.Contains(out, "#1 3d6: ") || !strings.Contains(out, "#11 3d6: ") {
		t.Errorf("expected eleven numbered rolls:\n%s", out)
	}
	if got := strings.Count(out, "Roll: "); got != 10 {
		t.Errorf("history should hold 10 rolls, got %d:\n%s", got, out)
	}

	events, err := log.OpenLogger(dir).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	rolled := 0
	for _, e := range events {
		if e.Event == log.EventRolled {
			rolled++
		}
	}
	if rolled != 11 {
		t.Errorf("expected 11 rolled events, got %d", rolled)
	}
}

func TestRollSeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	args := []string{"roll", "--dir", dir, "--no-sound", "--no-log", "--quiet",
		"--die", "D20", "--count", "4", "--times", "3", "--seed", "99"}
	first, err := run(t, args...)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	second, err := run(t, args...)
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if first != second {
		t.Errorf("same seed gave different output:\n%s\n---\n%s", first, second)
	}
	if strings.Contains(first, "Roll History") {
		t.Error("--quiet should skip the history")
	}
	if _, err := os.Stat(filepath.Join(dir, ".dice", "log.jsonl")); err == nil {
		t.Error("--no-log should not create a log file")
	}
}

func TestRollUsesConfigDefaults(t *testing.T) {
	dir := testutil.TempProject(t, testutil.ConfiguredProject())
	out, err := run(t, "roll", "--dir", dir, "--no-sound", "--seed", "3")
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if !strings.Contains(out, "#1 3d20: ") {
		t.Errorf("expected one 3d20 roll from config:\n%s", out)
	}
	if strings.Contains(out, "Roll History") {
		t.Error("config hides the history")
	}
}

func TestRollRejectsUnknownDie(t *testing.T) {
	_, err := run(t, "roll", "--dir", t.TempDir(), "--no-sound", "--no-log", "--die", "d7", "--times", "1")
	if err == nil || !strings.Contains(err.Error(), "unknown die type") {
		t.Errorf("expected unknown die error, got %v", err)
	}
}

func TestRollRejectsZeroTimes(t *testing.T) {
	_, err := run(t, "roll", "--dir", t.TempDir(), "--no-sound", "--no-log", "--die", "d6", "--times", "0")
	if err == nil {
		t.Error("expected error for --times 0")
	}
}

func TestLogCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "roll", "--dir", dir, "--no-sound", "--quiet",
		"--die", "d8", "--count", "2", "--times", "2", "--seed", "1"); err != nil {
		t.Fatalf("roll: %v", err)
	}

	out, err := run(t, "log", "--dir", dir, "--last", "1")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if !strings.Contains(out, "rolled") || !strings.Contains(out, "2xD8") {
		t.Errorf("expected the last roll event:\n%s", out)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Errorf("--last 1 should print one line:\n%s", out)
	}
}

func TestInitWritesConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "init", "--dir", dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "config.yaml") {
		t.Errorf("unexpected output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, ".dice", "config.yaml")); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if _, err := run(t, "init", "--dir", dir); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := run(t, "init", "--dir", dir, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestFlagsDoNotCarryOver(t *testing.T) {
	dir := testutil.TempProject(t, testutil.ConfiguredProject())
	if _, err := run(t, "roll", "--dir", dir, "--no-sound", "--quiet",
		"--die", "d4", "--count", "7", "--times", "2"); err != nil {
		t.Fatalf("first roll: %v", err)
	}

	out, err := run(t, "roll", "--dir", dir, "--no-sound", "--seed", "8")
	if err != nil {
		t.Fatalf("second roll: %v", err)
	}
	if !strings.Contains(out, "#1 3d20: ") {
		t.Errorf("second roll should use config die and count:\n%s", out)
	}
	if strings.Contains(out, "#2 ") {
		t.Errorf("--times should return to 1:\n%s", out)
	}
}

func TestLogCommandEmptyShowsPath(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "log", "--dir", dir)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	want := filepath.Join(dir, ".dice", "log.jsonl")
	if !strings.Contains(out, "No events logged in "+want) {
		t.Errorf("expected the log path in:\n%s", out)
	}
}
