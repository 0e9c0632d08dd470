// roll.go implements the "dice roll" command for non-interactive rolls.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/berth-dev/dice/internal/dice"
	"github.com/berth-dev/dice/internal/session"
	"github.com/berth-dev/dice/internal/ui"
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll dice without the interactive screen",
	Long: `Roll the configured dice one or more times and print each result
followed by the roll history (at most the last ten rolls).`,
	Args: cobra.NoArgs,
	RunE: runRoll,
}

var (
	dieFlag   string
	countFlag int
	timesFlag int
	seedFlag  uint64
	quietFlag bool
)

func init() {
	rollCmd.Flags().StringVarP(&dieFlag, "die", "d", "", "Die type: D4, D6, D8, D10, D12 or D20 (default: from config)")
	rollCmd.Flags().IntVarP(&countFlag, "count", "n", 0, "Number of dice, clamped to 1-10 (default: from config)")
	rollCmd.Flags().IntVarP(&timesFlag, "times", "t", 1, "How many times to roll")
	rollCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "Seed for reproducible rolls (0 = random)")
	rollCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Print rolls only, without the history")
}

func runRoll(cmd *cobra.Command, args []string) error {
	if timesFlag < 1 {
		return fmt.Errorf("--times must be at least 1, got %d", timesFlag)
	}

	cfg, dir, err := loadConfig()
	if err != nil {
		return err
	}

	die, err := parseDie(dieFlag, cfg.Session.Die)
	if err != nil {
		return err
	}
	cfg.Session.Die = die
	if cmd.Flags().Changed("count") {
		cfg.Session.Count = countFlag
	}

	var extra []session.Option
	if seedFlag != 0 {
		extra = append(extra, session.WithSource(dice.NewSeededSource(seedFlag)))
	}

	sess, err := newSession(cfg, dir, extra...)
	if err != nil {
		return err
	}

	p := printerFor(cmd)
	for i := 1; i <= timesFlag; i++ {
		p.PrintRoll(i, sess.Roll())
	}

	if !quietFlag && sess.HistoryVisible() {
		fmt.Fprintln(cmd.OutOrStdout())
		p.PrintHistory(sess.History())
	}
	return nil
}

// printerFor colors output only when the command writes to the real stdout.
func printerFor(cmd *cobra.Command) *ui.Printer {
	if cmd.OutOrStdout() == os.Stdout {
		return ui.NewPrinter()
	}
	return ui.NewPlainPrinter(cmd.OutOrStdout())
}
