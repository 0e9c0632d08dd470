// log.go implements the "dice log" command that prints recorded events.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berth-dev/dice/internal/log"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recorded session events",
	Long:  `Print the events recorded in .dice/log.jsonl, oldest first.`,
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

var lastFlag int

func init() {
	logCmd.Flags().IntVar(&lastFlag, "last", 0, "Show only the last N events (0 = all)")
}

func runLog(cmd *cobra.Command, args []string) error {
	_, dir, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.OpenLogger(dir)
	events, err := logger.ReadAll()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No events logged in %s.\n", logger.Path())
		return nil
	}
	if lastFlag > 0 && len(events) > lastFlag {
		events = events[len(events)-lastFlag:]
	}

	printerFor(cmd).PrintEvents(events)
	return nil
}
