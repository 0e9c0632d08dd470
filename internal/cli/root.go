// Package cli defines Cobra command definitions for the dice CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/berth-dev/dice/internal/config"
	"github.com/berth-dev/dice/internal/tui"
	"github.com/berth-dev/dice/internal/tui/app"
)

var version = "dev" // set via ldflags at build time

// settings binds persistent flags and DICE_* environment variables.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "dice",
	Short: "Roll polyhedral dice in your terminal",
	Long: `Dice rolls D4, D6, D8, D10, D12 and D20 dice, one to ten at a time,
and keeps the last ten rolls in a history you can show, hide or restart.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is provided, launch the TUI if TTY, point at
		// "dice roll" otherwise.
		cfg, dir, err := loadConfig()
		if err != nil {
			return err
		}

		sess, err := newSession(cfg, dir)
		if err != nil {
			return err
		}

		return tui.Run(app.New(sess))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .dice/config.yaml from the working directory (or --dir)
// and applies flag and environment overrides.
func loadConfig() (*config.Config, string, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, "", err
	}

	if settings.GetBool("no-sound") {
		cfg.Sound.Enabled = false
	}
	if cmd := settings.GetString("sound-command"); cmd != "" {
		cfg.Sound.Command = cmd
	}
	if settings.GetBool("no-log") {
		cfg.Log.Enabled = false
	}

	return cfg, dir, nil
}

// resolveDir returns --dir (or DICE_DIR), defaulting to the working directory.
func resolveDir() (string, error) {
	if dir := settings.GetString("dir"); dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return wd, nil
}

func init() {
	rootCmd.PersistentFlags().String("dir", "", "Directory holding .dice/ (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-sound", false, "Do not play a sound on each roll")
	rootCmd.PersistentFlags().String("sound-command", "", "Command that plays the roll sound, e.g. \"paplay roll.wav\"")
	rootCmd.PersistentFlags().Bool("no-log", false, "Do not record events to .dice/log.jsonl")

	settings.SetEnvPrefix("dice")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	for _, name := range []string{"dir", "no-sound", "sound-command", "no-log"} {
		if err := settings.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(logCmd)
}
