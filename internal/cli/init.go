// init.go implements the "dice init" command that writes a default config.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/berth-dev/dice/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .dice/config.yaml",
	Long: `Create .dice/config.yaml with the default session settings so they
can be edited. An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var forceFlag bool

func init() {
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}

	path := filepath.Join(config.Dir(dir), "config.yaml")
	if _, err := os.Stat(path); err == nil && !forceFlag {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}

	if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
