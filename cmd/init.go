package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillscout/skillscout/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.skillscout/ with a default config and catalog layout",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfgPath, err := config.Path()
	if err != nil {
		return err
	}

	printSection("Init")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	if _, err := os.Stat(cfgPath); err == nil {
		printInfo("", fmt.Sprintf("config already exists: %s", cfgPath))
	} else {
		cfg, err := config.Default()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	}

	catalogDir := filepath.Join(dir, "catalog")
	if err := os.MkdirAll(catalogDir, 0o755); err != nil {
		return fmt.Errorf("cannot create catalog dir %s: %w", catalogDir, err)
	}
	printOK("", fmt.Sprintf("catalog root ready: %s", catalogDir))

	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	printInfo("", "fill in ~/.skillscout/.env to enable embedding-based ranking")
	return nil
}
