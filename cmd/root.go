package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "skillscout",
	Short:         "skillscout — recommend AI-editor skills matching your project",
	SilenceUsage:  true, // don't print usage on operational errors
	SilenceErrors: true, // Execute reports via printErr
	Long: `skillscout detects the technologies a project uses and recommends
skills from your catalog that match them, ranked by a hybrid
keyword + embedding engine.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printErr("", err.Error())
		os.Exit(1)
	}
}
