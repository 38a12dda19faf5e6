package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teamforge/teamforge-ctl/internal/logging"
)

var (
	verbose  bool
	jsonLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "teamforge-ctl",
	Short: "TeamForge project analysis and agent management CLI",
	Long: `teamforge-ctl analyzes a project directory, classifies it, and manages
the specialist agents suggested for it.

The analyzer reads known manifest files (package.json, requirements.txt,
Cargo.toml, go.mod) and file statistics to classify the project, then
suggests agent templates from the embedded library.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonLogs, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
