package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teamforge/teamforge-ctl/internal/analyzer"
	"github.com/teamforge/teamforge-ctl/internal/config"
	"github.com/teamforge/teamforge-ctl/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage a project's TeamForge configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Analyze a project and create its initial config",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Print a project's config",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a project's config for problems",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	if config.Exists(root) {
		return errors.ValidationError("config already exists, use analyze --save to refresh it")
	}

	analysis, err := analyzer.New().Analyze(root)
	if err != nil {
		return err
	}

	if err := config.InitLayout(root); err != nil {
		return errors.ConfigError("failed to initialize project layout", err)
	}

	cfg := config.Default(filepath.Base(root), analysis.ProjectType.String(), root, analysis.DetectedTechnologies)
	if err := config.Save(cfg, root); err != nil {
		return errors.ConfigError("failed to save config", err)
	}

	logSuccess("Initialized %s (%s)", filepath.Join(root, config.DirName), analysis.ProjectType)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return errors.ConfigError("failed to load config", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return errors.ConfigError("failed to load config", err)
	}

	warnings := cfg.Validate()
	if len(warnings) == 0 {
		logSuccess("Config is valid")
		return nil
	}

	for _, warning := range warnings {
		logWarning("%s", warning)
	}
	return nil
}
