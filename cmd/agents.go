package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/teamforge/teamforge-ctl/internal/catalog"
	"github.com/teamforge/teamforge-ctl/internal/config"
	"github.com/teamforge/teamforge-ctl/internal/errors"
)

var (
	agentsCategory      string
	installProject      string
	installInstructions string
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Browse and install agent templates",
}

var agentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available agent templates",
	RunE:  runAgentsList,
}

var agentsSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search agent templates by keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runAgentsSearch,
}

var agentsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a rendered agent template",
	Args:  cobra.ExactArgs(1),
	RunE:  runAgentsShow,
}

var agentsInstallCmd = &cobra.Command{
	Use:   "install <id>",
	Short: "Install an agent into a project's .claude/agents directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runAgentsInstall,
}

func init() {
	agentsListCmd.Flags().StringVar(&agentsCategory, "category", "", "Only list agents in this category")
	agentsInstallCmd.Flags().StringVar(&installProject, "project", ".", "Project directory to install into")
	agentsInstallCmd.Flags().StringVar(&installInstructions, "instructions", "", "Custom instructions appended to the agent file")

	agentsCmd.AddCommand(agentsListCmd)
	agentsCmd.AddCommand(agentsSearchCmd)
	agentsCmd.AddCommand(agentsShowCmd)
	agentsCmd.AddCommand(agentsInstallCmd)
	rootCmd.AddCommand(agentsCmd)
}

func runAgentsList(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary()
	if err != nil {
		return err
	}

	agents := lib.Agents
	if agentsCategory != "" {
		agents = lib.ByCategory(agentsCategory)
	}
	if len(agents) == 0 {
		logInfo("No agents found")
		return nil
	}

	printAgentTable(agents)
	return nil
}

func runAgentsSearch(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary()
	if err != nil {
		return err
	}

	agents := lib.Search(args[0])
	if len(agents) == 0 {
		logInfo("No agents matched %q", args[0])
		return nil
	}

	printAgentTable(agents)
	return nil
}

func printAgentTable(agents []catalog.Template) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tDESCRIPTION")
	fmt.Fprintln(w, "--\t--------\t-----------")
	for _, agent := range agents {
		fmt.Fprintf(w, "%s\t%s\t%s\n", agent.ID, agent.Category, agent.Description)
	}
	w.Flush()
}

func runAgentsShow(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary()
	if err != nil {
		return err
	}

	agent := lib.Lookup(args[0])
	if agent == nil {
		return errors.AgentNotFound(args[0])
	}

	content, err := catalog.Render(agent, "")
	if err != nil {
		return err
	}
	fmt.Print(content)
	return nil
}

func runAgentsInstall(cmd *cobra.Command, args []string) error {
	id := args[0]

	lib, err := loadLibrary()
	if err != nil {
		return err
	}
	agent := lib.Lookup(id)
	if agent == nil {
		return errors.AgentNotFound(id)
	}

	project, err := filepath.Abs(installProject)
	if err != nil {
		return err
	}

	content, err := catalog.Render(agent, installInstructions)
	if err != nil {
		return err
	}

	dir, err := config.ClaudeAgentsDir(project)
	if err != nil {
		return errors.ConfigError("failed to prepare agents directory", err)
	}

	path := filepath.Join(dir, id+".md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.ConfigError("failed to write agent file", err)
	}

	// Record the agent as active when the project has a config.
	if config.Exists(project) {
		if cfg, err := config.Load(project); err == nil && !containsString(cfg.ActiveAgents, id) {
			cfg.ActiveAgents = append(cfg.ActiveAgents, id)
			if err := config.Save(cfg, project); err != nil {
				logWarning("Agent installed but config update failed: %v", err)
			}
		}
	}

	logSuccess("Installed %s to %s", id, path)
	return nil
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
