package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamforge/teamforge-ctl/internal/errors"
	"github.com/teamforge/teamforge-ctl/internal/workspace"
)

var commitMessage string

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Basic git operations on project repositories",
}

var repoCloneCmd = &cobra.Command{
	Use:   "clone <url> <path>",
	Short: "Clone a repository",
	Args:  cobra.ExactArgs(2),
	RunE:  runRepoClone,
}

var repoStatusCmd = &cobra.Command{
	Use:   "status <path>",
	Short: "Show changed files in a repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runRepoStatus,
}

var repoCommitCmd = &cobra.Command{
	Use:   "commit <path> [files...]",
	Short: "Stage files and create a commit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRepoCommit,
}

func init() {
	repoCommitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message")
	repoCommitCmd.MarkFlagRequired("message")

	repoCmd.AddCommand(repoCloneCmd)
	repoCmd.AddCommand(repoStatusCmd)
	repoCmd.AddCommand(repoCommitCmd)
	rootCmd.AddCommand(repoCmd)
}

func runRepoClone(cmd *cobra.Command, args []string) error {
	url, path := args[0], args[1]

	logInfo("Cloning %s...", url)
	if err := workspace.Clone(url, path); err != nil {
		return err
	}

	logSuccess("Cloned to %s", path)
	return nil
}

func runRepoStatus(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !workspace.IsRepo(path) {
		return errors.ValidationError(fmt.Sprintf("not a git repository: %s", path))
	}

	files, err := workspace.Status(path)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		logInfo("Working tree clean")
		return nil
	}
	for _, file := range files {
		fmt.Println(file)
	}
	return nil
}

func runRepoCommit(cmd *cobra.Command, args []string) error {
	path := args[0]
	files := args[1:]

	if !workspace.IsRepo(path) {
		return errors.ValidationError(fmt.Sprintf("not a git repository: %s", path))
	}

	if err := workspace.Commit(path, commitMessage, files); err != nil {
		return err
	}

	if len(files) == 0 {
		logSuccess("Committed all changes")
	} else {
		logSuccess("Committed %d file(s)", len(files))
	}
	return nil
}
