package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/teamforge/teamforge-ctl/internal/analyzer"
	"github.com/teamforge/teamforge-ctl/internal/config"
	"github.com/teamforge/teamforge-ctl/internal/tui"
)

var (
	analyzeJSON bool
	analyzeSave bool
	analyzePick bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a project directory and suggest agents",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the analysis as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the analysis to .teamforge/config.json")
	analyzeCmd.Flags().BoolVar(&analyzePick, "pick", false, "Interactively pick suggested agents (implies --save)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	analysis, err := analyzer.New().Analyze(root)
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			return err
		}
	} else {
		printAnalysis(os.Stdout, analysis)
	}

	activeAgents := analysis.SuggestedAgents

	if analyzePick {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}

		result, err := tui.PickAgents(lib.Agents, analysis.SuggestedAgents)
		if err != nil {
			return err
		}
		if !result.Confirmed {
			logInfo("Selection cancelled, config not written")
			return nil
		}
		activeAgents = result.Selected
	}

	if analyzeSave || analyzePick {
		if err := saveAnalysis(root, analysis, activeAgents); err != nil {
			return err
		}
		logSuccess("Config written to %s", filepath.Join(root, config.DirName, config.FileName))
	}

	return nil
}

// printAnalysis renders the analysis as an aligned table.
func printAnalysis(out io.Writer, analysis *analyzer.Analysis) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Project Type:\t%s\n", analysis.ProjectType)
	fmt.Fprintf(w, "Technologies:\t%s\n", joinOrDash(analysis.DetectedTechnologies))
	fmt.Fprintf(w, "Total Files:\t%d\n", analysis.TotalFiles)
	fmt.Fprintf(w, "Suggested Agents:\t%s\n", joinOrDash(analysis.SuggestedAgents))
	w.Flush()

	if len(analysis.FileCounts) == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "File Types:")
	ext := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, line := range extensionLines(analysis.FileCounts) {
		fmt.Fprintln(ext, line)
	}
	ext.Flush()
}

// extensionLines orders the histogram by count descending, then extension.
func extensionLines(fileCounts map[string]int) []string {
	exts := make([]string, 0, len(fileCounts))
	for ext := range fileCounts {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool {
		if fileCounts[exts[i]] != fileCounts[exts[j]] {
			return fileCounts[exts[i]] > fileCounts[exts[j]]
		}
		return exts[i] < exts[j]
	})

	lines := make([]string, len(exts))
	for i, ext := range exts {
		lines[i] = fmt.Sprintf("  .%s\t%d", ext, fileCounts[ext])
	}
	return lines
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// saveAnalysis writes the analysis into the project config, preserving an
// existing config's customizations.
func saveAnalysis(root string, analysis *analyzer.Analysis, activeAgents []string) error {
	cfg := config.Default(filepath.Base(root), analysis.ProjectType.String(), root, analysis.DetectedTechnologies)
	if existing, err := config.Load(root); err == nil {
		cfg.Customizations = existing.Customizations
	}
	cfg.ActiveAgents = activeAgents

	if err := config.InitLayout(root); err != nil {
		return err
	}
	return config.Save(cfg, root)
}
