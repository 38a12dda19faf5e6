package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teamforge/teamforge-ctl/internal/errors"
	"github.com/teamforge/teamforge-ctl/internal/logging"
)

// maxWalkDepth bounds the directory walk to this many levels below the
// project root. Deep or symlink-cyclic trees are cut off rather than
// traversed to completion.
const maxWalkDepth = 5

// Analyzer orchestrates manifest parsing, directory statistics,
// classification, and agent suggestion for a project directory.
type Analyzer struct {
	parser *Parser
}

// New creates a new project analyzer.
func New() *Analyzer {
	return &Analyzer{parser: NewParser()}
}

// Analyze inspects the project at root and returns a single analysis
// result. A missing or non-directory root is a fatal error; malformed
// manifests and unreadable directory entries are skipped.
func (a *Analyzer) Analyze(root string) (*Analysis, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ProjectNotFound(root)
		}
		return nil, errors.Wrap(errors.ExitProjectNotFound, "failed to access project path", err)
	}
	if !info.IsDir() {
		return nil, errors.NotADirectory(root)
	}

	logging.Debug("analyzing project", "path", root)

	technologies := a.gatherEvidence(root)
	fileCounts, totalFiles := walkFileStats(root)

	projectType := classify(technologies, fileCounts, totalFiles)
	suggested := suggestAgents(projectType, technologies)

	technologies = sortedUnique(technologies)

	logging.Debug("project analysis complete",
		"type", projectType.String(),
		"technologies", len(technologies),
		"totalFiles", totalFiles,
	)

	return &Analysis{
		ProjectType:          projectType,
		DetectedTechnologies: technologies,
		FileCounts:           fileCounts,
		TotalFiles:           totalFiles,
		SuggestedAgents:      suggested,
	}, nil
}

// gatherEvidence probes for each known manifest at the project root and
// merges the parsed tags into one evidence list. A manifest that is absent,
// unreadable, or malformed contributes nothing.
func (a *Analyzer) gatherEvidence(root string) []string {
	var technologies []string

	for _, kind := range manifestKinds {
		content, err := os.ReadFile(filepath.Join(root, kind.name))
		if err != nil {
			continue
		}

		tags, err := kind.parse(a.parser, content)
		if err != nil {
			logging.Debug("manifest parse failed", "manifest", kind.name, "error", err)
			continue
		}
		technologies = append(technologies, tags...)
	}

	return technologies
}

// walkFileStats walks the tree below root with an explicit stack, counting
// regular files and tallying extensions. Unreadable directories are
// skipped; symlinked directories are not followed.
func walkFileStats(root string) (map[string]int, int) {
	fileCounts := make(map[string]int)
	totalFiles := 0

	type dirFrame struct {
		path  string
		depth int
	}

	stack := []dirFrame{{path: root, depth: 0}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(frame.path)
		if err != nil {
			logging.Debug("skipping unreadable directory", "path", frame.path, "error", err)
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				if frame.depth+1 < maxWalkDepth {
					stack = append(stack, dirFrame{
						path:  filepath.Join(frame.path, entry.Name()),
						depth: frame.depth + 1,
					})
				}
				continue
			}
			if !entry.Type().IsRegular() {
				continue
			}

			totalFiles++
			if ext := fileExtension(entry.Name()); ext != "" {
				fileCounts[ext]++
			}
		}
	}

	return fileCounts, totalFiles
}

// fileExtension returns the extension without the leading dot, or "" for
// extensionless names and dotfiles like .gitignore.
func fileExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}

// classify assigns exactly one project type from the evidence. The rules
// are evaluated in fixed priority order; earlier rules win ties. A project
// with both frontend and backend signals is always WebFullstack, even when
// mobile or desktop signals are also present.
func classify(technologies []string, fileCounts map[string]int, totalFiles int) ProjectType {
	hasFrontend := anyTagIn(technologies, frontendTags)
	hasBackend := anyTagIn(technologies, backendTags)
	hasDesktop := anyTagIn(technologies, desktopTags)

	hasMobile := anyTagIn(technologies, mobileTags)
	if !hasMobile {
		for _, ext := range mobileExtensions {
			if _, ok := fileCounts[ext]; ok {
				hasMobile = true
				break
			}
		}
	}

	switch {
	case hasFrontend && hasBackend:
		return WebFullstack
	case hasBackend && !hasMobile && !hasDesktop:
		return BackendApi
	case hasFrontend && !hasBackend && !hasMobile && !hasDesktop:
		return Frontend
	case hasMobile:
		return Mobile
	case hasDesktop:
		return Desktop
	case totalFiles < 10:
		return Library
	default:
		return Unknown
	}
}

// suggestAgents derives the suggested agent ids from the classification and
// the technology evidence. The result is deduplicated and sorted.
func suggestAgents(projectType ProjectType, technologies []string) []string {
	agents := append([]string{}, baseAgents...)
	agents = append(agents, agentsByType[projectType]...)

	for _, tech := range technologies {
		if strings.Contains(tech, "docker") {
			agents = append(agents, "docker-specialist")
			break
		}
	}

	if anyTagIn(technologies, databaseTags) {
		agents = append(agents, "database-designer")
	}

	if anyTagIn(technologies, testFrameworkTags) {
		agents = append(agents, "e2e-tester")
	}

	return sortedUnique(agents)
}

func anyTagIn(technologies []string, set map[string]bool) bool {
	for _, tech := range technologies {
		if set[tech] {
			return true
		}
	}
	return false
}

func sortedUnique(items []string) []string {
	if len(items) == 0 {
		return []string{}
	}
	sort.Strings(items)
	out := items[:0]
	for i, item := range items {
		if i == 0 || item != items[i-1] {
			out = append(out, item)
		}
	}
	return out
}
