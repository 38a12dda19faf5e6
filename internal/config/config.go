// Package config reads and writes the per-project TeamForge configuration
// stored under .teamforge/ in the project root.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
)

const (
	// DirName is the per-project configuration directory.
	DirName = ".teamforge"
	// FileName is the configuration file inside DirName.
	FileName = "config.json"
	// CurrentVersion is written into newly created configs.
	CurrentVersion = "1.0.0"
)

// ProjectInfo describes the analyzed project a config belongs to.
type ProjectInfo struct {
	Name                 string   `json:"name"`
	ProjectType          string   `json:"project_type"`
	Path                 string   `json:"path"`
	DetectedTechnologies []string `json:"detected_technologies"`
}

// Config is the persisted TeamForge configuration for one project.
type Config struct {
	Version        string                     `json:"version"`
	Project        ProjectInfo                `json:"project"`
	ActiveAgents   []string                   `json:"active_agents"`
	Customizations map[string]json.RawMessage `json:"customizations"`
	LastAnalyzed   string                     `json:"last_analyzed"`
}

// projectFile resolves a path inside the project root. Relative components
// in rel cannot escape the root.
func projectFile(projectPath, rel string) (string, error) {
	path, err := securejoin.SecureJoin(projectPath, rel)
	if err != nil {
		return "", fmt.Errorf("invalid project-relative path %q: %w", rel, err)
	}
	return path, nil
}

// Load reads the config from <projectPath>/.teamforge/config.json.
func Load(projectPath string) (*Config, error) {
	configPath, err := projectFile(projectPath, filepath.Join(DirName, FileName))
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config at %s: %w", configPath, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config at %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to <projectPath>/.teamforge/config.json, creating
// the directory if needed.
func Save(cfg *Config, projectPath string) error {
	dir, err := projectFile(projectPath, DirName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(dir, FileName)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", configPath, err)
	}

	return nil
}

// Default creates a fresh config for an analyzed project.
func Default(name, projectType, path string, technologies []string) *Config {
	return &Config{
		Version: CurrentVersion,
		Project: ProjectInfo{
			Name:                 name,
			ProjectType:          projectType,
			Path:                 path,
			DetectedTechnologies: technologies,
		},
		ActiveAgents:   []string{},
		Customizations: map[string]json.RawMessage{},
		LastAnalyzed:   time.Now().UTC().Format(time.RFC3339),
	}
}

// Validate returns warnings for incomplete configs. An empty result means
// the config is complete.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Version == "" {
		warnings = append(warnings, "config version is empty")
	}
	if c.Project.Name == "" {
		warnings = append(warnings, "project name is empty")
	}
	if c.Project.Path == "" {
		warnings = append(warnings, "project path is empty")
	}
	if len(c.ActiveAgents) == 0 {
		warnings = append(warnings, "no active agents configured")
	}

	return warnings
}

// Exists reports whether a config file is present for the project.
func Exists(projectPath string) bool {
	configPath, err := projectFile(projectPath, filepath.Join(DirName, FileName))
	if err != nil {
		return false
	}
	_, err = os.Stat(configPath)
	return err == nil
}

// InitLayout creates the .teamforge directory structure: a presets
// directory and an empty analysis.json if one does not exist yet.
func InitLayout(projectPath string) error {
	presetsDir, err := projectFile(projectPath, filepath.Join(DirName, "presets"))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(presetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create presets directory: %w", err)
	}

	analysisPath, err := projectFile(projectPath, filepath.Join(DirName, "analysis.json"))
	if err != nil {
		return err
	}
	if _, err := os.Stat(analysisPath); os.IsNotExist(err) {
		if err := os.WriteFile(analysisPath, []byte("{}"), 0644); err != nil {
			return fmt.Errorf("failed to write analysis.json: %w", err)
		}
	}

	return nil
}

// ClaudeAgentsDir ensures <projectPath>/.claude/agents exists and returns
// its path. Installed agent files are written there.
func ClaudeAgentsDir(projectPath string) (string, error) {
	dir, err := projectFile(projectPath, filepath.Join(".claude", "agents"))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create agents directory: %w", err)
	}
	return dir, nil
}
