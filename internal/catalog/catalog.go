package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed library.json
var libraryJSON []byte

// Template is a single agent template from the embedded library.
type Template struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	Category     string   `json:"category"`
	Template     string   `json:"template"`
	SuggestedFor []string `json:"suggested_for"`
}

// Library holds all embedded agent templates.
type Library struct {
	Version    string     `json:"version"`
	Agents     []Template `json:"agents"`
	Categories []string   `json:"categories"`
}

var (
	loadOnce sync.Once
	library  *Library
	loadErr  error
)

// Load parses the embedded library. The result is cached; the library is
// read-only after the first call.
func Load() (*Library, error) {
	loadOnce.Do(func() {
		var lib Library
		if err := json.Unmarshal(libraryJSON, &lib); err != nil {
			loadErr = fmt.Errorf("failed to parse embedded agent library: %w", err)
			return
		}
		library = &lib
	})
	return library, loadErr
}

// Lookup returns the template with the given id, or nil if absent.
func (l *Library) Lookup(id string) *Template {
	for i := range l.Agents {
		if l.Agents[i].ID == id {
			return &l.Agents[i]
		}
	}
	return nil
}

// ByCategory returns all templates in the given category.
func (l *Library) ByCategory(category string) []Template {
	var matches []Template
	for _, agent := range l.Agents {
		if agent.Category == category {
			matches = append(matches, agent)
		}
	}
	return matches
}

// Search returns templates whose name, description, or tags contain the
// keyword, case-insensitively.
func (l *Library) Search(keyword string) []Template {
	keyword = strings.ToLower(keyword)

	var matches []Template
	for _, agent := range l.Agents {
		if strings.Contains(strings.ToLower(agent.Name), keyword) ||
			strings.Contains(strings.ToLower(agent.Description), keyword) {
			matches = append(matches, agent)
			continue
		}
		for _, tag := range agent.Tags {
			if strings.Contains(strings.ToLower(tag), keyword) {
				matches = append(matches, agent)
				break
			}
		}
	}
	return matches
}

// SuggestedFor returns templates suggested for any of the given
// technologies. Matching is bidirectional substring containment, so a
// detected "react-native" tag matches a template suggested for "react"
// and vice versa.
func (l *Library) SuggestedFor(technologies []string) []Template {
	var matches []Template
	for _, agent := range l.Agents {
		if suggestedForAny(agent.SuggestedFor, technologies) {
			matches = append(matches, agent)
		}
	}
	return matches
}

func suggestedForAny(suggested, technologies []string) bool {
	for _, s := range suggested {
		s = strings.ToLower(s)
		for _, tech := range technologies {
			tech = strings.ToLower(tech)
			if strings.Contains(tech, s) || strings.Contains(s, tech) {
				return true
			}
		}
	}
	return false
}

// agentFileTemplate renders an agent markdown file: YAML frontmatter, the
// template body, and optional custom instructions.
var agentFileTemplate = template.Must(template.New("agent").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`---
name: {{.Agent.Name}}
description: {{.Agent.Description}}
tags: [{{join .Agent.Tags ", "}}]
---

{{.Agent.Template}}{{if .Instructions}}

## Custom Instructions

{{.Instructions}}{{end}}
`))

// Render produces the agent markdown file content for a template,
// appending custom instructions when provided.
func Render(agent *Template, customInstructions string) (string, error) {
	var sb strings.Builder
	err := agentFileTemplate.Execute(&sb, struct {
		Agent        *Template
		Instructions string
	}{agent, customInstructions})
	if err != nil {
		return "", fmt.Errorf("failed to render agent %s: %w", agent.ID, err)
	}
	return sb.String(), nil
}
