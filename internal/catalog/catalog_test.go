package catalog

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if lib.Version == "" {
		t.Error("library version should not be empty")
	}
	if len(lib.Agents) == 0 {
		t.Fatal("library should contain agents")
	}
	if len(lib.Categories) == 0 {
		t.Error("library should declare categories")
	}
}

func TestLibrary_CoversSuggestedAgents(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Every id the analyzer can suggest must resolve to a template.
	ids := []string{
		"code-reviewer", "test-engineer",
		"fullstack-developer", "api-designer", "frontend-developer", "backend-developer",
		"database-designer", "ux-designer", "mobile-developer",
		"tech-writer", "api-documenter",
		"docker-specialist", "e2e-tester",
	}
	for _, id := range ids {
		if lib.Lookup(id) == nil {
			t.Errorf("library is missing agent %q", id)
		}
	}
}

func TestLibrary_Lookup(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	agent := lib.Lookup("code-reviewer")
	if agent == nil {
		t.Fatal("Lookup(code-reviewer) = nil")
	}
	if agent.Name != "Code Reviewer" {
		t.Errorf("Name = %q, want %q", agent.Name, "Code Reviewer")
	}

	if got := lib.Lookup("no-such-agent"); got != nil {
		t.Errorf("Lookup(no-such-agent) = %v, want nil", got)
	}
}

func TestLibrary_ByCategory(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	docs := lib.ByCategory("documentation")
	if len(docs) == 0 {
		t.Fatal("ByCategory(documentation) returned no agents")
	}
	for _, agent := range docs {
		if agent.Category != "documentation" {
			t.Errorf("agent %s has category %q, want documentation", agent.ID, agent.Category)
		}
	}
}

func TestLibrary_Search(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		keyword string
		wantID  string
	}{
		{"docker", "docker-specialist"},
		{"DOCKER", "docker-specialist"}, // case-insensitive
		{"schema", "database-designer"}, // matches tags
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			results := lib.Search(tt.keyword)
			found := false
			for _, agent := range results {
				if agent.ID == tt.wantID {
					found = true
				}
			}
			if !found {
				t.Errorf("Search(%q) should include %s, got %d results", tt.keyword, tt.wantID, len(results))
			}
		})
	}

	if results := lib.Search("zzz-no-match"); len(results) != 0 {
		t.Errorf("Search(zzz-no-match) = %d results, want 0", len(results))
	}
}

func TestLibrary_SuggestedFor(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	results := lib.SuggestedFor([]string{"react-native"})
	var ids []string
	for _, agent := range results {
		ids = append(ids, agent.ID)
	}

	// Bidirectional substring match: react-native matches templates
	// suggested for react as well as for react-native.
	for _, want := range []string{"mobile-developer", "frontend-developer"} {
		found := false
		for _, id := range ids {
			if id == want {
				found = true
			}
		}
		if !found {
			t.Errorf("SuggestedFor(react-native) should include %s, got %v", want, ids)
		}
	}
}

func TestRender(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	agent := lib.Lookup("test-engineer")
	if agent == nil {
		t.Fatal("Lookup(test-engineer) = nil")
	}

	content, err := Render(agent, "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.HasPrefix(content, "---\n") {
		t.Error("rendered agent should start with frontmatter")
	}
	if !strings.Contains(content, "name: Test Engineer") {
		t.Errorf("rendered agent missing name, got:\n%s", content)
	}
	if strings.Contains(content, "Custom Instructions") {
		t.Error("rendered agent should not contain a custom instructions section when none given")
	}
}

func TestRender_CustomInstructions(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	agent := lib.Lookup("code-reviewer")
	if agent == nil {
		t.Fatal("Lookup(code-reviewer) = nil")
	}

	content, err := Render(agent, "Focus on the payments module.")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(content, "## Custom Instructions") {
		t.Errorf("rendered agent missing custom instructions section, got:\n%s", content)
	}
	if !strings.Contains(content, "Focus on the payments module.") {
		t.Errorf("rendered agent missing instruction text, got:\n%s", content)
	}
}
