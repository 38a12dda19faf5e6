package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teamforge/teamforge-ctl/internal/catalog"
)

func testAgents() []catalog.Template {
	return []catalog.Template{
		{ID: "code-reviewer", Name: "Code Reviewer", Description: "Reviews changes"},
		{ID: "test-engineer", Name: "Test Engineer", Description: "Writes tests"},
		{ID: "ux-designer", Name: "UX Designer", Description: "Shapes flows"},
	}
}

func TestAgentItemMethods(t *testing.T) {
	selected := map[string]bool{"code-reviewer": true}
	item := agentItem{
		template: catalog.Template{ID: "code-reviewer", Name: "Code Reviewer", Description: "Reviews changes"},
		selected: selected,
	}

	t.Run("Title checked", func(t *testing.T) {
		if got := item.Title(); !strings.HasPrefix(got, "[x]") {
			t.Errorf("Title() = %q, want checked prefix", got)
		}
	})

	t.Run("Title unchecked", func(t *testing.T) {
		selected["code-reviewer"] = false
		if got := item.Title(); !strings.HasPrefix(got, "[ ]") {
			t.Errorf("Title() = %q, want unchecked prefix", got)
		}
	})

	t.Run("FilterValue", func(t *testing.T) {
		if got := item.FilterValue(); got != "code-reviewer" {
			t.Errorf("FilterValue() = %q, want %q", got, "code-reviewer")
		}
	})
}

func TestPicker_Preselection(t *testing.T) {
	m := NewAgentPicker(testAgents(), []string{"code-reviewer", "test-engineer"})

	got := m.selectedIDs()
	want := []string{"code-reviewer", "test-engineer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("selectedIDs() = %v, want %v", got, want)
	}
}

func TestPicker_ToggleAndConfirm(t *testing.T) {
	m := NewAgentPicker(testAgents(), nil)

	// Toggle the first item on.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if got := m.selectedIDs(); len(got) != 1 {
		t.Fatalf("selectedIDs() = %v, want one entry after toggle", got)
	}

	// Toggle it back off.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	if got := m.selectedIDs(); len(got) != 0 {
		t.Fatalf("selectedIDs() = %v, want empty after second toggle", got)
	}

	// Toggle on again and confirm.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	result := m.Result()
	if !result.Confirmed {
		t.Error("Result().Confirmed = false after enter")
	}
	if len(result.Selected) != 1 {
		t.Errorf("Result().Selected = %v, want one entry", result.Selected)
	}
}

func TestPicker_Cancel(t *testing.T) {
	m := NewAgentPicker(testAgents(), []string{"ux-designer"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)

	result := m.Result()
	if result.Confirmed {
		t.Error("Result().Confirmed = true after cancel")
	}
	if len(result.Selected) != 0 {
		t.Errorf("Result().Selected = %v, want empty after cancel", result.Selected)
	}
}
