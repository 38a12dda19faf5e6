package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/teamforge/teamforge-ctl/internal/catalog"
)

// Result holds the outcome of the agent picker.
type Result struct {
	Confirmed bool
	Selected  []string
}

// agentItem implements list.Item for agent template display. All items
// share the model's selection map, so toggles are visible at render time.
type agentItem struct {
	template catalog.Template
	selected map[string]bool
}

func (i agentItem) Title() string {
	mark := "[ ]"
	if i.selected[i.template.ID] {
		mark = "[x]"
	}
	return mark + " " + i.template.Name
}

func (i agentItem) Description() string {
	return i.template.Description
}

func (i agentItem) FilterValue() string {
	return i.template.ID
}

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// Model is the bubbletea model for the agent picker.
type Model struct {
	list     list.Model
	selected map[string]bool
	result   Result
	quitting bool
}

// NewAgentPicker creates a picker over the given agent templates.
// Preselected ids start checked.
func NewAgentPicker(agents []catalog.Template, preselected []string) Model {
	selected := make(map[string]bool, len(preselected))
	for _, id := range preselected {
		selected[id] = true
	}

	items := make([]list.Item, len(agents))
	for i, agent := range agents {
		items[i] = agentItem{template: agent, selected: selected}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = descStyle

	l := list.New(items, delegate, 80, 20)
	l.Title = "TeamForge - Select Agents"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return Model{
		list:     l,
		selected: selected,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// Ignore shortcuts while the filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case " ":
			if item, ok := m.list.SelectedItem().(agentItem); ok {
				id := item.template.ID
				m.selected[id] = !m.selected[id]
			}
			return m, nil

		case "enter":
			m.result = Result{Confirmed: true, Selected: m.selectedIDs()}
			m.quitting = true
			return m, tea.Quit

		case "q", "esc", "ctrl+c":
			m.result = Result{Confirmed: false}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View() + helpStyle.Render("space: toggle • enter: confirm • q: cancel")
}

// Result returns the picker outcome after the program finished.
func (m Model) Result() Result {
	return m.result
}

func (m Model) selectedIDs() []string {
	var ids []string
	for id, on := range m.selected {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// PickAgents runs the interactive picker and returns the confirmed
// selection. A cancelled picker returns Confirmed == false.
func PickAgents(agents []catalog.Template, preselected []string) (*Result, error) {
	program := tea.NewProgram(NewAgentPicker(agents, preselected), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	model, ok := final.(Model)
	if !ok {
		return &Result{}, nil
	}
	result := model.Result()
	return &result, nil
}
