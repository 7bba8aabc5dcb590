package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptStep edits the console prompt. An empty answer keeps the current one.
type PromptStep struct {
	input textinput.Model
	key   string
}

func NewPromptStep(key string) *PromptStep {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = "> "
	ti.Width = 30
	return &PromptStep{input: ti, key: key}
}

func (s *PromptStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *PromptStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if val := s.input.Value(); val != "" {
			state.EnvVars[s.key] = val
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PromptStep) View(state *InstallState) string {
	current := state.EnvVars[s.key]
	return "Console prompt (current: " + itemStyle.Render(`"`+current+`"`) + "):\n\n" + s.input.View() + "\n\n(press enter to confirm)\n"
}
