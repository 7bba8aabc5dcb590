package installer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single step in the setup wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

func getSteps(envPath string, force bool) []Step {
	return []Step{
		NewChoiceStep("Select console front end:", "GCP_FRONTEND", []string{"readline", "tui"}),
		NewPromptStep("GCP_PROMPT"),
		NewChoiceStep("Persist input history between sessions?", "GCP_PERSIST_HISTORY", []string{"true", "false"}),
		NewSaveEnvStep(envPath, force),
	}
}

type nextMsg struct{}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	width       int
	height      int
}

func initialModel(steps []Step, state *InstallState) model {
	return model{
		steps:       steps,
		currentStep: 0,
		state:       state,
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 && m.steps[0] != nil {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)

	if nextStep == nil {
		m.currentStep++
		if m.currentStep >= len(m.steps) {
			return m, tea.Quit
		}
		return m, m.steps[m.currentStep].Init()
	}

	if nextStep != m.steps[m.currentStep] {
		m.steps[m.currentStep] = nextStep
	}

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.currentStep >= len(m.steps) {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("Configuring gcp") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// Done reports whether every step has completed.
func (m model) Done() bool {
	return m.currentStep >= len(m.steps)
}

// RunWizard walks the user through the settings seeded from current and
// writes the result to envPath.
func RunWizard(current map[string]string, envPath string, force bool) (*InstallState, error) {
	p := tea.NewProgram(initialModel(getSteps(envPath, force), NewInstallState(current)), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	for _, step := range finalModel.steps {
		if save, ok := step.(*SaveEnvStep); ok && save.Err() != nil {
			return nil, save.Err()
		}
	}
	if finalModel.quitting || !finalModel.Done() {
		return nil, fmt.Errorf("gcp setup interrupted")
	}

	return finalModel.state, nil
}
