package installer

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

// SaveEnvStep writes the collected configuration to the .env file.
type SaveEnvStep struct {
	path  string
	force bool
	err   error
	saved bool
}

func NewSaveEnvStep(path string, force bool) *SaveEnvStep {
	return &SaveEnvStep{path: path, force: force}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	// Perform save synchronously (fast operation)
	if err := SaveEnv(s.path, state.EnvVars, s.force); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

func (s *SaveEnvStep) Err() error {
	return s.err
}

// SaveEnv writes vars to path. An existing file is only replaced when force
// is set.
func SaveEnv(path string, vars map[string]string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf(".env file already exists at %s", path)
	}

	if err := godotenv.Write(vars, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
