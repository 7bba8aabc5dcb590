package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewInstallState_Copies(t *testing.T) {
	current := map[string]string{"A": "1"}
	state := NewInstallState(current)
	state.EnvVars["A"] = "2"
	assert.Equal(t, "1", current["A"])
}

func TestChoiceStep(t *testing.T) {
	state := NewInstallState(map[string]string{"GCP_FRONTEND": "tui"})
	step := NewChoiceStep("Front end", "GCP_FRONTEND", []string{"readline", "tui"})

	// Current value is preselected
	next, _ := step.Update(key("x"), state, 80, 24)
	require.NotNil(t, next)
	assert.Contains(t, step.View(state), "❯ tui")

	step.Update(key("up"), state, 80, 24)
	step.Update(key("up"), state, 80, 24)
	next, _ = step.Update(key("enter"), state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "readline", state.EnvVars["GCP_FRONTEND"])
}

func TestPromptStep(t *testing.T) {
	state := NewInstallState(map[string]string{"GCP_PROMPT": "> "})

	step := NewPromptStep("GCP_PROMPT")
	next, _ := step.Update(key("enter"), state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "> ", state.EnvVars["GCP_PROMPT"], "empty answer keeps current prompt")

	step = NewPromptStep("GCP_PROMPT")
	step.Update(key("gcp$"), state, 80, 24)
	next, _ = step.Update(key("enter"), state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "gcp$", state.EnvVars["GCP_PROMPT"])
}

func TestSaveEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime", ".env")
	vars := map[string]string{"GCP_FRONTEND": "tui", "GCP_PROMPT": "gcp> "}

	require.NoError(t, SaveEnv(path, vars, false))

	got, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, vars, got)

	err = SaveEnv(path, vars, false)
	assert.ErrorContains(t, err, "already exists")

	vars["GCP_FRONTEND"] = "readline"
	require.NoError(t, SaveEnv(path, vars, true))
	got, err = godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "readline", got["GCP_FRONTEND"])
}

func TestWizardModel_RunsAllSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	state := NewInstallState(map[string]string{
		"GCP_FRONTEND":        "readline",
		"GCP_PROMPT":          "> ",
		"GCP_PERSIST_HISTORY": "true",
	})

	var m tea.Model = initialModel(getSteps(path, false), state)
	for _, msg := range []tea.Msg{
		key("down"), key("enter"), // front end: tui
		key("enter"),              // prompt unchanged
		key("down"), key("enter"), // persistence: false
		nextMsg{}, // save
	} {
		m, _ = m.Update(msg)
	}

	final := m.(model)
	require.True(t, final.Done())
	assert.Equal(t, "Configuration complete!\n", final.View())

	got, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "tui", got["GCP_FRONTEND"])
	assert.Equal(t, "false", got["GCP_PERSIST_HISTORY"])
	assert.Equal(t, "> ", got["GCP_PROMPT"])
}

func TestWizardModel_CtrlCQuits(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	var m tea.Model = initialModel(getSteps(path, false), NewInstallState(nil))

	m, _ = m.Update(key("ctrl+c"))

	final := m.(model)
	assert.True(t, final.quitting)
	assert.Equal(t, "Setup cancelled.\n", final.View())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveEnvStep_ReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("A=1\n"), 0644))

	step := NewSaveEnvStep(path, false)
	next, _ := step.Update(nextMsg{}, NewInstallState(nil), 80, 24)
	assert.NotNil(t, next)
	assert.Error(t, step.Err())
	assert.Contains(t, step.View(nil), "already exists")
}
