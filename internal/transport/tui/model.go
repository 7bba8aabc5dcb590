package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/internal/service/ui"
)

const exitCommand = "exit"

// resultMsg carries the outcome of one processed line back to the model.
type resultMsg struct {
	line   string
	result core.Result
}

type persistErrMsg struct {
	err error
}

type Options struct {
	Prompt     string
	PageScroll int
	History    *History
	Repo       core.HistoryRepository
}

// Model is a scrollback console: output above, a single prompt line below.
// Input is locked while a submitted line is being processed so the router
// never sees two lines at once.
type Model struct {
	ctx        context.Context
	router     core.CmdRouter
	repo       core.HistoryRepository
	history    *History
	input      textinput.Model
	viewport   viewport.Model
	lines      []string
	prompt     string
	pageScroll int
	locked     bool
	quitting   bool
}

func NewModel(ctx context.Context, router core.CmdRouter, opts Options) *Model {
	if opts.History == nil {
		opts.History = NewHistory(0)
	}
	if opts.PageScroll <= 0 {
		opts.PageScroll = 20
	}

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.PromptStyle = ui.PromptStyle
	ti.Focus()

	return &Model{
		ctx:        ctx,
		router:     router,
		repo:       opts.Repo,
		history:    opts.History,
		input:      ti,
		viewport:   viewport.New(80, 20),
		prompt:     opts.Prompt,
		pageScroll: opts.PageScroll,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case resultMsg:
		m.appendResult(msg.result)
		m.locked = false
		m.input.Focus()
		return m, nil

	case persistErrMsg:
		m.appendLines(ui.ErrorStyle.Render("history: " + msg.err.Error()))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyPgUp:
		m.viewport.SetYOffset(m.viewport.YOffset - m.pageScroll)
		return m, nil
	case tea.KeyPgDown:
		m.viewport.SetYOffset(m.viewport.YOffset + m.pageScroll)
		return m, nil
	}

	if m.locked {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyUp:
		if line, ok := m.history.Back(); ok {
			m.setInput(line)
		}
		return m, nil
	case tea.KeyDown:
		if line, ok := m.history.Forward(); ok {
			m.setInput(line)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.appendLines(ui.PromptStyle.Render(m.prompt) + line)

	if strings.TrimSpace(line) == exitCommand {
		m.quitting = true
		return m, tea.Quit
	}

	var persist tea.Cmd
	if strings.TrimSpace(line) != "" && m.history.Add(line) && m.repo != nil {
		persist = m.persist(line)
	}

	m.locked = true
	m.input.Blur()
	return m, tea.Batch(m.execute(line), persist)
}

func (m *Model) execute(line string) tea.Cmd {
	ctx, router := m.ctx, m.router
	return func() tea.Msg {
		return resultMsg{line: line, result: router.Execute(ctx, line)}
	}
}

func (m *Model) persist(line string) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		if err := repo.Add(ctx, line); err != nil {
			return persistErrMsg{err: err}
		}
		return nil
	}
}

func (m *Model) setInput(line string) {
	m.input.SetValue(line)
	m.input.CursorEnd()
}

func (m *Model) appendResult(res core.Result) {
	if out := strings.TrimRight(res.Output, "\n"); out != "" {
		m.appendLines(strings.Split(out, "\n")...)
	}
	for _, e := range res.Errors {
		m.appendLines(ui.ErrorStyle.Render("error: " + e))
	}
}

func (m *Model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 1)
	m.input.Width = max(width-lipgloss.Width(m.prompt)-1, 1)
	m.viewport.GotoBottom()
}

// Scrollback returns the console text without the prompt line.
func (m *Model) Scrollback() []string {
	return m.lines
}

func (m *Model) Locked() bool {
	return m.locked
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return ui.ConsoleStyle.Render(m.viewport.View()) + "\n" + m.input.View()
}
