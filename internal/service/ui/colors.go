package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) for headings
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for usage lines and arguments
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black / Gray) keeps descriptions in the background
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ErrorStyle ANSI 1 (Red) for diagnostics from the error channel
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// PromptStyle ANSI 5 (Magenta) for the console prompt
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	// ConsoleStyle mirrors a dark terminal pane
	ConsoleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("254"))
)

// RenderErrors styles each diagnostic on its own line.
func RenderErrors(errs []string) string {
	out := ""
	for _, e := range errs {
		out += ErrorStyle.Render("error: "+e) + "\n"
	}
	return out
}
