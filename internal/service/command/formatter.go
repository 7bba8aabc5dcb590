package command

import (
	"fmt"
	"strings"
)

// ResponseFormatter builds markdown fragments for command output.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("**%s**\n", title)
}

func (f *ResponseFormatter) Error(message string) string {
	return fmt.Sprintf("**Error**: %s\n", message)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**: %s\n", label, value)
}

func (f *ResponseFormatter) Usage(signatures []string) string {
	var sb strings.Builder
	sb.WriteString("**Usage**:\n\n")
	for _, sig := range signatures {
		sb.WriteString(fmt.Sprintf("- `%s`\n", sig))
	}
	return sb.String()
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Tip(text string) string {
	return fmt.Sprintf("**Tip**: %s\n", text)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
