package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownToText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "plain text",
			input:    "Hello world",
			contains: []string{"Hello world"},
		},
		{
			name:        "bold text loses markup",
			input:       "**bold**",
			contains:    []string{"bold"},
			notContains: []string{"<strong>", "**"},
		},
		{
			name:        "inline code",
			input:       "`add int int`",
			contains:    []string{"add int int"},
			notContains: []string{"`", "<code>"},
		},
		{
			name:     "list items",
			input:    "› one\n› two\n",
			contains: []string{"one", "two"},
		},
		{
			name:        "script tags sanitized",
			input:       "before\n\n<script>alert('xss')</script>\n\nafter",
			contains:    []string{"before", "after"},
			notContains: []string{"alert", "<script>"},
		},
		{
			name:        "links omitted",
			input:       "[docs](https://example.com)",
			contains:    []string{"docs"},
			notContains: []string{"https://example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToText([]byte(tt.input))
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, got, unwanted)
			}
			assert.Regexp(t, `\n$`, got)
		})
	}
}

func TestMarkdownToText_Empty(t *testing.T) {
	got, err := MarkdownToText([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
