package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandevgo/gcp/internal/core"
)

type fakeRouter struct {
	lines  []string
	result core.Result
}

func (f *fakeRouter) Execute(ctx context.Context, input string) core.Result {
	f.lines = append(f.lines, input)
	return f.result
}

func (f *fakeRouter) ListCommands() []core.CommandInfo {
	return nil
}

func TestHandleLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		result     core.Result
		wantQuit   bool
		wantRouted bool
		contains   []string
	}{
		{name: "exit", line: "exit", wantQuit: true},
		{name: "exit with spaces", line: "  exit ", wantQuit: true},
		{name: "output", line: "echo hi", result: core.Result{Output: "hi\n"}, wantRouted: true, contains: []string{"hi\n"}},
		{name: "errors", line: "nope", result: core.Result{Errors: []string{"unknown command 'nope'"}}, wantRouted: true, contains: []string{"error: unknown command 'nope'"}},
		{name: "empty line still routed", line: "", wantRouted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := &fakeRouter{result: tt.result}
			var buf bytes.Buffer

			quit := handleLine(context.Background(), router, tt.line, &buf)

			assert.Equal(t, tt.wantQuit, quit)
			if tt.wantRouted {
				assert.Equal(t, []string{tt.line}, router.lines)
			} else {
				assert.Empty(t, router.lines)
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
