package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/pkg/cmdproc"
)

func TestRouter_Execute(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOutput string
		wantErrors []string
	}{
		{name: "empty line", input: "", wantOutput: ""},
		{name: "echo", input: "echo hi", wantOutput: "hi\n"},
		{name: "echo grouped", input: "echo (hello   world)", wantOutput: "hello   world\n"},
		{name: "echo escaped quote", input: `echo "a\"b"`, wantOutput: "a\"b\n"},
		{name: "say one", input: "say hi", wantOutput: "hi\n"},
		{name: "say two", input: "say hi there", wantOutput: "hi there\n"},
		{name: "add one", input: "add 5", wantOutput: "5\n"},
		{name: "add two", input: "add 2 3", wantOutput: "5\n"},
		{name: "add overflow is exact", input: "add 9223372036854775807 1", wantOutput: "9223372036854775808\n"},
		{name: "mul", input: "mul 1.5 4", wantOutput: "6\n"},
		{name: "mul extended", input: "mul 0.1 3 2", wantOutput: "0.30\n"},
		{name: "mul extended overflow", input: "mul 1e4000 1e4000 0", wantOutput: "+Inf\n"},
		{name: "mul extended out of range", input: "mul 1e20000000 1 0", wantErrors: []string{"cannot convert '1e20000000' to extended: out of range"}},
		{name: "mul hex literal", input: "mul 0x10 2", wantErrors: []string{"cannot convert '0x10' to float64: not a number"}},
		{name: "char", input: "char xyz", wantOutput: "'x' U+0078\n"},
		{name: "unknown", input: "foo", wantErrors: []string{"unknown command 'foo'"}},
		{name: "arity", input: "add 1 2 3", wantErrors: []string{"invalid number of arguments for 'add' (3/[1|2])"}},
		{name: "conversion", input: "add 2 x", wantErrors: []string{"cannot convert 'x' to int64: not a number"}},
		{name: "lexical", input: "echo (oops", wantErrors: []string{"unmatched parentheses"}},
		{name: "empty char", input: `char ""`, wantErrors: []string{"cannot convert '' to char: empty character"}},
	}

	r := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Execute(context.Background(), tt.input)
			assert.Equal(t, tt.wantOutput, res.Output)
			assert.Equal(t, tt.wantErrors, res.Errors)
			assert.Equal(t, len(tt.wantErrors) > 0, res.Failed())
		})
	}
}

func TestRouter_ResultsDoNotLeak(t *testing.T) {
	r := NewDefault()
	ctx := context.Background()

	first := r.Execute(ctx, "nope")
	require.True(t, first.Failed())

	second := r.Execute(ctx, "echo ok")
	assert.False(t, second.Failed())
	assert.Equal(t, "ok\n", second.Output)
}

type stubCommand struct {
	name  string
	calls *[]string
}

func (s stubCommand) Name() string        { return s.name }
func (s stubCommand) Description() string { return "stub " + s.name }
func (s stubCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{
		cmdproc.Bind1(cmdproc.Int, func(n int) {
			*s.calls = append(*s.calls, s.name)
		}),
	}
}

func TestRouter_RegisterCustom(t *testing.T) {
	var calls []string
	r := New()
	r.Register(stubCommand{name: "zeta", calls: &calls}, stubCommand{name: "alpha", calls: &calls})

	res := r.Execute(context.Background(), "zeta 1")
	require.False(t, res.Failed())
	assert.Equal(t, []string{"zeta"}, calls)

	list := r.ListCommands()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "stub alpha", list[0].Description)
	assert.Equal(t, "zeta", list[1].Name)
}

func TestRouter_ListCommands(t *testing.T) {
	r := NewDefault()

	var names []string
	var say core.CommandInfo
	for _, info := range r.ListCommands() {
		names = append(names, info.Name)
		if info.Name == "say" {
			say = info
		}
	}

	assert.Equal(t, []string{"add", "char", "echo", "help", "mul", "say"}, names)
	require.Len(t, say.Signatures, 2)
	assert.Equal(t, "say string", say.Signatures[0].String())
	assert.Equal(t, "say string string", say.Signatures[1].String())
}

func TestHelpCommand(t *testing.T) {
	r := NewDefault()
	ctx := context.Background()

	all := r.Execute(ctx, "help")
	require.False(t, all.Failed())
	for _, name := range []string{"Commands", "echo", "say", "add", "mul", "char", "help"} {
		assert.Contains(t, all.Output, name)
	}
	assert.NotContains(t, all.Output, "**")

	one := r.Execute(ctx, "help add")
	require.False(t, one.Failed())
	assert.Contains(t, one.Output, "add int64 int64")
	assert.Contains(t, one.Output, "Print an integer")

	missing := r.Execute(ctx, "help nothing")
	require.False(t, missing.Failed())
	assert.Contains(t, missing.Output, "nothing")
}

type panicCommand struct{}

func (panicCommand) Name() string        { return "crash" }
func (panicCommand) Description() string { return "always panics" }
func (panicCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{cmdproc.Bind0(func() { panic("crashed") })}
}

func TestRouter_HandlerPanic(t *testing.T) {
	r := NewDefault()
	r.Register(panicCommand{})

	res := r.Execute(context.Background(), "crash")
	assert.Equal(t, []string{"crashed"}, res.Errors)

	res = r.Execute(context.Background(), "echo still-alive")
	assert.False(t, res.Failed())
	assert.Equal(t, "still-alive\n", res.Output)
}
