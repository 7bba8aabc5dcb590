package core

import (
	"context"

	"github.com/sandevgo/gcp/pkg/cmdproc"
)

type CmdRouter interface {
	Execute(ctx context.Context, input string) Result
	ListCommands() []CommandInfo
}

// Command groups the overloads registered under one name.
type Command interface {
	Name() string
	Description() string
	Overloads() []cmdproc.Binding
}

type CommandInfo struct {
	Name        string
	Description string
	Signatures  []cmdproc.Signature
}

// Result is what one submitted line produced: handler output and the
// diagnostics reported through the error channel.
type Result struct {
	Output string
	Errors []string
}

func (r Result) Failed() bool {
	return len(r.Errors) > 0
}
