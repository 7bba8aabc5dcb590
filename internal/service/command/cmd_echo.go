package command

import (
	"fmt"
	"io"

	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/pkg/cmdproc"
)

type EchoCommand struct {
	out io.Writer
}

func NewEchoCommand(out io.Writer) core.Command {
	return &EchoCommand{out: out}
}

func (c *EchoCommand) Name() string {
	return "echo"
}

func (c *EchoCommand) Description() string {
	return "Print one argument verbatim"
}

func (c *EchoCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{
		cmdproc.Bind1(cmdproc.String, func(text string) {
			fmt.Fprintln(c.out, text)
		}),
	}
}

type SayCommand struct {
	out io.Writer
}

func NewSayCommand(out io.Writer) core.Command {
	return &SayCommand{out: out}
}

func (c *SayCommand) Name() string {
	return "say"
}

func (c *SayCommand) Description() string {
	return "Print one or two arguments separated by a space"
}

func (c *SayCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{
		cmdproc.Bind1(cmdproc.String, func(a string) {
			fmt.Fprintln(c.out, a)
		}),
		cmdproc.Bind2(cmdproc.String, cmdproc.String, func(a, b string) {
			fmt.Fprintln(c.out, a, b)
		}),
	}
}
