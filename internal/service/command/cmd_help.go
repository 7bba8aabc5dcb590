package command

import (
	"fmt"
	"io"

	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/pkg/cmdproc"
	"github.com/sandevgo/gcp/pkg/conv"
)

type catalog interface {
	ListCommands() []core.CommandInfo
}

type HelpCommand struct {
	out       io.Writer
	catalog   catalog
	formatter *ResponseFormatter
}

func NewHelpCommand(out io.Writer, catalog catalog) core.Command {
	return &HelpCommand{
		out:       out,
		catalog:   catalog,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List commands, or show the signatures of one command"
}

func (c *HelpCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{
		cmdproc.Bind0(c.listAll),
		cmdproc.Bind1(cmdproc.String, c.describe),
	}
}

func (c *HelpCommand) listAll() {
	commands := c.catalog.ListCommands()
	items := make([]string, len(commands))
	for i, cmd := range commands {
		items[i] = fmt.Sprintf("`%s` %s", cmd.Name, cmd.Description)
	}

	c.write(c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(items),
		c.formatter.Tip("group words with ( ) or \" \" to pass them as one argument"),
	))
}

func (c *HelpCommand) describe(name string) {
	for _, cmd := range c.catalog.ListCommands() {
		if cmd.Name != name {
			continue
		}
		sigs := make([]string, len(cmd.Signatures))
		for i, sig := range cmd.Signatures {
			sigs[i] = sig.String()
		}
		c.write(c.formatter.Combine(
			c.formatter.Info(cmd.Name),
			c.formatter.Label("Description", cmd.Description),
			c.formatter.Usage(sigs),
		))
		return
	}
	c.write(c.formatter.Error(fmt.Sprintf("no command named `%s`", name)))
}

func (c *HelpCommand) write(md string) {
	text, err := conv.MarkdownToText([]byte(md))
	if err != nil {
		text = md
	}
	io.WriteString(c.out, text)
}
