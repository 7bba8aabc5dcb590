package command

import (
	"io"

	"github.com/sandevgo/gcp/internal/core"
)

func NewCommands(out io.Writer, catalog catalog) []core.Command {
	return []core.Command{
		NewEchoCommand(out),
		NewSayCommand(out),
		NewAddCommand(out),
		NewMulCommand(out),
		NewCharCommand(out),
		NewHelpCommand(out, catalog),
	}
}
