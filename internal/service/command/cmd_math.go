package command

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/pkg/cmdproc"
)

type AddCommand struct {
	out io.Writer
}

func NewAddCommand(out io.Writer) core.Command {
	return &AddCommand{out: out}
}

func (c *AddCommand) Name() string {
	return "add"
}

func (c *AddCommand) Description() string {
	return "Print an integer, or the sum of two integers"
}

func (c *AddCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{
		cmdproc.Bind1(cmdproc.Int64, func(a int64) {
			fmt.Fprintln(c.out, a)
		}),
		cmdproc.Bind2(cmdproc.Int64, cmdproc.Int64, func(a, b int64) {
			// Exact even when the sum overflows int64.
			sum := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
			fmt.Fprintln(c.out, sum.String())
		}),
	}
}

type MulCommand struct {
	out io.Writer
}

func NewMulCommand(out io.Writer) core.Command {
	return &MulCommand{out: out}
}

func (c *MulCommand) Name() string {
	return "mul"
}

func (c *MulCommand) Description() string {
	return "Print the product of two numbers"
}

func (c *MulCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{
		cmdproc.Bind2(cmdproc.Float64, cmdproc.Float64, func(a, b float64) {
			fmt.Fprintln(c.out, strconv.FormatFloat(a*b, 'g', -1, 64))
		}),
		cmdproc.Bind3(cmdproc.Extended, cmdproc.Extended, cmdproc.Uint8, func(a, b *big.Float, digits uint8) {
			p := cmdproc.ClampExtended(new(big.Float).SetPrec(a.Prec()).Mul(a, b))
			fmt.Fprintln(c.out, p.Text('f', int(digits)))
		}),
	}
}

type CharCommand struct {
	out io.Writer
}

func NewCharCommand(out io.Writer) core.Command {
	return &CharCommand{out: out}
}

func (c *CharCommand) Name() string {
	return "char"
}

func (c *CharCommand) Description() string {
	return "Print the first character of the argument and its code point"
}

func (c *CharCommand) Overloads() []cmdproc.Binding {
	return []cmdproc.Binding{
		cmdproc.Bind1(cmdproc.Char, func(r rune) {
			fmt.Fprintf(c.out, "%q %U\n", r, r)
		}),
	}
}
