package command

import (
	"bytes"
	"context"
	"io"
	"sort"

	"github.com/sandevgo/gcp/internal/core"
	"github.com/sandevgo/gcp/pkg/cmdproc"
	"github.com/sandevgo/gcp/pkg/log"
)

// Router binds the processor to a per-line output buffer so front ends get
// each line's output and diagnostics back as one Result. It is not safe for
// concurrent use.
type Router struct {
	proc         *cmdproc.Processor
	out          bytes.Buffer
	errors       []string
	descriptions map[string]string
}

var _ core.CmdRouter = (*Router)(nil)

func New() *Router {
	r := &Router{
		proc:         cmdproc.New(),
		descriptions: make(map[string]string),
	}
	r.proc.RegisterErrorCallback(r.report)
	return r
}

// NewDefault returns a router with the built-in commands registered.
func NewDefault() *Router {
	r := New()
	r.Register(NewCommands(r.Output(), r)...)
	return r
}

// Output is the writer handlers registered on this router must print to.
func (r *Router) Output() io.Writer {
	return &r.out
}

func (r *Router) Register(commands ...core.Command) {
	for _, cmd := range commands {
		r.descriptions[cmd.Name()] = cmd.Description()
		for _, b := range cmd.Overloads() {
			r.proc.Register(cmd.Name(), b)
		}
	}
}

func (r *Router) report(msg string) {
	r.errors = append(r.errors, msg)
}

func (r *Router) Execute(ctx context.Context, input string) core.Result {
	r.out.Reset()
	r.errors = nil

	r.proc.ProcessContext(ctx, input)

	res := core.Result{Output: r.out.String(), Errors: r.errors}
	r.out.Reset()
	r.errors = nil

	if res.Failed() {
		log.FromCtx(ctx).Debug().Strs("errors", res.Errors).Msg("line rejected")
	}
	return res
}

func (r *Router) ListCommands() []core.CommandInfo {
	byName := make(map[string]*core.CommandInfo)
	var names []string
	for _, sig := range r.proc.Commands() {
		info, ok := byName[sig.Name]
		if !ok {
			info = &core.CommandInfo{Name: sig.Name, Description: r.descriptions[sig.Name]}
			byName[sig.Name] = info
			names = append(names, sig.Name)
		}
		info.Signatures = append(info.Signatures, sig)
	}
	sort.Strings(names)

	res := make([]core.CommandInfo, 0, len(names))
	for _, name := range names {
		res = append(res, *byName[name])
	}
	return res
}
