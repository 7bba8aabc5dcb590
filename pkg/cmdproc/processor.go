package cmdproc

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/sandevgo/gcp/pkg/log"
)

// Signature describes one registered (name, arity) overload.
type Signature struct {
	Name   string
	Params []TypeTag
}

func (s Signature) String() string {
	out := s.Name
	for _, p := range s.Params {
		out += " " + p.String()
	}
	return out
}

// Processor dispatches text lines to registered handlers. It performs no
// locking: registration and processing must be serialized by the caller.
type Processor struct {
	handlers map[string]map[int]Binding
	onError  func(string)
}

func New() *Processor {
	return &Processor{
		handlers: make(map[string]map[int]Binding),
	}
}

// RegisterCommand stores handler under (name, len(params)), replacing any
// previous handler for the same pair.
func (p *Processor) RegisterCommand(name string, params []TypeTag, handler Handler) {
	p.Register(name, Binding{
		Params: params,
		Invoke: handler,
	})
}

// Register stores a copy of b's parameter list, so later changes to the
// caller's slice do not affect dispatch.
func (p *Processor) Register(name string, b Binding) {
	if b.Invoke == nil {
		panic(fmt.Sprintf("cmdproc: command %q registered with nil handler", name))
	}
	for i, tag := range b.Params {
		if !tag.valid() {
			panic(fmt.Sprintf("cmdproc: command %q parameter %d has invalid type tag %d", name, i, int(tag)))
		}
	}
	b.Params = slices.Clone(b.Params)

	byArity, ok := p.handlers[name]
	if !ok {
		byArity = make(map[int]Binding)
		p.handlers[name] = byArity
	}
	byArity[b.Arity()] = b
}

// RegisterErrorCallback installs the single diagnostic sink. A nil sink
// silences diagnostics.
func (p *Processor) RegisterErrorCallback(sink func(string)) {
	p.onError = sink
}

// Process runs one line. Results are observable only through handler side
// effects and the error sink.
func (p *Processor) Process(line string) {
	p.ProcessContext(context.Background(), line)
}

func (p *Processor) ProcessContext(ctx context.Context, line string) {
	if err := p.Execute(ctx, line); err != nil {
		log.FromCtx(ctx).Debug().Err(err).Str("line", line).Msg("command failed")
		if p.onError != nil {
			p.onError(err.Error())
		}
	}
}

// Execute is Process returning the failure instead of reporting it.
func (p *Processor) Execute(ctx context.Context, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	return p.dispatch(ctx, tokens)
}

func (p *Processor) dispatch(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	name, args := tokens[0], tokens[1:]
	byArity, ok := p.handlers[name]
	if !ok {
		return &UnknownCommandError{Name: name}
	}

	b, ok := byArity[len(args)]
	if !ok {
		return &ArityError{Name: name, Expected: arities(byArity), Actual: len(args)}
	}

	values := make([]any, len(args))
	for i, tok := range args {
		v, err := Convert(tok, b.Params[i])
		if err != nil {
			return err
		}
		values[i] = v
	}

	log.FromCtx(ctx).Debug().Str("command", name).Int("arity", len(args)).Msg("dispatching")
	return invoke(name, b, values)
}

// invoke runs the handler, turning a panic into a HandlerError.
func invoke(name string, b Binding, values []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &HandlerError{Name: name, Value: r}
		}
	}()
	b.Invoke(values)
	return nil
}

func arities(byArity map[int]Binding) []int {
	out := make([]int, 0, len(byArity))
	for n := range byArity {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Has reports whether any overload is registered under name.
func (p *Processor) Has(name string) bool {
	_, ok := p.handlers[name]
	return ok
}

// Commands lists every registered overload sorted by name, then arity.
func (p *Processor) Commands() []Signature {
	var out []Signature
	for name, byArity := range p.handlers {
		for _, b := range byArity {
			out = append(out, Signature{Name: name, Params: slices.Clone(b.Params)})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return len(out[i].Params) < len(out[j].Params)
	})
	return out
}
