package cmdproc

import (
	"fmt"
)

// Handler receives one converted value per declared parameter slot, in order.
// The dynamic type of each value is the one listed for its TypeTag.
type Handler func(args []any)

// Binding is a type-erased command implementation: the declared parameter
// tags and the uniform invocation wrapper built for them.
type Binding struct {
	Params []TypeTag
	Invoke Handler
}

func (b Binding) Arity() int {
	return len(b.Params)
}

// mustAccept panics when values produced for tag cannot be passed as T.
func mustAccept[T any](slot int, tag TypeTag) {
	if !tag.valid() {
		panic(fmt.Sprintf("cmdproc: parameter %d has invalid type tag %d", slot, int(tag)))
	}
	if _, ok := tag.zero().(T); !ok {
		var want T
		panic(fmt.Sprintf("cmdproc: parameter %d is tagged %s but handler takes %T", slot, tag, want))
	}
}

func Bind0(fn func()) Binding {
	return Binding{
		Params: nil,
		Invoke: func([]any) { fn() },
	}
}

func Bind1[A any](ta TypeTag, fn func(A)) Binding {
	mustAccept[A](0, ta)
	return Binding{
		Params: []TypeTag{ta},
		Invoke: func(args []any) {
			fn(args[0].(A))
		},
	}
}

func Bind2[A, B any](ta, tb TypeTag, fn func(A, B)) Binding {
	mustAccept[A](0, ta)
	mustAccept[B](1, tb)
	return Binding{
		Params: []TypeTag{ta, tb},
		Invoke: func(args []any) {
			fn(args[0].(A), args[1].(B))
		},
	}
}

func Bind3[A, B, C any](ta, tb, tc TypeTag, fn func(A, B, C)) Binding {
	mustAccept[A](0, ta)
	mustAccept[B](1, tb)
	mustAccept[C](2, tc)
	return Binding{
		Params: []TypeTag{ta, tb, tc},
		Invoke: func(args []any) {
			fn(args[0].(A), args[1].(B), args[2].(C))
		},
	}
}

func Bind4[A, B, C, D any](ta, tb, tc, td TypeTag, fn func(A, B, C, D)) Binding {
	mustAccept[A](0, ta)
	mustAccept[B](1, tb)
	mustAccept[C](2, tc)
	mustAccept[D](3, td)
	return Binding{
		Params: []TypeTag{ta, tb, tc, td},
		Invoke: func(args []any) {
			fn(args[0].(A), args[1].(B), args[2].(C), args[3].(D))
		},
	}
}
