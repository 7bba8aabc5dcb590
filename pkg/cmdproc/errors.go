package cmdproc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Lexical failures.
var (
	ErrUnmatchedParenthesis = errors.New("unmatched parentheses")
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrInvalidEscape        = errors.New("invalid escape at end of input")
)

// Conversion failures.
var (
	ErrNotANumber     = errors.New("not a number")
	ErrOutOfRange     = errors.New("out of range")
	ErrEmptyCharacter = errors.New("empty character")
)

// LexError aborts tokenization of the whole line. Pos is the byte offset
// where the problem was detected.
type LexError struct {
	Pos int
	Err error
}

func (e *LexError) Error() string {
	return e.Err.Error()
}

func (e *LexError) Unwrap() error {
	return e.Err
}

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s'", e.Name)
}

// ArityError reports a known command called with an unregistered number of
// arguments. Expected is sorted ascending.
type ArityError struct {
	Name     string
	Expected []int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("invalid number of arguments for '%s' (%d/%s)", e.Name, e.Actual, formatArities(e.Expected))
}

func formatArities(arities []int) string {
	if len(arities) == 1 {
		return strconv.Itoa(arities[0])
	}
	parts := make([]string, len(arities))
	for i, n := range arities {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, "|") + "]"
}

type ConversionError struct {
	Token string
	Tag   TypeTag
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert '%s' to %s: %v", e.Token, e.Tag, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// HandlerError carries a panic raised by a command handler. Its message is
// the panic value alone.
type HandlerError struct {
	Name  string
	Value any
}

func (e *HandlerError) Error() string {
	return fmt.Sprint(e.Value)
}

func (e *HandlerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
