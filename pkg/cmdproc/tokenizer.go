package cmdproc

import (
	"strings"
	"unicode"
)

type lexState int

const (
	stateScanning lexState = iota
	stateWord
	stateGroup
	stateQuoted
	stateEscape
	stateGroupQuoted
	stateGroupEscape
)

func (s lexState) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateWord:
		return "word"
	case stateGroup:
		return "group"
	case stateQuoted:
		return "quoted"
	case stateEscape:
		return "escape"
	case stateGroupQuoted:
		return "group-quoted"
	case stateGroupEscape:
		return "group-escape"
	}
	return "unknown"
}

type lexer struct {
	depth  int
	buf    strings.Builder
	tokens []string
}

// transition consumes one rune in the current state and returns the next one.
type transition func(l *lexer, r rune) (lexState, error)

var transitions = [...]transition{
	stateScanning: scanScanning,
	stateWord:     scanWord,
	stateGroup:    scanGroup,
	stateQuoted:   scanQuoted,
	stateEscape:   scanEscape,
	// Quotes inside a group are kept verbatim but still shield parens.
	stateGroupQuoted: scanGroupQuoted,
	stateGroupEscape: scanGroupEscape,
}

// finalizers resolve end of input for every state.
var finalizers = [...]func(l *lexer) error{
	stateScanning: func(l *lexer) error { return nil },
	stateWord: func(l *lexer) error {
		l.emit()
		return nil
	},
	stateGroup:       func(l *lexer) error { return ErrUnmatchedParenthesis },
	stateQuoted:      func(l *lexer) error { return ErrUnterminatedString },
	stateEscape:      func(l *lexer) error { return ErrInvalidEscape },
	stateGroupQuoted: func(l *lexer) error { return ErrUnterminatedString },
	stateGroupEscape: func(l *lexer) error { return ErrInvalidEscape },
}

// Tokenize splits a line into plain words, parenthesised groups and quoted
// strings. Groups nest and keep their inner text verbatim; parens inside a
// quoted stretch of a group do not count. Quoted strings honour backslash
// escapes. Any lexical error discards the whole line.
func Tokenize(line string) ([]string, error) {
	l := &lexer{}
	state := stateScanning

	for i, r := range line {
		next, err := transitions[state](l, r)
		if err != nil {
			return nil, &LexError{Pos: i, Err: err}
		}
		state = next
	}

	if err := finalizers[state](l); err != nil {
		return nil, &LexError{Pos: len(line), Err: err}
	}
	return l.tokens, nil
}

func (l *lexer) emit() {
	l.tokens = append(l.tokens, l.buf.String())
	l.buf.Reset()
}

func (l *lexer) emitTrimmed() {
	l.tokens = append(l.tokens, strings.TrimFunc(l.buf.String(), unicode.IsSpace))
	l.buf.Reset()
}

func (l *lexer) openGroup() lexState {
	l.buf.Reset()
	l.depth = 1
	return stateGroup
}

func (l *lexer) openQuote() lexState {
	l.buf.Reset()
	return stateQuoted
}

func scanScanning(l *lexer, r rune) (lexState, error) {
	switch {
	case unicode.IsSpace(r):
		return stateScanning, nil
	case r == '(':
		return l.openGroup(), nil
	case r == ')':
		return stateScanning, ErrUnmatchedParenthesis
	case r == '"':
		return l.openQuote(), nil
	}
	l.buf.WriteRune(r)
	return stateWord, nil
}

func scanWord(l *lexer, r rune) (lexState, error) {
	switch {
	case unicode.IsSpace(r):
		l.emit()
		return stateScanning, nil
	case r == '(':
		l.emit()
		return l.openGroup(), nil
	case r == ')':
		l.emit()
		return stateScanning, ErrUnmatchedParenthesis
	case r == '"':
		l.emit()
		return l.openQuote(), nil
	}
	l.buf.WriteRune(r)
	return stateWord, nil
}

func scanGroup(l *lexer, r rune) (lexState, error) {
	switch r {
	case '"':
		l.buf.WriteRune(r)
		return stateGroupQuoted, nil
	case '(':
		l.depth++
	case ')':
		l.depth--
		if l.depth == 0 {
			l.emitTrimmed()
			return stateScanning, nil
		}
	}
	l.buf.WriteRune(r)
	return stateGroup, nil
}

func scanQuoted(l *lexer, r rune) (lexState, error) {
	switch r {
	case '\\':
		return stateEscape, nil
	case '"':
		l.emit()
		return stateScanning, nil
	}
	l.buf.WriteRune(r)
	return stateQuoted, nil
}

func scanEscape(l *lexer, r rune) (lexState, error) {
	l.buf.WriteRune(r)
	return stateQuoted, nil
}

func scanGroupQuoted(l *lexer, r rune) (lexState, error) {
	l.buf.WriteRune(r)
	switch r {
	case '\\':
		return stateGroupEscape, nil
	case '"':
		return stateGroup, nil
	}
	return stateGroupQuoted, nil
}

func scanGroupEscape(l *lexer, r rune) (lexState, error) {
	l.buf.WriteRune(r)
	return stateGroupQuoted, nil
}
