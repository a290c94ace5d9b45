package lr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hey-notes/hey"
)

// Errors reported by grammar construction, automaton queries and parsers.
// Clients check for them with errors.Is.
var (
	ErrNoRulesSpecified     = errors.New("no rules specified")
	ErrInvalidTableRule     = errors.New("invalid table rule")
	ErrInvalidSetIndex      = errors.New("invalid set index")
	ErrInvalidSymbolForSet  = errors.New("invalid symbol for set")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

// ConstructionError is returned when a grammar or an automaton cannot be built.
type ConstructionError struct {
	Rule string // offending rule, if any
	Err  error
}

func (e *ConstructionError) Error() string {
	if e.Rule == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Rule)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructionError(err error, format string, args ...interface{}) error {
	return &ConstructionError{Rule: fmt.Sprintf(format, args...), Err: err}
}

// LookupError is returned for an automaton query without an action.
type LookupError struct {
	State  int
	Symbol string
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: state %d, symbol %s", e.Err.Error(), e.State, e.Symbol)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ParseError is returned by parsers if the input cannot be reduced to a
// single non-terminal. It carries the offending token (nil at the end of input)
// and a snapshot of the parse stack, bottom first.
type ParseError struct {
	Err   error
	Token *hey.Token
	Stack []Symbol
}

func (e *ParseError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("%s %v at position %d", e.Err.Error(), e.Token, e.Token.Span.From())
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StackString renders the parse stack at the time of the error, one symbol per line.
func (e *ParseError) StackString() string {
	var b strings.Builder
	b.WriteString("-- Stack start --\n")
	for _, sym := range e.Stack {
		if v, ok := sym.TerminalValue(); ok {
			b.WriteString(fmt.Sprintf("Token: %s, value: %s\n", sym.SymbolName(), v))
		} else {
			b.WriteString(fmt.Sprintf("Node: %s\n", sym.SymbolName()))
		}
	}
	b.WriteString("-- Stack end --")
	return b.String()
}
