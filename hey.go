package hey

import "fmt"

// --- Tokens ----------------------------------------------------------------

// Token represents a word of input, categorized by a tokenizer. Tokens are the
// terminals of keyword grammars.
//
// An example would be a token for a command word:
//
//    Name  = "COMMAND"     // category of this token (application specific)
//    Value = "remind"      // the word as it appeared in the input, or its canonical synonym
//    Span  = 1…2           // occured at word position 1 in the input
//
type Token struct {
	Name  string
	Value string
	Span  Span
}

// SymbolName returns the token's category name.
func (t Token) SymbolName() string {
	return t.Name
}

// TerminalValue returns the literal value of the token. Tokens always
// are terminals, therefore the second return value is always true.
func (t Token) TerminalValue() (string, bool) {
	return t.Value, true
}

func (t Token) String() string {
	if t.Value == "" {
		return t.Name
	}
	return fmt.Sprintf("%s(%s)", t.Name, t.Value)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, which is used for epsilon-derived symbols.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
// A null span is neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
