package lexmach

import (
	"github.com/hey-notes/hey"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'hey.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("hey.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a word matcher.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. init has to add the patterns
// to the lexer, usually with actions created by MakeToken.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer)) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// Match checks if a pattern matches the complete word. If more than one
// pattern does, the one added first wins. It returns the token ID
// given to MakeToken.
func (lm *LMAdapter) Match(word string) (id int, lexeme string, ok bool) {
	if word == "" {
		return 0, "", false
	}
	s, err := lm.Scanner(word)
	if err != nil {
		return 0, "", false
	}
	failed := false
	s.SetErrorHandler(func(error) { failed = true })
	tok, more := s.NextToken()
	if !more || failed || tok.Span.From() != 0 || int(tok.Span.To()) != len(word) {
		return 0, "", false
	}
	tracer().Debugf("pattern #%d matches %q", tok.ID, word)
	return tok.ID, tok.Lexeme, true
}

// Token is a match of a lexmachine pattern. Span holds byte positions.
type Token struct {
	ID     int
	Lexeme string
	Span   hey.Span
}

// LMScanner is a scanner type for lexmachine scanners.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken returns the next token of the input. Input no pattern matches is
// reported to the error handler and skipped. At the end of the input ok is false.
func (lms *LMScanner) NextToken() (token Token, ok bool) {
	if lms.scanner == nil {
		return Token{}, false
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			if ui.FailTC > lms.scanner.TC {
				lms.scanner.TC = ui.FailTC
			} else {
				lms.scanner.TC++
			}
		} else {
			return Token{}, false
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return Token{}, false
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	t := tok.(*lexmachine.Token)
	return Token{
		ID:     t.Type,
		Lexeme: string(t.Lexeme),
		Span:   hey.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
	}, true
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
