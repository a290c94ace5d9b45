/*
Package slr provides a table-driven shift-reduce parser for keyword grammars.
Clients have to use the tools of package lr to prepare the automaton. The
parser utilizes the automaton's actions to create a right derivation for a
given sequence of tokens and returns it as a parse tree.

This parser is intended for small grammars of natural-language commands. Such
grammars are ambiguous: a shift always takes precedence over a reduction, a valued
specifier over a bare one, and the automaton resolves all other ambiguities
by declaration order of the rules.

Usage

Clients construct a grammar and an automaton for it:

	b := lr.NewGrammarBuilder("Expressions")
	b.LHS("E").N("E").V("WORD", "+").N("B").End()  // E ➞ E WORD(+) B
	b.LHS("E").N("B").End()                        // E ➞ B
	b.LHS("B").V("WORD", "1").End()                // B ➞ WORD(1)
	g, err := b.Grammar()
	a, err := lr.NewAutomaton(g)

The automaton is read-only and may be shared. Finally parse some input:

	p := slr.NewParser(a)
	tree, err := p.Parse(tokens)

Parsers hold no state between calls of Parse; a single parser may be used by
many goroutines concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"fmt"

	"github.com/hey-notes/hey"
	"github.com/hey-notes/hey/lr"
	"github.com/hey-notes/hey/lr/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hey.lr'.
func tracer() tracing.Trace {
	return tracing.Select("hey.lr")
}

// Parser is a table-driven shift-reduce parser. Create one with slr.NewParser(...)
type Parser struct {
	a             *lr.Automaton
	maxReductions int // reductions allowed between two shifts, 0 = derive from input
}

// Option configures a parser.
type Option func(p *Parser)

// MaxReductions limits the number of consecutive reductions without a shift.
// Grammars with cyclic rules like A ➞ A would otherwise never terminate.
func MaxReductions(n int) Option {
	return func(p *Parser) {
		p.maxReductions = n
	}
}

// NewParser creates a parser for an automaton.
func NewParser(a *lr.Automaton, opts ...Option) *Parser {
	parser := &Parser{a: a}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// We store pairs of state-IDs and symbols on the parse stack. The bottom
// entry holds the start state and no symbol.
type stackitem struct {
	stateID int
	sym     tree.Symbol
}

// run holds the state of a single parse.
type run struct {
	p      *Parser
	stack  []stackitem // parser stack
	tokens []hey.Token
	pos    int // position of lookahead
}

// Parse reduces a sequence of tokens to a parse tree, rooted at the start symbol
// of the grammar. If the input is not accepted, a *lr.ParseError is returned,
// wrapping either lr.ErrUnexpectedToken or lr.ErrUnexpectedEndOfInput.
func (p *Parser) Parse(tokens []hey.Token) (*tree.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.a == nil {
		tracer().Errorf("parser not initialized")
		return nil, fmt.Errorf("parser not initialized")
	}
	if len(tokens) == 0 {
		return nil, &lr.ParseError{Err: lr.ErrUnexpectedEndOfInput}
	}
	r := &run{
		p:      p,
		stack:  make([]stackitem, 1, 32),
		tokens: tokens,
	}
	return r.parse()
}

func (r *run) parse() (*tree.Node, error) {
	limit := r.reductionLimit()
	reductions := 0
	for {
		la := r.lookahead()
		tos := r.stack[len(r.stack)-1] // TOS
		action, err := r.p.a.Action(tos.stateID, la)
		if err != nil {
			tracer().Debugf("no action(%d,%v): %v", tos.stateID, la, err)
			return nil, r.errorAtLookahead()
		}
		tracer().Debugf("action(%d,%v)=%s", tos.stateID, la, action)
		switch action.Kind {
		case lr.Accept:
			root, ok := r.stack[len(r.stack)-1].sym.(*tree.Node)
			if len(r.stack) != 2 || !ok {
				return nil, r.errorAtLookahead()
			}
			tracer().Infof("accepted %v", root)
			return root, nil
		case lr.Shift:
			tracer().Debugf("shifting, next state = %d", action.Target)
			r.stack = append(r.stack, // push a terminal state onto stack
				stackitem{action.Target, la.(tree.Terminal)})
			r.pos++
			reductions = 0
		case lr.Reduce:
			if reductions++; reductions > limit {
				return nil, r.stuck(action.Rule)
			}
			if err := r.reduce(action.Rule); err != nil {
				return nil, err
			}
		}
	}
}

// reduce performs a reduce action for a rule
//
//    LHS ➞ X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn should be represented on the stack as states
//
//    [TOS]  Sn(Xn) ... S1(X1)  ...
//
// They are replaced by a node for LHS, pushed with the state reached from
// the state beneath the handle.
func (r *run) reduce(rule *lr.Rule) error {
	tracer().Infof("reduce %v", rule)
	n := rule.Len()
	if len(r.stack)-1 < n {
		return r.errorAtLookahead()
	}
	handle := r.stack[len(r.stack)-n:]
	node := &tree.Node{Name: rule.LHS, Children: make([]tree.Symbol, n)}
	for k, entry := range handle {
		if !rule.RHS()[k].Matches(entry.sym) {
			tracer().Errorf("Expected %v on stack, got %v", rule.RHS()[k], entry.sym)
		}
		node.Children[k] = entry.sym
	}
	r.stack = r.stack[:len(r.stack)-n] // pop handle
	beneath := r.stack[len(r.stack)-1]
	action, err := r.p.a.Action(beneath.stateID, node)
	if err != nil || action.Kind != lr.Shift {
		tracer().Debugf("no goto(%d,%s)", beneath.stateID, rule.LHS)
		r.stack = append(r.stack, stackitem{beneath.stateID, node}) // keep it for error reporting
		return r.errorAtLookahead()
	}
	tracer().Debugf("reduced to next state = %d", action.Target)
	r.stack = append(r.stack, // push a non-terminal state onto stack
		stackitem{action.Target, node})
	return nil
}

// lookahead returns the current input token or lr.EOF.
func (r *run) lookahead() lr.Symbol {
	if r.pos >= len(r.tokens) {
		return lr.EOF
	}
	return tree.Terminal{Token: r.tokens[r.pos]}
}

// Limit for consecutive reductions: every symbol on the stack may be
// re-reduced by a chain of at most |rules| unit reductions.
func (r *run) reductionLimit() int {
	if r.p.maxReductions > 0 {
		return r.p.maxReductions
	}
	return (len(r.tokens) + 1) * (r.p.a.Grammar().Size() + 1)
}

func (r *run) stuck(rule *lr.Rule) error {
	err := r.errorAtLookahead()
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(fmt.Sprintf("parser stuck reducing %v: %v", rule, err))
	}
	tracer().Errorf("parser stuck reducing %v", rule)
	return err
}

func (r *run) errorAtLookahead() error {
	e := &lr.ParseError{Stack: r.stackSymbols()}
	if r.pos >= len(r.tokens) {
		e.Err = lr.ErrUnexpectedEndOfInput
	} else {
		token := r.tokens[r.pos]
		e.Err = lr.ErrUnexpectedToken
		e.Token = &token
	}
	tracer().Infof("%v\n%s", e, e.StackString())
	return e
}

func (r *run) stackSymbols() []lr.Symbol {
	syms := make([]lr.Symbol, 0, len(r.stack))
	for _, entry := range r.stack[1:] {
		syms = append(syms, entry.sym)
	}
	return syms
}
