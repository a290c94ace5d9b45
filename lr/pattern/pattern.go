/*
Package pattern provides a shift-reduce parser for keyword grammars which works
without an automaton. It matches the right hand sides of the grammar rules
directly against the top of the parse stack.

After every shift the parser reduces as long as possible:

■ If the top of the stack is a proper prefix of some rule (a partial match)
and the symbol following that prefix matches the lookahead token, reduction is
deferred and the next token is shifted.

■ Otherwise the first rule in declaration order whose complete right hand side
matches the top of the stack (a full match) is reduced.

The input is accepted if, after the last token, the stack holds exactly one
non-terminal node, which need not be the start symbol.

In contrast to package slr no table construction is needed, at the price of
scanning all the rules at every step. Both parsers agree on unambiguous
grammars but may build different trees for ambiguous ones. Rules with an empty
right hand side never match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

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

// Parser is a pattern-matching shift-reduce parser. Create one with pattern.NewParser(...)
type Parser struct {
	g             *lr.Grammar
	maxReductions int // reductions allowed between two shifts, 0 = derive from grammar
}

// Option configures a parser.
type Option func(p *Parser)

// MaxReductions limits the number of consecutive reductions without a shift.
func MaxReductions(n int) Option {
	return func(p *Parser) {
		p.maxReductions = n
	}
}

// NewParser creates a parser for a grammar.
func NewParser(g *lr.Grammar, opts ...Option) *Parser {
	parser := &Parser{g: g}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// run holds the state of a single parse.
type run struct {
	p      *Parser
	stack  []tree.Symbol
	tokens []hey.Token
	pos    int // position of lookahead
}

// Parse reduces a sequence of tokens to a parse tree. The root is the single
// non-terminal left on the stack. If the input is not accepted, a *lr.ParseError is returned,
// wrapping either lr.ErrUnexpectedToken or lr.ErrUnexpectedEndOfInput.
func (p *Parser) Parse(tokens []hey.Token) (*tree.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.g == nil {
		tracer().Errorf("parser not initialized")
		return nil, fmt.Errorf("parser not initialized")
	}
	if len(tokens) == 0 {
		return nil, &lr.ParseError{Err: lr.ErrUnexpectedEndOfInput}
	}
	r := &run{
		p:      p,
		stack:  make([]tree.Symbol, 0, 32),
		tokens: tokens,
	}
	return r.parse()
}

func (r *run) parse() (*tree.Node, error) {
	limit := r.p.maxReductions
	if limit <= 0 {
		limit = (len(r.tokens) + 1) * (r.p.g.Size() + 1)
	}
	for r.pos < len(r.tokens) {
		token := tree.Terminal{Token: r.tokens[r.pos]}
		if !r.p.expects(token) {
			return nil, r.errorAt(&token.Token)
		}
		tracer().Debugf("shift %v", token)
		r.stack = append(r.stack, token)
		r.pos++
		reductions := 0
		for r.reduce() {
			if reductions++; reductions > limit {
				return nil, r.stuck()
			}
		}
	}
	if len(r.stack) == 1 {
		if root, ok := r.stack[0].(*tree.Node); ok {
			tracer().Infof("accepted %v", root)
			return root, nil
		}
	}
	return nil, r.errorAt(nil)
}

// reduce performs at most one reduction and reports whether it did.
func (r *run) reduce() bool {
	if r.pos < len(r.tokens) {
		la := tree.Terminal{Token: r.tokens[r.pos]}
		if r.isLookaheadPartOfMatch(la) {
			tracer().Debugf("lookahead %v continues a match, deferring reduction", la)
			return false
		}
	}
	var rule *lr.Rule
	r.p.g.EachRule(func(rl *lr.Rule) {
		if rule == nil && !rl.IsEpsilon() {
			if full, _ := matchStack(r.stack, rl.RHS()); full {
				rule = rl
			}
		}
	})
	if rule == nil {
		return false
	}
	tracer().Infof("reduce %v", rule)
	n := rule.Len()
	node := &tree.Node{Name: rule.LHS, Children: make([]tree.Symbol, n)}
	copy(node.Children, r.stack[len(r.stack)-n:])
	r.stack = append(r.stack[:len(r.stack)-n], node)
	return true
}

// Is there a rule with a partial match on the stack, for which the lookahead
// is the next symbol to match?
func (r *run) isLookaheadPartOfMatch(la tree.Terminal) bool {
	found := false
	r.p.g.EachRule(func(rl *lr.Rule) {
		if found {
			return
		}
		_, partials := matchStack(r.stack, rl.RHS())
		for _, k := range partials {
			if rl.RHS()[k].Matches(la) {
				found = true
				return
			}
		}
	})
	return found
}

// matchStack compares the right hand side of a rule with the top k symbols of
// the stack, for every k up to the length of rhs. If all of rhs matches, the
// result is a full match. Every k < len(rhs) for which the first k specifiers
// match the top k symbols is a partial match of size k.
func matchStack(stack []tree.Symbol, rhs []lr.Spec) (full bool, partials []int) {
	for k := 1; k <= len(rhs) && k <= len(stack); k++ {
		top := stack[len(stack)-k:]
		matches := true
		for i := 0; i < k; i++ {
			if !rhs[i].Matches(top[i]) {
				matches = false
				break
			}
		}
		if !matches {
			continue
		}
		if k == len(rhs) {
			full = true
		} else {
			partials = append(partials, k)
		}
	}
	return
}

// expects checks if any rule of the grammar has a specifier matching a token.
func (p *Parser) expects(token tree.Terminal) bool {
	found := false
	p.g.EachRule(func(rl *lr.Rule) {
		for _, spec := range rl.RHS() {
			if !found && spec.Matches(token) {
				found = true
			}
		}
	})
	return found
}

func (r *run) stuck() error {
	err := r.errorAt(r.current())
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(fmt.Sprintf("parser stuck: %v", err))
	}
	tracer().Errorf("parser stuck")
	return err
}

func (r *run) current() *hey.Token {
	if r.pos < len(r.tokens) {
		return &r.tokens[r.pos]
	}
	return nil
}

func (r *run) errorAt(token *hey.Token) error {
	e := &lr.ParseError{Err: lr.ErrUnexpectedEndOfInput}
	if token != nil {
		t := *token
		e.Err, e.Token = lr.ErrUnexpectedToken, &t
	}
	e.Stack = make([]lr.Symbol, len(r.stack))
	for k, sym := range r.stack {
		e.Stack[k] = sym
	}
	tracer().Infof("%v\n%s", e, e.StackString())
	return e
}
