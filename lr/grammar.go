package lr

import (
	"fmt"
	"strings"
)

// EOFName is the name of the end-of-input symbol. Items never advance past it,
// so only the synthesized start rule gets accepted at $.
const EOFName = "$"

// StartName is the left hand side of the synthesized start rule
//
//     S' ➞ start $
//
// It is reserved and must not be used by client rules.
const StartName = "S'"

// --- Symbols ---------------------------------------------------------------

// Symbol is anything a parser may find on its stack or in its input: terminals
// (input tokens) and non-terminals (reduced parse tree nodes).
type Symbol interface {
	SymbolName() string
	TerminalValue() (string, bool) // value, true for terminals
}

type eofSymbol struct{}

func (eofSymbol) SymbolName() string            { return EOFName }
func (eofSymbol) TerminalValue() (string, bool) { return "", true }
func (eofSymbol) String() string                { return EOFName }

// EOF is the lookahead symbol for the end of input.
var EOF Symbol = eofSymbol{}

// IsEOF is a predicate: is sym the end-of-input symbol?
func IsEOF(sym Symbol) bool {
	_, ok := sym.(eofSymbol)
	return ok
}

// Spec is a symbol specifier as found on the right hand side of a rule.
// It is either
//
//     N       matches any terminal or non-terminal named N
//     N(v)    matches only a terminal named N with literal value v
//     $       matches the end of input; items never advance past it
//
type Spec struct {
	Name   string
	Value  string
	valued bool
}

// EOFSpec is the specifier for the end of input.
var EOFSpec = Spec{Name: EOFName}

// Bare creates a specifier for a symbol name.
func Bare(name string) Spec {
	return Spec{Name: name}
}

// Valued creates a specifier for a terminal with a literal value.
func Valued(name, value string) Spec {
	return Spec{Name: name, Value: value, valued: true}
}

// ParseSpec reads a specifier from its string form, e.g. "COMMAND(remind)".
// Malformed specifiers result in ErrInvalidTableRule.
func ParseSpec(s string) (Spec, error) {
	if s == EOFName {
		return EOFSpec, nil
	}
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return Spec{}, constructionError(ErrInvalidTableRule, "malformed symbol %q", s)
	}
	open := strings.IndexByte(s, '(')
	if open < 0 {
		if strings.ContainsRune(s, ')') {
			return Spec{}, constructionError(ErrInvalidTableRule, "unbalanced parenthesis in %q", s)
		}
		return Bare(s), nil
	}
	name, value := s[:open], s[open+1:]
	if name == "" || name == EOFName || !strings.HasSuffix(value, ")") {
		return Spec{}, constructionError(ErrInvalidTableRule, "malformed symbol %q", s)
	}
	value = value[:len(value)-1]
	if value == "" || strings.ContainsAny(value, "()") {
		return Spec{}, constructionError(ErrInvalidTableRule, "malformed value in symbol %q", s)
	}
	return Valued(name, value), nil
}

// IsEOF is a predicate: does this specifier denote the end of input?
func (s Spec) IsEOF() bool {
	return s.Name == EOFName && !s.valued
}

// IsValued is true for specifiers of the form N(v).
func (s Spec) IsValued() bool {
	return s.valued
}

// Matches checks if a stack or input symbol is matched by this specifier.
// A terminal matches N and N(v) if the names are equal and, for the valued form,
// the values are equal. A non-terminal only matches the bare form.
func (s Spec) Matches(sym Symbol) bool {
	if s.IsEOF() {
		return IsEOF(sym)
	}
	if IsEOF(sym) || sym.SymbolName() != s.Name {
		return false
	}
	if !s.valued {
		return true
	}
	v, isTerminal := sym.TerminalValue()
	return isTerminal && v == s.Value
}

func (s Spec) String() string {
	if s.valued {
		return fmt.Sprintf("%s(%s)", s.Name, s.Value)
	}
	return s.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar. Rules are immutable once built.
type Rule struct {
	Serial int    // position within the grammar
	LHS    string // name of the non-terminal
	rhs    []Spec
}

// RHS returns the right hand side of a rule. Clients must not modify it.
func (r *Rule) RHS() []Spec {
	return r.rhs
}

// Len returns the number of specifiers on the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS)
	b.WriteString(" ➞")
	for _, s := range r.rhs {
		b.WriteByte(' ')
		b.WriteString(s.String())
	}
	return b.String()
}

// --- Grammars --------------------------------------------------------------

// Grammar is an ordered list of rules, used as an arena: rules are addressed by
// their serial number. The LHS of the first rule is the start symbol.
// Grammars are read-only after construction and may be shared between goroutines.
type Grammar struct {
	Name   string
	rules  []*Rule
	byLHS  map[string][]*Rule
	nterms []string // non-terminals in order of appearance
}

// RuleSpec is a rule given as a pair of strings. Right is a space-separated
// list of symbol specifiers and may be empty for epsilon rules.
type RuleSpec struct {
	Left  string
	Right string
}

// NewGrammar creates a grammar from a list of rule specifications.
// The first rule denotes the start symbol.
func NewGrammar(name string, specs []RuleSpec) (*Grammar, error) {
	b := NewGrammarBuilder(name)
	for _, spec := range specs {
		rb := b.LHS(spec.Left)
		for _, s := range strings.Fields(spec.Right) {
			rb.Spec(s)
		}
		rb.End()
	}
	return b.Grammar()
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number i, or nil if i is out of range.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Start returns the start symbol, i.e. the LHS of the first rule.
func (g *Grammar) Start() string {
	return g.rules[0].LHS
}

// RulesFor returns all rules with a given LHS, in declaration order.
func (g *Grammar) RulesFor(lhs string) []*Rule {
	return g.byLHS[lhs]
}

// IsNonTerminal is a predicate: is name the LHS of at least one rule?
func (g *Grammar) IsNonTerminal(name string) bool {
	_, ok := g.byLHS[name]
	return ok
}

// NonTerminals returns the names of all non-terminals in order of appearance.
func (g *Grammar) NonTerminals() []string {
	return g.nterms
}

// EachRule calls f for every rule in declaration order.
func (g *Grammar) EachRule(f func(r *Rule)) {
	for _, r := range g.rules {
		f(r)
	}
}

// Dump is a debugging helper
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------")
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Clients add rules one
// by one and finally call Grammar():
//
//     b := lr.NewGrammarBuilder("G")
//     b.LHS("E").N("E").V("WORD", "+").N("B").End()  // E ➞ E WORD(+) B
//     b.LHS("E").N("B").End()                        // E ➞ B
//     b.LHS("B").V("WORD", "1").End()                // B ➞ WORD(1)
//     g, err := b.Grammar()
//
type GrammarBuilder struct {
	g   *Grammar
	err error // first error encountered
}

// NewGrammarBuilder creates a builder for a named grammar.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		g: &Grammar{
			Name:  name,
			byLHS: make(map[string][]*Rule),
		},
	}
}

// RuleBuilder collects the right hand side of a rule.
type RuleBuilder struct {
	b    *GrammarBuilder
	rule *Rule
}

// LHS starts a new rule for a non-terminal.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	if b.err == nil && (name == "" || name == StartName || name == EOFName ||
		strings.ContainsAny(name, "() \t\r\n")) {
		b.err = constructionError(ErrInvalidTableRule, "illegal left hand side %q", name)
	}
	return &RuleBuilder{b: b, rule: &Rule{LHS: name}}
}

// N appends a bare specifier, matching any symbol named name.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.Spec(name)
}

// V appends a valued specifier, matching only terminals name(value).
func (rb *RuleBuilder) V(name, value string) *RuleBuilder {
	return rb.Spec(fmt.Sprintf("%s(%s)", name, value))
}

// Spec appends a specifier given in string form.
func (rb *RuleBuilder) Spec(s string) *RuleBuilder {
	spec, err := ParseSpec(s)
	if err != nil {
		if rb.b.err == nil {
			rb.b.err = err
		}
		return rb
	}
	rb.rule.rhs = append(rb.rule.rhs, spec)
	return rb
}

// End completes a rule.
func (rb *RuleBuilder) End() *Rule {
	g := rb.b.g
	rb.rule.Serial = len(g.rules)
	g.rules = append(g.rules, rb.rule)
	if _, ok := g.byLHS[rb.rule.LHS]; !ok {
		g.nterms = append(g.nterms, rb.rule.LHS)
	}
	g.byLHS[rb.rule.LHS] = append(g.byLHS[rb.rule.LHS], rb.rule)
	return rb.rule
}

// Epsilon completes a rule with an empty right hand side.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.End()
}

// Grammar returns the grammar, or the first error encountered while building it.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.g.rules) == 0 {
		return nil, &ConstructionError{Err: ErrNoRulesSpecified}
	}
	return b.g, nil
}
