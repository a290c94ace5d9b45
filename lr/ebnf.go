package lr

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/ebnf"
)

// LoadEBNF reads a grammar in EBNF notation. Only the subset of EBNF which
// maps directly onto keyword grammar rules is accepted:
//
//     Command = CLI Request | Request .
//     Remind  = "COMMAND(remind)" SUBJECT TO Content .
//     Empty   = .
//
// Every alternative of a production becomes a rule, in the order written.
// Names are bare symbol specifiers, quoted tokens are specifiers in string
// form (and may therefore carry a value). Groups, options, repetitions and
// ranges are rejected with ErrInvalidTableRule.
//
// Productions keep their order of declaration; the first one is the start rule.
func LoadEBNF(filename string, src io.Reader) (*Grammar, error) {
	eg, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, &ConstructionError{Rule: err.Error(), Err: ErrInvalidTableRule}
	}
	prods := make([]*ebnf.Production, 0, len(eg))
	for _, p := range eg {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Name.StringPos.Offset < prods[j].Name.StringPos.Offset
	})
	b := NewGrammarBuilder(filename)
	for _, p := range prods {
		var alternatives []ebnf.Expression
		if alt, ok := p.Expr.(ebnf.Alternative); ok {
			alternatives = alt
		} else {
			alternatives = []ebnf.Expression{p.Expr} // nil for epsilon
		}
		for _, x := range alternatives {
			rb := b.LHS(p.Name.String)
			if err := appendEBNF(rb, x); err != nil {
				return nil, err
			}
			rb.End()
		}
	}
	return b.Grammar()
}

func appendEBNF(rb *RuleBuilder, x ebnf.Expression) error {
	switch expr := x.(type) {
	case nil:
		return nil
	case ebnf.Sequence:
		for _, sub := range expr {
			if err := appendEBNF(rb, sub); err != nil {
				return err
			}
		}
		return nil
	case *ebnf.Name:
		rb.N(expr.String)
		return nil
	case *ebnf.Token:
		rb.Spec(expr.String)
		return nil
	}
	return &ConstructionError{
		Rule: fmt.Sprintf("%s: unsupported EBNF expression %T in rule for %s", x.Pos(), x, rb.rule.LHS),
		Err:  ErrInvalidTableRule,
	}
}
