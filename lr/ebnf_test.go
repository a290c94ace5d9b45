package lr

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprEBNF = `
E = E "WORD(*)" B | E "WORD(+)" B | B .
B = "WORD(0)" | "WORD(1)" .
`

func TestLoadEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := LoadEBNF("expr.ebnf", strings.NewReader(exprEBNF))
	if err != nil {
		t.Fatal(err)
	}
	ref := exprGrammar(t)
	if g.Size() != ref.Size() {
		t.Fatalf("Expected %d rules, have %d", ref.Size(), g.Size())
	}
	for i := 0; i < g.Size(); i++ {
		if g.Rule(i).String() != ref.Rule(i).String() {
			t.Errorf("Expected rule %d to be %v, is %v", i, ref.Rule(i), g.Rule(i))
		}
	}
	if g.Start() != "E" {
		t.Errorf("Expected first production to be the start rule, is %s", g.Start())
	}
}

func TestLoadEBNFEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := LoadEBNF("eps.ebnf", strings.NewReader(`S = Opt WORD | "X(x)" WORD . Opt = .`))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 || !g.Rule(2).IsEpsilon() {
		t.Errorf("Expected 3 rules, the last one epsilon, have %d", g.Size())
	}
	if !g.Rule(1).RHS()[0].IsValued() {
		t.Errorf("Expected quoted token to be a valued specifier, is %v", g.Rule(1))
	}
}

func TestLoadEBNFRejectsGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	for _, src := range []string{
		`S = A { WORD } .`,
		`S = A [ WORD ] .`,
		`S = ( A | B ) WORD .`,
		`S = "a" … "z" .`,
	} {
		if _, err := LoadEBNF("bad.ebnf", strings.NewReader(src)); !errors.Is(err, ErrInvalidTableRule) {
			t.Errorf("Expected %q to be rejected with ErrInvalidTableRule, got %v", src, err)
		}
	}
}
