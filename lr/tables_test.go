package lr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAutomatonStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	a, err := NewAutomaton(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	a.Dump()
	if a.Size() != 9 {
		t.Errorf("Expected automaton to have 9 states, has %d", a.Size())
	}
	for i := 0; i < a.Size(); i++ {
		si, _ := a.State(i)
		for j := i + 1; j < a.Size(); j++ {
			sj, _ := a.State(j)
			if kernelEquals(si.Kernel(), sj.Kernel()) {
				t.Errorf("Expected kernels to be unique, states %d and %d are equal", i, j)
			}
		}
	}
	s0, _ := a.State(0)
	if len(s0.Kernel()) != 1 || s0.Kernel()[0].Rule().LHS != StartName {
		t.Errorf("Expected state 0 to have the start item as its only kernel item")
	}
	if len(s0.Items()) != 6 {
		t.Errorf("Expected closure of state 0 to have 6 items, has %d", len(s0.Items()))
	}
}

func TestAutomatonMergesStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	a, err := NewAutomaton(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	// B ➞ WORD(0) • is reachable from the start state and after both operators
	s0, err := a.Goto(0, Valued("WORD", "0"))
	if err != nil {
		t.Fatal(err)
	}
	mul, _ := a.Goto(0, Bare("E"))
	mul, _ = a.Goto(mul, Valued("WORD", "*"))
	s1, err := a.Goto(mul, Valued("WORD", "0"))
	if err != nil {
		t.Fatal(err)
	}
	if s0 != s1 {
		t.Errorf("Expected goto over WORD(0) to be merged into one state, have %d and %d", s0, s1)
	}
}

func TestAutomatonActions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	a, err := NewAutomaton(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	probes := []Symbol{
		tok("WORD", "0"), tok("WORD", "1"), tok("WORD", "*"), tok("WORD", "+"),
		tok("WORD", "x"), nonterm("E"), nonterm("B"), EOF,
	}
	for state := 0; state < a.Size(); state++ {
		for _, sym := range probes {
			action, err := a.Action(state, sym)
			again, _ := a.Action(state, sym)
			if action != again {
				t.Errorf("Expected action(%d,%s) to be stable", state, symbolString(sym))
			}
			if err != nil {
				var lerr *LookupError
				if !errors.As(err, &lerr) || !errors.Is(err, ErrInvalidSymbolForSet) {
					t.Errorf("Expected lookup error, got %v", err)
				}
				continue
			}
			if action.Kind == Shift {
				target, err := a.Goto(state, specFor(sym))
				if err != nil || target != action.Target {
					t.Errorf("Expected shift(%d,%s) to agree with goto table, %d ≠ %d",
						state, symbolString(sym), action.Target, target)
				}
			}
		}
	}
	acc, _ := a.Goto(0, Bare("E"))
	if action, err := a.Action(acc, EOF); err != nil || action.Kind != Accept {
		t.Errorf("Expected accept in state %d at end of input, got %v", acc, action)
	}
	if _, err := a.Action(0, EOF); !errors.Is(err, ErrInvalidSymbolForSet) {
		t.Errorf("Expected no action for $ in start state, got %v", err)
	}
	if _, err := a.Action(99, EOF); !errors.Is(err, ErrInvalidSetIndex) {
		t.Errorf("Expected ErrInvalidSetIndex for state 99, got %v", err)
	}
	b, _ := a.Goto(0, Bare("B"))
	if action, err := a.Action(b, tok("WORD", "+")); err != nil || action.Kind != Reduce ||
		action.Rule.Serial != 2 {
		t.Errorf("Expected reduce by E ➞ B in state %d, got %v", b, action)
	}
}

func specFor(sym Symbol) Spec {
	if v, ok := sym.TerminalValue(); ok && v != "" {
		return Valued(sym.SymbolName(), v)
	}
	return Bare(sym.SymbolName())
}

func TestReduceReduceOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	for _, first := range []string{"X", "Y"} {
		second := map[string]string{"X": "Y", "Y": "X"}[first]
		g, err := NewGrammar("ambiguous", []RuleSpec{
			{Left: "S", Right: "X"},
			{Left: "S", Right: "Y"},
			{Left: first, Right: "WORD"},
			{Left: second, Right: "WORD"},
		})
		if err != nil {
			t.Fatal(err)
		}
		for k := 0; k < 20; k++ {
			a, err := NewAutomaton(g)
			if err != nil {
				t.Fatal(err)
			}
			target, _ := a.Goto(0, Bare("WORD"))
			action, err := a.Action(target, EOF)
			if err != nil || action.Kind != Reduce {
				t.Fatalf("Expected a reduction, got %v / %v", action, err)
			}
			if action.Rule.LHS != first {
				t.Errorf("Expected rule for %s declared first to win, is %v", first, action.Rule)
			}
		}
	}
}

func TestShiftPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := NewGrammar("precedence", []RuleSpec{
		{Left: "S", Right: "COMMAND(remind) Content"},
		{Left: "S", Right: "COMMAND Content"},
		{Left: "Content", Right: "Content WORD"},
		{Left: "Content", Right: "WORD"},
	})
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewAutomaton(g)
	if err != nil {
		t.Fatal(err)
	}
	valued, _ := a.Goto(0, Valued("COMMAND", "remind"))
	bare, _ := a.Goto(0, Bare("COMMAND"))
	if valued == bare {
		t.Fatalf("Expected distinct goto states for COMMAND(remind) and COMMAND")
	}
	if action, _ := a.Action(0, tok("COMMAND", "remind")); action.Target != valued {
		t.Errorf("Expected first matching item to win for COMMAND(remind), got %v", action)
	}
	if action, _ := a.Action(0, tok("COMMAND", "note")); action.Target != bare {
		t.Errorf("Expected COMMAND(note) to shift via bare specifier, got %v", action)
	}
	content, _ := a.Goto(valued, Bare("Content"))
	if action, _ := a.Action(content, tok("WORD", "x")); action.Kind != Shift {
		t.Errorf("Expected shift to take precedence over reduction, got %v", action)
	}
	if action, _ := a.Action(content, EOF); action.Kind != Reduce {
		t.Errorf("Expected reduction at end of input, got %v", action)
	}
}

func TestSelfReferentialGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := NewGrammar("cyclic", []RuleSpec{
		{Left: "S", Right: "A"},
		{Left: "A", Right: "A"},
		{Left: "A", Right: "B"},
		{Left: "B", Right: "A WORD"},
		{Left: "B", Right: ""},
	})
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewAutomaton(g)
	if err != nil {
		t.Fatal(err)
	}
	if a.Size() == 0 || a.Size() > 16 {
		t.Errorf("Expected construction to terminate with a small automaton, has %d states", a.Size())
	}
	s0, _ := a.State(0)
	if r := s0.Reduction(); r == nil || !r.IsEpsilon() {
		t.Errorf("Expected start state to reduce by the epsilon rule, is %v", r)
	}
}

func TestAutomatonExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	a, err := NewAutomaton(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	var dot bytes.Buffer
	if err := a.ToGraphViz(&dot); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot.String(), "s000 -> s001") {
		t.Errorf("Expected Dot output to contain edge s000 -> s001")
	}
	var html bytes.Buffer
	if err := ActionTableAsHTML(a, &html); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html.String(), "<td>acc</td>") || !strings.Contains(html.String(), "r2") {
		t.Errorf("Expected HTML table to contain accept and reduce entries")
	}
	if len(a.Symbols()) != 6 {
		t.Errorf("Expected 6 shift symbols (E B WORD(0) WORD(1) WORD(*) WORD(+)), have %v", a.Symbols())
	}
}

func TestValuedShiftBeforeBare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := NewGrammar("specificity", []RuleSpec{
		{Left: "S", Right: "X"},
		{Left: "S", Right: "Y"},
		{Left: "X", Right: "COMMAND WORD"},
		{Left: "Y", Right: "COMMAND(remind) NUMBER"},
	})
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewAutomaton(g)
	if err != nil {
		t.Fatal(err)
	}
	valued, _ := a.Goto(0, Valued("COMMAND", "remind"))
	bare, _ := a.Goto(0, Bare("COMMAND"))
	if action, _ := a.Action(0, tok("COMMAND", "remind")); action.Target != valued {
		t.Errorf("Expected COMMAND(remind) to shift to state %d, got %v", valued, action)
	}
	if action, _ := a.Action(0, tok("COMMAND", "note")); action.Target != bare {
		t.Errorf("Expected COMMAND(note) to shift to state %d, got %v", bare, action)
	}
}

func TestEndOfInputInClientRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := NewGrammar("eof", []RuleSpec{
		{Left: "S", Right: "WORD $"},
		{Left: "S", Right: "WORD NUMBER"},
	})
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewAutomaton(g)
	if err != nil {
		t.Fatal(err)
	}
	word, err := a.Goto(0, Bare("WORD"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Goto(word, EOFSpec); !errors.Is(err, ErrInvalidSymbolForSet) {
		t.Errorf("Expected no transition over $, got %v", err)
	}
	if _, err := a.Action(word, EOF); !errors.Is(err, ErrInvalidSymbolForSet) {
		t.Errorf("Expected client rule never to advance past $, got %v", err)
	}
	if action, _ := a.Action(word, tok("NUMBER", "1")); action.Kind != Shift {
		t.Errorf("Expected NUMBER to shift, got %v", action)
	}
	for _, spec := range a.Symbols() {
		if spec.IsEOF() {
			t.Errorf("Expected $ not to be a shift symbol")
		}
	}
}
