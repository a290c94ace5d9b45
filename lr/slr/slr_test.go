package slr

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hey-notes/hey"
	"github.com/hey-notes/hey/lr"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprAutomaton(t *testing.T) *lr.Automaton {
	b := lr.NewGrammarBuilder("E")
	b.LHS("E").N("E").V("WORD", "*").N("B").End()
	b.LHS("E").N("E").V("WORD", "+").N("B").End()
	b.LHS("E").N("B").End()
	b.LHS("B").V("WORD", "0").End()
	b.LHS("B").V("WORD", "1").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	a, err := lr.NewAutomaton(g)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func words(input string) []hey.Token {
	var tokens []hey.Token
	for i, w := range strings.Fields(input) {
		name, value := "WORD", w
		if k := strings.IndexByte(w, ':'); k > 0 {
			name, value = w[:k], w[k+1:]
		}
		tokens = append(tokens, hey.Token{Name: name, Value: value, Span: hey.Span{uint64(i), uint64(i + 1)}})
	}
	return tokens
}

func TestExpressionTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	p := NewParser(exprAutomaton(t))
	root, err := p.Parse(words("1 * 0 + 1"))
	if err != nil {
		t.Fatal(err)
	}
	root.Dump()
	if root.String() != "E(E(E(B(1)) * B(0)) + B(1))" {
		t.Errorf("Expected left-associated tree E(E(E(B(1)) * B(0)) + B(1)), is %v", root)
	}
	if root.Span() != (hey.Span{0, 5}) {
		t.Errorf("Expected root to span all 5 tokens, spans %v", root.Span())
	}
	if len(root.Find("E").Children) != 3 {
		t.Errorf("Expected root E to have 3 children")
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	p := NewParser(exprAutomaton(t))
	_, err := p.Parse(nil)
	if !errors.Is(err, lr.ErrUnexpectedEndOfInput) {
		t.Errorf("Expected empty input to fail with ErrUnexpectedEndOfInput, got %v", err)
	}
}

func TestUnknownToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	p := NewParser(exprAutomaton(t))
	_, err := p.Parse(words("1 FOO:x 0"))
	if !errors.Is(err, lr.ErrUnexpectedToken) {
		t.Fatalf("Expected ErrUnexpectedToken, got %v", err)
	}
	var perr *lr.ParseError
	if !errors.As(err, &perr) || perr.Token == nil || perr.Token.Name != "FOO" {
		t.Fatalf("Expected parse error to identify token FOO, is %v", err)
	}
	if perr.Token.Span.From() != 1 {
		t.Errorf("Expected offending token at position 1, is %d", perr.Token.Span.From())
	}
}

func TestIncompleteInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	p := NewParser(exprAutomaton(t))
	_, err := p.Parse(words("1 *"))
	var perr *lr.ParseError
	if !errors.As(err, &perr) || !errors.Is(err, lr.ErrUnexpectedEndOfInput) {
		t.Fatalf("Expected ErrUnexpectedEndOfInput, got %v", err)
	}
	expected := "-- Stack start --\nNode: E\nToken: WORD, value: *\n-- Stack end --"
	if perr.StackString() != expected {
		t.Errorf("Expected stack\n%s\nis\n%s", expected, perr.StackString())
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	a := exprAutomaton(t)
	p := NewParser(a)
	for _, sentence := range lr.Sentences(a.Grammar(), 7, 100) {
		root, err := p.Parse(sentence)
		if err != nil {
			t.Errorf("Expected generated sentence %v to parse, got %v", sentence, err)
			continue
		}
		if root.Name != a.Grammar().Start() {
			t.Errorf("Expected root to be the start symbol, is %s", root.Name)
		}
	}
}

func TestRoundTripMixedSpecifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := lr.NewGrammar("mixed", []lr.RuleSpec{
		{Left: "S", Right: "X"},
		{Left: "S", Right: "Y"},
		{Left: "X", Right: "COMMAND WORD"},
		{Left: "Y", Right: "COMMAND(remind) NUMBER"},
	})
	if err != nil {
		t.Fatal(err)
	}
	a, err := lr.NewAutomaton(g)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(a)
	sentences := lr.Sentences(g, 4, 10)
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, have %v", sentences)
	}
	for _, sentence := range sentences {
		if _, err := p.Parse(sentence); err != nil {
			t.Errorf("Expected generated sentence %v to parse, got %v", sentence, err)
		}
	}
	root, err := p.Parse(words("COMMAND:remind NUMBER:3"))
	if err != nil || root.String() != "S(Y(remind 3))" {
		t.Errorf("Expected S(Y(remind 3)), got %v / %v", root, err)
	}
	root, err = p.Parse(words("COMMAND:note WORD:me"))
	if err != nil || root.String() != "S(X(note me))" {
		t.Errorf("Expected S(X(note me)), got %v / %v", root, err)
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	p := NewParser(exprAutomaton(t))
	inputs := []string{"1", "1 + 0", "0 * 1 * 1", "1 * 0 + 1"}
	expected := make([]string, len(inputs))
	for k, input := range inputs {
		root, err := p.Parse(words(input))
		if err != nil {
			t.Fatal(err)
		}
		expected[k] = root.String()
	}
	var wg sync.WaitGroup
	failures := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				input := inputs[(g+k)%len(inputs)]
				root, err := p.Parse(words(input))
				if err != nil || root.String() != expected[(g+k)%len(inputs)] {
					failures <- input
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(failures)
	for input := range failures {
		t.Errorf("Expected concurrent parse of %q to match sequential result", input)
	}
}

func TestStuckParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.lr")
	defer teardown()
	//
	g, err := lr.NewGrammar("cyclic", []lr.RuleSpec{
		{Left: "S", Right: "A WORD"},
		{Left: "A", Right: "A"},
		{Left: "A", Right: "WORD"},
	})
	if err != nil {
		t.Fatal(err)
	}
	a, err := lr.NewAutomaton(g)
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(a, MaxReductions(10))
	if _, err = p.Parse(words("x")); !errors.Is(err, lr.ErrUnexpectedEndOfInput) {
		t.Errorf("Expected cyclic reduction to stop with ErrUnexpectedEndOfInput, got %v", err)
	}
	if root, err := p.Parse(words("x y")); err != nil || root.String() != "S(A(x) y)" {
		t.Errorf("Expected S(A(x) y), got %v / %v", root, err)
	}
	gconf.Initialize(testconfig.Conf{"panic-on-parser-stuck": true})
	defer gconf.Initialize(testconfig.Conf{})
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected stuck parser to panic if configured to")
		}
	}()
	p.Parse(words("x"))
}
