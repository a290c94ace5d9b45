package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

const (
	idNumber = iota + 1
	idTime
	idWord
)

func initPatterns(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`[0-9][0-9]?((:[0-9][0-9])|(am|pm)|(:[0-9][0-9](am|pm)))`), MakeToken("TIME", idTime))
	lexer.Add([]byte(`[0-9]+`), MakeToken("NUMBER", idNumber))
	lexer.Add([]byte(`[a-z]+`), MakeToken("WORD", idWord))
	lexer.Add([]byte(`( |\t)+`), Skip)
}

var inputStrings = []string{
	"1",
	"remind me at 5pm",
	"12:30 or 7:15pm",
	"in 3 days",
	"#?! 42",
}

var tokenCounts = []int{1, 4, 3, 3, 1}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(initPatterns)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		sc.SetErrorHandler(func(e error) { t.Logf("skipping: %v", e) })
		count := 0
		for token, ok := sc.NextToken(); ok; token, ok = sc.NextToken() {
			t.Logf(" %4d | %15s | @%5d", token.ID, token.Lexeme, token.Span.From())
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hey.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(initPatterns)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		word string
		id   int
		ok   bool
	}{
		{"42", idNumber, true},
		{"5pm", idTime, true},
		{"12:30", idTime, true},
		{"12:30am", idTime, true},
		{"hello", idWord, true},
		{"12abc", 0, false},
		{"12:3", 0, false},
		{"#x", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		id, lexeme, ok := LM.Match(c.word)
		if ok != c.ok || id != c.id {
			t.Errorf("Expected match(%q) = %d/%v, is %d/%v", c.word, c.id, c.ok, id, ok)
		}
		if ok && lexeme != c.word {
			t.Errorf("Expected lexeme to be the whole word %q, is %q", c.word, lexeme)
		}
	}
}
