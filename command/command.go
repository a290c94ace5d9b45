package command

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/hey-notes/hey"
	"github.com/hey-notes/hey/lr"
	"github.com/hey-notes/hey/lr/pattern"
	"github.com/hey-notes/hey/lr/scanner"
	"github.com/hey-notes/hey/lr/slr"
	"github.com/hey-notes/hey/lr/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/pingcap/errors"
)

//go:embed hey.ebnf
var grammarSource string

// Parser is implemented by the parsers of packages lr/slr and lr/pattern.
type Parser interface {
	Parse(tokens []hey.Token) (*tree.Node, error)
}

// language holds everything needed to understand commands. It is built once
// and read-only afterwards.
type language struct {
	g         *lr.Grammar
	a         *lr.Automaton
	tokenizer *scanner.Tokenizer
	table     Parser
	patterns  Parser
}

var (
	buildOnce sync.Once
	lang      *language
	buildErr  error
)

func load() (*language, error) {
	buildOnce.Do(func() {
		lang, buildErr = build()
		if buildErr != nil {
			tracer().Errorf("cannot build command language: %v", buildErr)
		}
	})
	return lang, buildErr
}

func build() (*language, error) {
	l := &language{}
	var err error
	if l.g, err = lr.LoadEBNF("hey.ebnf", strings.NewReader(grammarSource)); err != nil {
		return nil, errors.Annotate(err, "command grammar")
	}
	if l.a, err = lr.NewAutomaton(l.g); err != nil {
		return nil, errors.Annotate(err, "command automaton")
	}
	th := scanner.DefaultThesaurus()
	if l.tokenizer, err = scanner.NewTokenizer(Definitions(), scanner.WithThesaurus(th)); err != nil {
		return nil, errors.Annotate(err, "command tokens")
	}
	l.table = slr.NewParser(l.a)
	l.patterns = pattern.NewParser(l.g)
	tracer().Infof("command language: %d rules, %d states", l.g.Size(), l.a.Size())
	return l, nil
}

// Grammar returns the grammar of the command language.
func Grammar() (*lr.Grammar, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	return l.g, nil
}

// Automaton returns the LR(0) automaton for the command language.
func Automaton() (*lr.Automaton, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	return l.a, nil
}

// Tokenize splits text into tokens of the command language.
func Tokenize(text string) ([]hey.Token, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	tokens, err := l.tokenizer.Tokenize(text)
	return tokens, errors.Trace(err)
}

// NewParser returns the parser for the executor named by configuration key
// "executor": "table" (default) or "pattern".
func NewParser() (Parser, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	switch executor := gconf.GetString("executor"); executor {
	case "", "table", "slr":
		return l.table, nil
	case "pattern":
		return l.patterns, nil
	default:
		return nil, errors.Errorf("unknown executor %q", executor)
	}
}

// Parse understands a command. Errors of the parser are annotated, use
// errors.Cause to get the *lr.ParseError.
func Parse(text string) (*Intent, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	root, err := p.Parse(tokens)
	if err != nil {
		return nil, errors.Annotatef(err, "cannot understand %q", text)
	}
	tracer().Debugf("parse tree: %v", root)
	return NewIntent(root, strings.Fields(text))
}
