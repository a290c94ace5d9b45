/*
Package scanner splits free text into tokens for the parsers of package lr.

Tokens are defined by a list of definitions. A definition is either a set of
literal words, a regular expression or the wildcard '*', which consumes every
word no other definition matches. At most one wildcard definition may exist.

	defs := []scanner.Definition{
		scanner.Words("COMMAND", "remind", "note"),
		scanner.Pattern("NUMBER", `[0-9]+`),
		scanner.Wildcard("WORD"),
	}
	tokenizer, err := scanner.NewTokenizer(defs)
	tokens, err := tokenizer.Tokenize("remind me in 5 minutes")

Regular expressions are compiled to a single DFA with lexmachine, see
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"sort"
	"strings"

	"github.com/hey-notes/hey"
	"github.com/hey-notes/hey/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pingcap/errors"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'hey.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("hey.scanner")
}

// WildcardWord marks a wildcard definition.
const WildcardWord = "*"

var (
	// ErrDuplicateWildcard is returned by NewTokenizer for more than one wildcard definition.
	ErrDuplicateWildcard = errors.New("more than one wildcard definition")
	// ErrNoMatchingDefinition is returned by Tokenize for a word no definition matches.
	ErrNoMatchingDefinition = errors.New("word matches no token definition")
	// ErrInvalidDefinition is returned by NewTokenizer for malformed definitions.
	ErrInvalidDefinition = errors.New("invalid token definition")
)

// Definition defines a token. Name should be in SCREAMING_SNAKE_CASE, as it
// is used in grammar rules.
type Definition struct {
	Name    string
	Words   []string // literal words, or WildcardWord
	Pattern string   // regular expression in lexmachine syntax
}

// Words creates a definition for a fixed set of words.
func Words(name string, words ...string) Definition {
	return Definition{Name: name, Words: words}
}

// Pattern creates a definition for words matching a regular expression.
func Pattern(name string, regex string) Definition {
	return Definition{Name: name, Pattern: regex}
}

// Wildcard creates a definition for all words not matched otherwise.
func Wildcard(name string) Definition {
	return Definition{Name: name, Words: []string{WildcardWord}}
}

// IsWildcard is true for the wildcard definition.
func (d Definition) IsWildcard() bool {
	for _, w := range d.Words {
		if w == WildcardWord {
			return true
		}
	}
	return false
}

// Tokenizer turns text into tokens. It is read-only after construction and
// may be shared between goroutines.
type Tokenizer struct {
	defs      []Definition
	literals  map[string]int // word → index of definition
	wildcard  int            // index of wildcard definition or -1
	lm        *lexmach.LMAdapter
	phrases   map[string]string // synonym phrase → literal word
	maxPhrase int               // longest synonym phrase, in words
}

// Option configures a tokenizer.
type Option func(t *Tokenizer)

// WithThesaurus lets synonyms of literal words tokenize like the words
// themselves. The token value is the literal word.
func WithThesaurus(th *Thesaurus) Option {
	return func(t *Tokenizer) {
		if th == nil {
			return
		}
		words := make([]string, 0, len(th.synonyms))
		for word := range th.synonyms {
			words = append(words, word)
		}
		sort.Strings(words)
		for _, word := range words {
			for _, s := range th.synonyms[word] {
				phrase := normalize(s)
				if _, ok := t.phrases[phrase]; !ok {
					t.phrases[phrase] = word
				}
				if n := len(strings.Fields(phrase)); n > t.maxPhrase {
					t.maxPhrase = n
				}
			}
		}
	}
}

// NewTokenizer creates a tokenizer from a list of token definitions. If a word
// is listed in more than one definition, the first one wins.
func NewTokenizer(defs []Definition, opts ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		defs:     defs,
		literals: make(map[string]int),
		wildcard: -1,
		phrases:  make(map[string]string),
	}
	patterns := 0
	for k, def := range defs {
		if def.Name == "" || strings.ContainsAny(def.Name, "() \t\r\n") {
			return nil, errors.Annotatef(ErrInvalidDefinition, "token name %q", def.Name)
		}
		for _, w := range def.Words {
			if w == WildcardWord {
				continue
			}
			w = strings.ToLower(w)
			if _, ok := t.literals[w]; !ok {
				t.literals[w] = k
			}
		}
		if def.IsWildcard() {
			if t.wildcard >= 0 {
				return nil, errors.Annotatef(ErrDuplicateWildcard, "%s and %s",
					defs[t.wildcard].Name, def.Name)
			}
			t.wildcard = k
			continue
		}
		if def.Pattern != "" {
			patterns++
		}
	}
	if patterns > 0 {
		lm, err := lexmach.NewLMAdapter(func(lexer *lexmachine.Lexer) {
			for k, def := range defs {
				if def.Pattern != "" && !def.IsWildcard() {
					lexer.Add([]byte(def.Pattern), lexmach.MakeToken(def.Name, k))
				}
			}
		})
		if err != nil {
			return nil, errors.Annotate(err, "cannot compile token patterns")
		}
		t.lm = lm
	}
	for _, opt := range opts {
		opt(t)
	}
	tracer().Debugf("tokenizer with %d definitions, %d literal words, %d patterns",
		len(defs), len(t.literals), patterns)
	return t, nil
}

// Tokenize splits text at white space and tokenizes every word. Words are
// matched case-insensitively, in this order:
//
// ■ literal words of a definition
//
// ■ synonyms of literal words (if a thesaurus is configured), longest phrase first
//
// ■ regular expressions, the longest match of a pattern covering the complete word
//
// ■ the wildcard, keeping the word as it has been typed
//
// Spans of tokens are word positions.
func (t *Tokenizer) Tokenize(text string) ([]hey.Token, error) {
	words := strings.Fields(text)
	tokens := make([]hey.Token, 0, len(words))
	for i := 0; i < len(words); {
		token, n, err := t.next(words, i)
		if err != nil {
			tracer().Infof("cannot tokenize %q: %v", text, err)
			return nil, err
		}
		tokens = append(tokens, token)
		i += n
	}
	tracer().Debugf("tokens: %v", tokens)
	return tokens, nil
}

// next tokenizes the word at position i, possibly together with the words
// following it. It returns the number of words consumed.
func (t *Tokenizer) next(words []string, i int) (hey.Token, int, error) {
	word := strings.ToLower(words[i])
	span := hey.Span{uint64(i), uint64(i + 1)}
	if k, ok := t.literals[word]; ok {
		return hey.Token{Name: t.defs[k].Name, Value: word, Span: span}, 1, nil
	}
	for n := min(t.maxPhrase, len(words)-i); n > 0; n-- {
		phrase := normalize(strings.Join(words[i:i+n], " "))
		if literal, ok := t.phrases[phrase]; ok {
			if k, ok := t.literals[literal]; ok {
				tracer().Debugf("%q is a synonym of %q", phrase, literal)
				return hey.Token{
					Name:  t.defs[k].Name,
					Value: literal,
					Span:  hey.Span{uint64(i), uint64(i + n)},
				}, n, nil
			}
		}
	}
	if t.lm != nil {
		if k, lexeme, ok := t.lm.Match(word); ok {
			return hey.Token{Name: t.defs[k].Name, Value: lexeme, Span: span}, 1, nil
		}
	}
	if t.wildcard >= 0 {
		return hey.Token{Name: t.defs[t.wildcard].Name, Value: words[i], Span: span}, 1, nil
	}
	return hey.Token{}, 0, errors.Annotatef(ErrNoMatchingDefinition, "word %q", words[i])
}

func normalize(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}
