package lr

import (
	"strings"

	"github.com/hey-notes/hey"
)

// Sentences enumerates sentences of a grammar, shortest derivations first.
// Sentential forms are expanded leftmost, forms longer than maxLen symbols are
// dropped. At most limit sentences are returned.
//
// Terminals of valued specifiers carry their value, bare terminals get their
// lower-cased name as value.
func Sentences(g *Grammar, maxLen int, limit int) [][]hey.Token {
	var sentences [][]hey.Token
	queue := [][]Spec{{Bare(g.Start())}}
	seen := map[string]bool{}
	for len(queue) > 0 && len(sentences) < limit {
		form := queue[0]
		queue = queue[1:]
		k := firstNonTerminal(g, form)
		if k < 0 {
			sentences = append(sentences, sentence(form))
			continue
		}
		for _, r := range g.RulesFor(form[k].Name) {
			next := make([]Spec, 0, len(form)+r.Len())
			next = append(next, form[:k]...)
			next = append(next, r.rhs...)
			next = append(next, form[k+1:]...)
			key := formString(next)
			if len(next) > maxLen || seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, next)
		}
	}
	return sentences
}

func firstNonTerminal(g *Grammar, form []Spec) int {
	for k, s := range form {
		if !s.IsValued() && g.IsNonTerminal(s.Name) {
			return k
		}
	}
	return -1
}

func sentence(form []Spec) []hey.Token {
	tokens := make([]hey.Token, len(form))
	for k, s := range form {
		value := s.Value
		if !s.IsValued() {
			value = strings.ToLower(s.Name)
		}
		tokens[k] = hey.Token{Name: s.Name, Value: value, Span: hey.Span{uint64(k), uint64(k + 1)}}
	}
	return tokens
}

func formString(form []Spec) string {
	parts := make([]string, len(form))
	for k, s := range form {
		parts[k] = s.String()
	}
	return strings.Join(parts, " ")
}
