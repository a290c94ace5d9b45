/*
Package lr implements prerequisites for LR parsing of keyword grammars.
Keyword grammars are small, hand-written and highly ambiguous; they are
used to recognize command phrases like "remind me to call mom at 5pm".

Building a Grammar

Grammars are specified as an ordered list of rules. A rule's right hand side
consists of symbol specifiers:

    N       matches any terminal or non-terminal named N
    N(v)    matches only a terminal named N with literal value v

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("E").N("E").V("WORD", "*").N("B").End()  // E ➞ E WORD(*) B
    b.LHS("E").N("E").V("WORD", "+").N("B").End()  // E ➞ E WORD(+) B
    b.LHS("E").N("B").End()                        // E ➞ B
    b.LHS("B").V("WORD", "0").End()                // B ➞ WORD(0)
    b.LHS("B").V("WORD", "1").End()                // B ➞ WORD(1)
    g, err := b.Grammar()

The same grammar may be given as a list of string pairs (lr.NewGrammar) or
read from an EBNF file restricted to sequences and alternatives (lr.LoadEBNF).
The LHS of the first rule is the start symbol.

Automaton Construction

From a grammar an LR(0) automaton is built, the characteristic finite state
machine. The grammar is augmented by a rule

    S' ➞ start $

and states are created breadth first from the kernel item S' ➞ • start $.
States with equal kernels are merged. The automaton may be exported to
Graphviz's Dot-format and its action table to HTML.

    a, err := lr.NewAutomaton(g)
    action, err := a.Action(0, token)  // Shift, Reduce or Accept

Ambiguities are never reported. A shift always takes precedence over a reduction.
Among shifts a valued specifier N(v) wins over a bare N, otherwise the item
declared first wins. Among reductions the rule declared first wins.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hey.lr'.
func tracer() tracing.Trace {
	return tracing.Select("hey.lr")
}
