/*
Package tree implements parse trees for keyword grammars.

A parse tree consists of nodes, each one named after the non-terminal of the
rule which has been reduced. Children of nodes are symbols: either terminals
(input tokens) or further nodes. For the arithmetic example grammar

    E ➞ E WORD(*) B  |  E WORD(+) B  |  B
    B ➞ WORD(0)  |  WORD(1)

input "1 * 0 + 1" results in the tree

    E(E(E(B(1)) * B(0)) + B(1))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"strings"

	"github.com/hey-notes/hey"
	"github.com/hey-notes/hey/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hey.lr'.
func tracer() tracing.Trace {
	return tracing.Select("hey.lr")
}

// Symbol is a symbol on a parse stack or within a parse tree. It is either a
// Terminal or a *Node; clients switch over these two types.
type Symbol interface {
	lr.Symbol
	Span() hey.Span
	String() string
	isSymbol()
}

// Terminal is a leaf of a parse tree, wrapping an input token.
type Terminal struct {
	hey.Token
}

// Span returns the input position of the token.
func (t Terminal) Span() hey.Span {
	return t.Token.Span
}

func (t Terminal) isSymbol() {}

// Node is an inner node of a parse tree.
type Node struct {
	Name     string
	Children []Symbol
}

var _ Symbol = (*Node)(nil)
var _ Symbol = Terminal{}

// SymbolName returns the name of the non-terminal.
func (n *Node) SymbolName() string {
	return n.Name
}

// TerminalValue is part of interface lr.Symbol. Nodes are never terminals.
func (n *Node) TerminalValue() (string, bool) {
	return "", false
}

// Span returns the input positions covered by a node. Nodes derived from
// epsilon rules cover the null span.
func (n *Node) Span() hey.Span {
	var span hey.Span
	for _, ch := range n.Children {
		span = span.Extend(ch.Span())
	}
	return span
}

func (n *Node) isSymbol() {}

// String returns a one-line representation of the tree, with terminals
// printed as their values.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteString(n.Name)
	b.WriteByte('(')
	for k, ch := range n.Children {
		if k > 0 {
			b.WriteByte(' ')
		}
		switch sym := ch.(type) {
		case *Node:
			sym.write(b)
		case Terminal:
			b.WriteString(sym.Value)
		}
	}
	b.WriteByte(')')
}

// Child returns the first child node with a given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, ch := range n.Children {
		if node, ok := ch.(*Node); ok && node.Name == name {
			return node
		}
	}
	return nil
}

// Token returns the first terminal child with a given token name.
func (n *Node) Token(name string) (hey.Token, bool) {
	for _, ch := range n.Children {
		if t, ok := ch.(Terminal); ok && t.Name == name {
			return t.Token, true
		}
	}
	return hey.Token{}, false
}

// Find returns the first node with a given name in pre-order, including n itself.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(sym Symbol, depth int) bool {
		if node, ok := sym.(*Node); ok && node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Terminals returns the leaves of the tree, in input order.
func (n *Node) Terminals() []hey.Token {
	var leaves []hey.Token
	n.Walk(func(sym Symbol, depth int) bool {
		if t, ok := sym.(Terminal); ok {
			leaves = append(leaves, t.Token)
		}
		return true
	})
	return leaves
}

// Text joins the values of the leaves of a node with single spaces.
func (n *Node) Text() string {
	leaves := n.Terminals()
	words := make([]string, len(leaves))
	for k, t := range leaves {
		words[k] = t.Value
	}
	return strings.Join(words, " ")
}

// Walk traverses the tree in pre-order. If f returns false, the traversal stops.
func (n *Node) Walk(f func(sym Symbol, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(Symbol, int) bool, depth int) bool {
	if !f(n, depth) {
		return false
	}
	for _, ch := range n.Children {
		switch sym := ch.(type) {
		case *Node:
			if !sym.walk(f, depth+1) {
				return false
			}
		case Terminal:
			if !f(sym, depth+1) {
				return false
			}
		}
	}
	return true
}

// Dump is a debugging helper
func (n *Node) Dump() {
	n.Walk(func(sym Symbol, depth int) bool {
		indent := strings.Repeat("  ", depth)
		if t, ok := sym.(Terminal); ok {
			tracer().Debugf("%s%v %v", indent, t.Token, t.Span())
		} else {
			tracer().Debugf("%s%s %v", indent, sym.SymbolName(), sym.Span())
		}
		return true
	})
}
