package lr

import (
	"strings"
)

// Item is a rule annotated with a dot position, marking parse progress:
//
//     E ➞ E WORD(+) • B
//
// Items are values; they are compared by rule and dot position.
type Item struct {
	rule   *Rule
	dot    int  // 0 ≤ dot ≤ len(RHS)
	kernel bool // introduced by a shift or the start item
	next   int  // target state of the shift over the symbol after the dot, -1 if none
}

func startItem(r *Rule) Item {
	return Item{rule: r, kernel: true, next: -1}
}

func closureItem(r *Rule) Item {
	return Item{rule: r, next: -1}
}

// Rule returns the item's rule.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position.
func (i Item) Dot() int {
	return i.dot
}

// IsKernel is true for items introduced by a shift.
func (i Item) IsKernel() bool {
	return i.kernel
}

// PeekSpec returns the specifier after the dot, if any.
func (i Item) PeekSpec() (Spec, bool) {
	if i.dot >= len(i.rule.rhs) {
		return Spec{}, false
	}
	return i.rule.rhs[i.dot], true
}

// Complete is true if the dot is behind the last symbol.
func (i Item) Complete() bool {
	return i.dot >= len(i.rule.rhs)
}

// advance moves the dot past the next symbol. The result is a kernel item
// without a successor state.
func (i Item) advance() Item {
	return Item{rule: i.rule, dot: i.dot + 1, kernel: true, next: -1}
}

func (i Item) equals(other Item) bool {
	return i.rule == other.rule && i.dot == other.dot
}

func (i Item) String() string {
	var b strings.Builder
	b.WriteString(i.rule.LHS)
	b.WriteString(" ➞")
	for k, s := range i.rule.rhs {
		if k == i.dot {
			b.WriteString(" •")
		}
		b.WriteByte(' ')
		b.WriteString(s.String())
	}
	if i.Complete() {
		b.WriteString(" •")
	}
	return b.String()
}

func containsItem(items []Item, i Item) bool {
	for _, it := range items {
		if it.equals(i) {
			return true
		}
	}
	return false
}

func itemSetString(items []Item) string {
	var b strings.Builder
	b.WriteString("{")
	for k, item := range items {
		if k == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
