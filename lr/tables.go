package lr

import (
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/hey-notes/hey/lr/sparse"
)

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

//go:generate stringer -type=ActionKind

// ActionKind is the kind of a parser action.
type ActionKind int

// Kinds of parser actions. The zero value is not a valid action.
const (
	Shift ActionKind = iota + 1
	Reduce
	Accept
)

// Action is the answer of an automaton to a (state, symbol) query.
type Action struct {
	Kind   ActionKind
	Target int   // target state of a Shift
	Rule   *Rule // rule to reduce by for a Reduce
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("<shift %d>", a.Target)
	case Reduce:
		return fmt.Sprintf("<reduce %d>", a.Rule.Serial)
	case Accept:
		return "<accept>"
	}
	return "<none>"
}

// === Closure and Goto-Set Operations =======================================

// Compute the closure of a kernel: for every item with the dot in front of a
// non-terminal X, add all the rules for X with the dot at the start, unless
// already present. Newly added items are expanded as well.
func (a *Automaton) closure(kernel []Item) []Item {
	C := make([]Item, len(kernel), len(kernel)+8)
	copy(C, kernel)
	for k := 0; k < len(C); k++ { // C grows while iterating
		A, ok := C[k].PeekSpec()
		if !ok || A.IsEOF() || A.IsValued() { // valued specifiers never denote non-terminals
			continue
		}
		for _, r := range a.g.RulesFor(A.Name) {
			if i := closureItem(r); !containsItem(C, i) {
				C = append(C, i)
			}
		}
	}
	return C
}

// gotoSet is the group of items of a state sharing the same literal symbol
// specifier after the dot. Advancing them yields the kernel of the successor state.
type gotoSet struct {
	spec   Spec
	from   []int  // positions of the originating items
	kernel []Item // advanced items
}

// Partition the items of a state into goto-sets, in order of first appearance.
// Items with the dot at the end or in front of $ are never advanced.
func gotoSets(items []Item) []*gotoSet {
	var sets []*gotoSet
	bySpec := make(map[string]*gotoSet)
	for k, i := range items {
		A, ok := i.PeekSpec()
		if !ok || A.IsEOF() {
			continue
		}
		gs, found := bySpec[A.String()]
		if !found {
			gs = &gotoSet{spec: A}
			bySpec[A.String()] = gs
			sets = append(sets, gs)
		}
		gs.from = append(gs.from, k)
		gs.kernel = append(gs.kernel, i.advance())
		tracer().Debugf("goto(%s) -%s-> %s", i, A, i.advance())
	}
	return sets
}

// === Automaton States ======================================================

// State is a state of the LR(0) automaton. Its items are the closure of
// its kernel items, kernel items first.
type State struct {
	ID      int    // serial ID of this state
	items   []Item // configuration items within this state
	nkernel int    // number of kernel items
	reduce  *Rule  // first reducible rule, if any
	Accept  bool   // contains S' ➞ start • $
}

// Items returns all items of a state. Clients must not modify them.
func (s *State) Items() []Item {
	return s.items
}

// Kernel returns the kernel items of a state.
func (s *State) Kernel() []Item {
	return s.items[:s.nkernel]
}

// Reduction returns the rule a state reduces by, or nil.
func (s *State) Reduction() *Rule {
	return s.reduce
}

// Dump is a debugging helper
func (s *State) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	for _, i := range s.items {
		if i.next >= 0 {
			tracer().Debugf("    %v  ⟶ %d", i, i.next)
		} else {
			tracer().Debugf("    %v", i)
		}
	}
	if s.reduce != nil {
		tracer().Debugf("    reduce %v", s.reduce)
	}
	tracer().Debugf("-------------------------")
}

func (s *State) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, len(s.items))
}

// Reduce/reduce ambiguity is resolved by declaration order of the rules,
// independent of the order closure added the items.
func (s *State) firstReduction() *Rule {
	var r *Rule
	for _, i := range s.items {
		if i.Complete() && i.rule.Serial >= 0 && (r == nil || i.rule.Serial < r.Serial) {
			r = i.rule
		}
	}
	return r
}

func (s *State) containsAcceptItem() bool {
	for _, i := range s.items {
		if i.rule.Serial < 0 && i.dot == 1 {
			return true
		}
	}
	return false
}

// Kernel items are identified by rule serial and dot position. The start rule
// has serial -1.
type kernelKey struct {
	Rule int
	Dot  int
}

// We need this for sets of kernel keys. It sorts by rule, then dot.
func kernelKeyComparator(k1, k2 interface{}) int {
	c1 := k1.(kernelKey)
	c2 := k2.(kernelKey)
	if c := utils.IntComparator(c1.Rule, c2.Rule); c != 0 {
		return c
	}
	return utils.IntComparator(c1.Dot, c2.Dot)
}

// kernelSignature computes an order-independent hash for a set of kernel items.
func kernelSignature(kernel []Item) string {
	keys := treeset.NewWith(kernelKeyComparator)
	for _, i := range kernel {
		keys.Add(kernelKey{Rule: i.rule.Serial, Dot: i.dot})
	}
	sorted := make([]kernelKey, 0, keys.Size())
	for _, k := range keys.Values() {
		sorted = append(sorted, k.(kernelKey))
	}
	return fmt.Sprintf("%x", structhash.Md5(sorted, 1))
}

func kernelEquals(k1, k2 []Item) bool {
	if len(k1) != len(k2) {
		return false
	}
	for _, i := range k1 {
		if !containsItem(k2, i) {
			return false
		}
	}
	return true
}

// Automaton edge between 2 states, directed and labeled with a symbol specifier.
type shiftEdge struct {
	from  int
	to    int
	label Spec
}

// === Automaton Construction ================================================

// Automaton is the characteristic finite state machine for a keyword grammar,
// i.e. the LR(0) state diagram, together with its action table.
// It is built once by NewAutomaton and read-only afterwards; it may be
// shared between any number of concurrently running parsers.
type Automaton struct {
	g       *Grammar          // this automaton is for grammar g
	start   *Rule             // S' ➞ start $
	states  []*State          // all the states, index = ID
	edges   *arraylist.List   // all the edges between states
	columns map[string]int    // symbol specifier ⟶ column of shift table
	labels  []Spec            // column ⟶ symbol specifier
	shifts  *sparse.IntMatrix // shift table, state × column ⟶ state
}

// NewAutomaton constructs the LR(0) automaton for a grammar.
//
// States are created breadth first, starting from the synthesized kernel item
//
//     S' ➞ • start $
//
// where start is the LHS of the first rule of g. A candidate state is never
// created twice: states with equal kernel item sets are merged.
func NewAutomaton(g *Grammar) (*Automaton, error) {
	if g == nil || g.Size() == 0 {
		return nil, &ConstructionError{Err: ErrNoRulesSpecified}
	}
	if err := validate(g); err != nil {
		return nil, err
	}
	a := &Automaton{
		g:       g,
		edges:   arraylist.New(),
		columns: make(map[string]int),
	}
	a.start = &Rule{Serial: -1, LHS: StartName, rhs: []Spec{Bare(g.Start()), EOFSpec}}
	a.build()
	a.buildShiftTable()
	tracer().Infof("automaton for grammar %q has %d states and %d edges",
		g.Name, len(a.states), a.edges.Size())
	return a, nil
}

func validate(g *Grammar) error {
	for _, r := range g.rules {
		if r.LHS == "" || r.LHS == StartName {
			return constructionError(ErrInvalidTableRule, "illegal left hand side in rule %d", r.Serial)
		}
		for _, s := range r.rhs {
			if s.Name == "" {
				return constructionError(ErrInvalidTableRule, "unreadable symbol in rule %v", r)
			}
		}
	}
	return nil
}

// Construct the characteristic finite state machine for the grammar.
func (a *Automaton) build() {
	tracer().Debugf("=== build automaton =============================================")
	a.g.Dump()
	index := make(map[string][]int) // kernel signature ⟶ state IDs
	queue := arraylist.New()
	queue.Add(a.addState([]Item{startItem(a.start)}, index))
	for !queue.Empty() {
		x, _ := queue.Get(0)
		queue.Remove(0)
		s := x.(*State)
		for _, gs := range gotoSets(s.items) {
			target := a.findStateByKernel(gs.kernel, index)
			if target == nil {
				target = a.addState(gs.kernel, index)
				queue.Add(target)
			} else {
				tracer().Debugf("goto(%d) -%s-> merged with state %d", s.ID, gs.spec, target.ID)
			}
			for _, k := range gs.from {
				s.items[k].next = target.ID
			}
			a.edges.Add(shiftEdge{from: s.ID, to: target.ID, label: gs.spec})
		}
		s.Dump()
		tracer().Debugf("-----------------------------------------------------------------")
	}
}

// Add a state for a kernel. States get their ID at creation time, so the index
// covers processed, queued and current states alike.
func (a *Automaton) addState(kernel []Item, index map[string][]int) *State {
	s := &State{
		ID:      len(a.states),
		items:   a.closure(kernel),
		nkernel: len(kernel),
	}
	s.reduce = s.firstReduction()
	s.Accept = s.containsAcceptItem()
	a.states = append(a.states, s)
	sig := kernelSignature(kernel)
	index[sig] = append(index[sig], s.ID)
	tracer().Debugf("new state %d = %s", s.ID, itemSetString(s.items))
	return s
}

// Find a state by the kernel items it was created from.
func (a *Automaton) findStateByKernel(kernel []Item, index map[string][]int) *State {
	for _, id := range index[kernelSignature(kernel)] {
		if kernelEquals(a.states[id].Kernel(), kernel) {
			return a.states[id]
		}
	}
	return nil
}

func (a *Automaton) buildShiftTable() {
	it := a.edges.Iterator()
	for it.Next() {
		e := it.Value().(shiftEdge)
		if _, ok := a.columns[e.label.String()]; !ok {
			a.columns[e.label.String()] = len(a.labels)
			a.labels = append(a.labels, e.label)
		}
	}
	tracer().Infof("shift table of size %d x %d", len(a.states), len(a.labels))
	a.shifts = sparse.NewIntMatrix(len(a.states), len(a.labels), sparse.DefaultNullValue)
	it = a.edges.Iterator()
	for it.Next() {
		e := it.Value().(shiftEdge)
		a.shifts.Set(e.from, a.columns[e.label.String()], int32(e.to))
	}
}

// === Queries ===============================================================

// Grammar returns the grammar this automaton has been built for.
func (a *Automaton) Grammar() *Grammar {
	return a.g
}

// Size returns the number of states.
func (a *Automaton) Size() int {
	return len(a.states)
}

// State returns the state with a given ID.
func (a *Automaton) State(id int) (*State, error) {
	if id < 0 || id >= len(a.states) {
		return nil, &LookupError{State: id, Symbol: "-", Err: ErrInvalidSetIndex}
	}
	return a.states[id], nil
}

// Action returns the parser action for a state and a lookahead symbol.
//
// Shifts take precedence. A valued specifier N(v) is more specific than a bare
// N, so items with a matching valued specifier are checked first; within the
// same specificity the first item in declaration order determines the target
// state. If sym is the end of input and the state contains S' ➞ start • $, the
// input is accepted. Otherwise the reduction of the state is returned, if any.
func (a *Automaton) Action(state int, sym Symbol) (Action, error) {
	s, err := a.State(state)
	if err != nil {
		return Action{}, err
	}
	shift := -1
	for _, i := range s.items {
		A, ok := i.PeekSpec()
		if !ok {
			continue
		}
		if A.IsEOF() {
			if IsEOF(sym) && i.rule == a.start {
				return Action{Kind: Accept}, nil
			}
			continue
		}
		if A.Matches(sym) {
			if A.IsValued() {
				return Action{Kind: Shift, Target: i.next}, nil
			}
			if shift < 0 {
				shift = i.next
			}
		}
	}
	if shift >= 0 {
		return Action{Kind: Shift, Target: shift}, nil
	}
	if s.reduce != nil {
		return Action{Kind: Reduce, Rule: s.reduce}, nil
	}
	return Action{}, &LookupError{State: state, Symbol: symbolString(sym), Err: ErrInvalidSymbolForSet}
}

// Goto returns the target state of the shift over a literal symbol specifier.
// In contrast to Action, no matching of symbols takes place.
func (a *Automaton) Goto(state int, A Spec) (int, error) {
	if state < 0 || state >= len(a.states) {
		return -1, &LookupError{State: state, Symbol: A.String(), Err: ErrInvalidSetIndex}
	}
	col, ok := a.columns[A.String()]
	if ok {
		if v := a.shifts.Value(state, col); v != a.shifts.NullValue() {
			return int(v), nil
		}
	}
	return -1, &LookupError{State: state, Symbol: A.String(), Err: ErrInvalidSymbolForSet}
}

// Symbols returns all symbol specifiers the automaton shifts over, in order of
// first appearance.
func (a *Automaton) Symbols() []Spec {
	return a.labels
}

// Dump is a debugging helper
func (a *Automaton) Dump() {
	for _, s := range a.states {
		s.Dump()
	}
}

func symbolString(sym Symbol) string {
	if v, ok := sym.TerminalValue(); ok && v != "" {
		return fmt.Sprintf("%s(%s)", sym.SymbolName(), v)
	}
	return sym.SymbolName()
}

// === Export ================================================================

// ToGraphViz exports the automaton to the Graphviz Dot format.
func (a *Automaton) ToGraphViz(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range a.states {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.items)))
	}
	it := a.edges.Iterator()
	for it.Next() {
		e := it.Value().(shiftEdge)
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", e.from, e.to,
			escapeGraphviz(e.label.String())))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(state *State) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(items []Item) string {
	lines := make([]string, len(items))
	for k, i := range items {
		lines[k] = escapeGraphviz(i.String())
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var graphvizEscaper = strings.NewReplacer(`"`, `\"`, `{`, `\{`, `}`, `\}`,
	`|`, `\|`, `<`, `\<`, `>`, `\>`)

func escapeGraphviz(s string) string {
	return graphvizEscaper.Replace(s)
}

// ActionTableAsHTML exports the action table of an automaton in HTML-format.
// Shifts are denoted as s‹n›, reductions as r‹n› (with n being the rule's serial
// number), and accept as acc.
func ActionTableAsHTML(a *Automaton, w io.Writer) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("ACTION table of size = %d<p>", a.shifts.ValueCount()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range a.labels {
		b.WriteString(fmt.Sprintf("<td>%s</td>", A))
	}
	b.WriteString(fmt.Sprintf("<td>%s</td><td>reduce</td></tr>\n", EOFName))
	var td string // table cell
	for _, s := range a.states {
		b.WriteString(fmt.Sprintf("<tr><td>state %d</td>\n", s.ID))
		for col := range a.labels {
			if v := a.shifts.Value(s.ID, col); v == a.shifts.NullValue() {
				td = "&nbsp;"
			} else {
				td = fmt.Sprintf("s%d", v)
			}
			b.WriteString("<td>" + td + "</td>\n")
		}
		td = "&nbsp;"
		if s.Accept {
			td = "acc"
		}
		b.WriteString("<td>" + td + "</td>\n")
		td = "&nbsp;"
		if s.reduce != nil {
			td = fmt.Sprintf("r%d", s.reduce.Serial)
		}
		b.WriteString("<td>" + td + "</td>\n")
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
