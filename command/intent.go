package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hey-notes/hey/lr/tree"
	"github.com/pingcap/errors"
)

// Intent is what a command asks for.
type Intent struct {
	Kind     string // remind, note, add, create or show
	Subject  string // me or us
	Content  string // free text, as typed
	List     string // list to add to, create or show
	AllLists bool   // show all lists
	When     *When  // time phrase, if any
	Tree     *tree.Node
}

// When is a time phrase.
type When struct {
	Day         string // monday … sunday
	RelativeDay string // today or tomorrow
	Time        string // 5pm, 17:30, …
	Count       int    // in <Count> <Unit>
	Unit        string // minute, hour, day, week or month
}

func (w *When) String() string {
	if w == nil {
		return ""
	}
	var parts []string
	if w.Count > 0 {
		parts = append(parts, fmt.Sprintf("in %d %s", w.Count, w.Unit))
	}
	if w.Day != "" {
		parts = append(parts, "on "+w.Day)
	}
	if w.RelativeDay != "" {
		parts = append(parts, w.RelativeDay)
	}
	if w.Time != "" {
		parts = append(parts, "at "+w.Time)
	}
	return strings.Join(parts, " ")
}

func (in *Intent) String() string {
	var b strings.Builder
	b.WriteString(in.Kind)
	if in.Subject != "" {
		b.WriteString(" subject=" + in.Subject)
	}
	if in.List != "" {
		b.WriteString(fmt.Sprintf(" list=%q", in.List))
	}
	if in.AllLists {
		b.WriteString(" list=*")
	}
	if in.Content != "" {
		b.WriteString(fmt.Sprintf(" content=%q", in.Content))
	}
	if in.When != nil {
		b.WriteString(fmt.Sprintf(" when=%q", in.When))
	}
	return b.String()
}

// NewIntent extracts an intent from a parse tree of the command language.
// words are the words of the input, used to reproduce content as typed.
func NewIntent(root *tree.Node, words []string) (*Intent, error) {
	req := root.Find("Request")
	if req == nil || len(req.Children) != 1 {
		return nil, errors.Errorf("no request in %v", root)
	}
	node, ok := req.Children[0].(*tree.Node)
	if !ok {
		return nil, errors.Errorf("malformed request %v", req)
	}
	intent := &Intent{Kind: strings.ToLower(node.Name), Tree: root}
	if subject, ok := node.Token(SUBJECT); ok {
		intent.Subject = subject.Value
	}
	content := ""
	if c := node.Child("Content"); c != nil {
		content = spanText(c, words)
	}
	switch intent.Kind {
	case "create":
		intent.List = content
	case "add":
		intent.Content = content
		if list, ok := node.Token(WORD); ok {
			intent.List = list.Value
		}
	case "show":
		if _, ok := node.Token(ALL); ok {
			intent.AllLists = true
		} else if list, ok := node.Token(WORD); ok {
			intent.List = list.Value
		}
	default:
		intent.Content = content
	}
	if w := root.Find("When"); w != nil {
		when, err := newWhen(w)
		if err != nil {
			return nil, err
		}
		intent.When = when
	}
	tracer().Infof("intent: %v", intent)
	return intent, nil
}

func newWhen(node *tree.Node) (*When, error) {
	w := &When{}
	for _, t := range node.Terminals() {
		switch t.Name {
		case DAY:
			w.Day = t.Value
		case RELATIVEDAY:
			w.RelativeDay = t.Value
		case TIME:
			w.Time = t.Value
		case UNIT:
			w.Unit = strings.TrimSuffix(t.Value, "s")
		case NUMBER:
			n, err := number(t.Value)
			if err != nil {
				return nil, err
			}
			w.Count = n
		}
	}
	return w, nil
}

func number(s string) (int, error) {
	for k, w := range numberWords {
		if s == w {
			return k + 1, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Annotatef(err, "not a number: %q", s)
	}
	return n, nil
}

// spanText returns the words of the input a node covers.
func spanText(n *tree.Node, words []string) string {
	span := n.Span()
	if span.IsNull() || int(span.To()) > len(words) {
		return n.Text()
	}
	return strings.Join(words[span.From():span.To()], " ")
}
