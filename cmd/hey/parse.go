package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/hey-notes/hey/command"
	"github.com/hey-notes/hey/lr"
	"github.com/hey-notes/hey/lr/tree"
	"github.com/pingcap/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var showTokens bool
	cmd := &cobra.Command{
		Use:   "parse <words…>",
		Short: "Print the parse tree and the intent of a command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return understand(cmd.OutOrStdout(), strings.Join(args, " "), showTokens)
		},
	}
	cmd.Flags().BoolVarP(&showTokens, "tokens", "k", false, "print the tokens of the command")
	return cmd
}

// understand parses a command and prints what hey understood.
func understand(w io.Writer, text string, showTokens bool) error {
	text = strings.TrimSpace(text)
	tracer().Infof("input is %q", text)
	if showTokens {
		tokens, err := command.Tokenize(text)
		if err != nil {
			pterm.Error.Println(err.Error())
			return err
		}
		for _, t := range tokens {
			fmt.Fprintf(w, "%-14s %v\n", t.String(), t.Span)
		}
	}
	intent, err := command.Parse(text)
	if err != nil {
		pterm.Error.Println(err.Error())
		if perr, ok := errors.Cause(err).(*lr.ParseError); ok {
			tracer().Infof("%s", perr.StackString())
		}
		return err
	}
	if err := printTree(w, intent.Tree); err != nil {
		return err
	}
	fmt.Fprintln(w, intent.String())
	return nil
}

func printTree(w io.Writer, root *tree.Node) error {
	s, err := pterm.DefaultTree.WithRoot(treeNode(root)).Srender()
	if err != nil {
		return errors.Annotate(err, "rendering parse tree")
	}
	_, err = io.WriteString(w, s)
	return err
}

// treeNode converts a parse tree for pterm's tree printer.
func treeNode(sym tree.Symbol) pterm.TreeNode {
	switch s := sym.(type) {
	case *tree.Node:
		tn := pterm.TreeNode{Text: s.Name}
		for _, ch := range s.Children {
			tn.Children = append(tn.Children, treeNode(ch))
		}
		return tn
	case tree.Terminal:
		return pterm.TreeNode{Text: s.Token.String()}
	}
	return pterm.TreeNode{Text: "?"}
}
