package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hey-notes/hey/command"
	"github.com/hey-notes/hey/lr"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var format, grammarFile string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the grammar or the LR(0) automaton of a command language",
		Long: `Print the command language. Formats are
  rules    the grammar rules, numbered by serial
  states   the item sets of the automaton
  dot      the automaton as a GraphViz graph
  html     the action table as an HTML table

Option --grammar reads another language from an EBNF file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := automaton(grammarFile)
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), a, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "rules", "output format [rules|states|dot|html]")
	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file")
	return cmd
}

func automaton(grammarFile string) (*lr.Automaton, error) {
	if grammarFile == "" {
		return command.Automaton()
	}
	f, err := os.Open(grammarFile)
	if err != nil {
		return nil, errors.Annotatef(err, "cannot read grammar")
	}
	defer f.Close()
	g, err := lr.LoadEBNF(grammarFile, f)
	if err != nil {
		return nil, errors.Annotatef(err, "grammar %s", grammarFile)
	}
	a, err := lr.NewAutomaton(g)
	return a, errors.Trace(err)
}

func printTable(w io.Writer, a *lr.Automaton, format string) error {
	switch format {
	case "rules":
		a.Grammar().EachRule(func(r *lr.Rule) {
			fmt.Fprintf(w, "%3d: %v\n", r.Serial, r)
		})
	case "states":
		for id := 0; id < a.Size(); id++ {
			state, err := a.State(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "--- state %03d ---\n", state.ID)
			for _, item := range state.Items() {
				fmt.Fprintf(w, "    %v\n", item)
			}
			if r := state.Reduction(); r != nil {
				fmt.Fprintf(w, "    reduce %v\n", r)
			}
		}
	case "dot":
		return a.ToGraphViz(w)
	case "html":
		return lr.ActionTableAsHTML(a, w)
	default:
		return errors.Errorf("unknown table format %q", format)
	}
	return nil
}
