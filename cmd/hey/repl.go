package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/hey-notes/hey/command"
	"github.com/npillmayer/schuko/gconf"
	"github.com/pingcap/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Enter commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.New("hey> ")
			if err != nil {
				return errors.Annotate(err, "cannot start interactive mode")
			}
			defer rl.Close()
			intp := &Intp{repl: rl, cmd: cmd}
			pterm.Info.Println("Welcome to hey")
			tracer().Infof("Quit with <ctrl>D")
			intp.REPL()
			return nil
		},
	}
}

// Intp is our interactive session. Lines starting with a colon are
// session commands:
//
//	:tokens     toggle printing of tokens
//	:executor   show the parser executor in use
//	:quit       leave
type Intp struct {
	repl       *readline.Instance
	cmd        *cobra.Command
	showTokens bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval handles one line of input and reports whether the session should end.
func (intp *Intp) Eval(line string) bool {
	out := intp.cmd.OutOrStdout()
	switch line {
	case ":quit", ":q":
		return true
	case ":tokens":
		intp.showTokens = !intp.showTokens
		pterm.Info.Printfln("print tokens: %v", intp.showTokens)
		return false
	case ":executor":
		executor := gconf.GetString("executor")
		if executor == "" {
			executor = "table"
		}
		if _, err := command.NewParser(); err != nil {
			pterm.Error.Println(err.Error())
			return false
		}
		pterm.Info.Println(executor)
		return false
	}
	if strings.HasPrefix(line, ":") {
		pterm.Error.Printfln("unknown session command %s", line)
		return false
	}
	if err := understand(out, line, intp.showTokens); err != nil {
		tracer().Debugf("%v", err)
	}
	return false
}
