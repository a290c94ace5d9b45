package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	initDisplay()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hey",
		Short: "Quickly write down thoughts, reminders and lists",
		Long: `hey understands short commands in natural language, like

  hey remind me to call Bob tomorrow at 5pm

Sub-command parse shows how a command is understood.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setup(cmd.Flags(), cmd.Name() == "repl")
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")
	flags.StringP("executor", "x", "table", "Parser executor [table|pattern]")
	flags.Bool("panic-on-stuck", false, "Panic if the parser stops making progress")
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newReplCmd())
	return rootCmd
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
