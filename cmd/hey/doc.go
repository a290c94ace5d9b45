/*
Command hey is a tool to quickly write down thoughts. It understands commands
in a small natural language:

	hey remind me to call Bob tomorrow at 5pm
	hey note down that the meeting moved to friday
	hey add to list groceries oat milk

This program parses commands and shows what it understood; it does not store
anything. Sub-commands:

	hey parse <words…>    print the parse tree and the intent of a command
	hey table             print the grammar or the automaton of the command language
	hey repl              interactive mode

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hey.cli'
func tracer() tracing.Trace {
	return tracing.Select("hey.cli")
}
