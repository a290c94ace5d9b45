/*
Package command understands the commands of hey, a tool to quickly write down
thoughts, reminders and list items:

	hey remind me to call Bob tomorrow at 5pm
	hey note down that the meeting moved to friday
	hey add to list groceries oat milk
	hey create a list called tool ideas
	hey show me all lists

The command language is a keyword grammar (see file hey.ebnf). Input is
tokenized with the definitions of Definitions and a default thesaurus, then
parsed by a parser of package lr/slr. Configuration key "executor" may select
the pattern matching parser of package lr/pattern instead, which handles
fewer forms of time phrases.

The result of parsing is an Intent. Carrying out intents is up to clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package command

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hey.command'.
func tracer() tracing.Trace {
	return tracing.Select("hey.command")
}
