package command

import "github.com/hey-notes/hey/lr/scanner"

// Token categories of the command language.
const (
	CLI         = "CLI"
	COMMAND     = "COMMAND"
	SUBJECT     = "SUBJECT"
	TO          = "TO"
	AT          = "AT"
	ON          = "ON"
	IN          = "IN"
	DOWN        = "DOWN"
	THAT        = "THAT"
	ALL         = "ALL"
	LIST        = "LIST"
	CALLED      = "CALLED"
	DAY         = "DAY"
	RELATIVEDAY = "RELATIVE_DAY"
	UNIT        = "UNIT"
	NUMBER      = "NUMBER"
	TIME        = "TIME"
	WORD        = "WORD"
)

var numberWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// Definitions returns the token definitions of the command language.
func Definitions() []scanner.Definition {
	return []scanner.Definition{
		scanner.Words(CLI, "hey"),
		scanner.Words(COMMAND, "remind", "note", "add", "create", "show"),
		scanner.Words(SUBJECT, "me", "us"),
		scanner.Words(TO, "to"),
		scanner.Words(AT, "at"),
		scanner.Words(ON, "on"),
		scanner.Words(IN, "in"),
		scanner.Words(DOWN, "down"),
		scanner.Words(THAT, "that"),
		scanner.Words(ALL, "all"),
		scanner.Words(LIST, "list", "lists"),
		scanner.Words(CALLED, "called"),
		scanner.Words(DAY, "monday", "tuesday", "wednesday", "thursday", "friday",
			"saturday", "sunday"),
		scanner.Words(RELATIVEDAY, "today", "tomorrow"),
		scanner.Words(UNIT, "minute", "minutes", "hour", "hours", "day", "days",
			"week", "weeks", "month", "months"),
		scanner.Words(NUMBER, numberWords...),
		scanner.Pattern(TIME, `[0-9][0-9]?((:[0-9][0-9])|(am|pm)|(:[0-9][0-9](am|pm)))`),
		scanner.Pattern(NUMBER, `[0-9]+`),
		scanner.Wildcard(WORD),
	}
}
