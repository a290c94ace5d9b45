/*
Package lexmach provides an adapter to use the lexmachine scanner generator
for the word patterns of package scanner.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing regular expressions.
Please refer to the lexmachine documentation on how to instruct lexmachine.

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   token with a given ID
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUMBER", 1))
	}

Having that, clients use `NewLMAdapter` to compile the patterns into a DFA.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(init)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.

	scan, err := LM.Scanner("input string to tokenize")
	for tok, ok := scan.NextToken(); ok; tok, ok = scan.NextToken() {
		…
	}

The tokenizer of package scanner works on single words. It uses Match, which
succeeds only if a pattern covers the complete word:

	id, lexeme, ok := LM.Match("12:30")

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
