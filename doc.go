/*
Package hey is a small LR toolbox for keyword-driven natural-language commands,
like "hey remind me to call mom tomorrow at 5pm".

Keyword grammars are small, highly ambiguous and written by hand. Package
structure is as follows:

■ lr: Package lr builds a deterministic LR(0) automaton from an ordered list of
rules. Ambiguities are resolved silently by declaration order.

■ lr/slr and lr/pattern: two shift-reduce executors producing parse trees
(package lr/tree), one driven by the automaton, one matching rule patterns
directly against the parse stack.

■ lr/scanner: Package scanner splits input into words and categorizes them,
including synonyms from a thesaurus.

■ command: Package command holds the grammar of the hey command line and
extracts intents from parse trees.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hey
