/*
Package pgn provides lossless, error-tolerant syntax trees for PGN
(Portable Game Notation), the standard chess game interchange format.

Arbitrary, possibly malformed input text is turned into a complete
concrete syntax tree which reproduces the original text byte for byte
and carries a structured, position-accurate list of diagnostics for
anything that deviates from well-formed PGN. Parsing never fails.
Package structure is as follows:

■ cst: Package cst defines the immutable content nodes of the tree:
terminal symbols, trivia (whitespace, comments, escape lines, illegal
characters) and non-terminal constructs like tag pairs, plies,
variations and games. Content nodes carry no absolute positions and may
be shared between trees.

■ scanner: Package scanner is the total tokenizer. Every input byte is
consumed into exactly one symbol; adjacent symbols are merged by a fixed
adjudication table, and non-significant runs are attached as leading
trivia.

■ parser: Package parser assembles the symbol stream into games. It is
the main entry point: parser.Parse(text) returns the root node and the
ordered diagnostic list.

■ located: Package located is a thin positioned view over content nodes,
computing absolute offsets on demand from prefix sums of sibling widths.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pgn
