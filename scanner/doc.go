/*
Package scanner is the total tokenizer for PGN text.

The scanner is total: every input byte is consumed into exactly one
terminal symbol (significant, whitespace, comment, escape line, or a
single-character illegal sentinel), and scanning always terminates,
consuming at least one byte per symbol. Malformed input never makes the
scanner fail; it degrades to best-effort terminals (unterminated
comments, error-valued tag values) plus diagnostics reported through a
pluggable error handler.

Scanning happens in two stages. A micro pass cuts the input into
homogeneous runs: digit runs (game termination markers take priority by
longest match), letter runs, '$'-glyphs, quoted tag values, comments,
escape lines and single characters. A merge pass then collapses
adjacent runs into logical symbols by a fixed adjudication table keyed
on (current kind, next kind): this is where "Nf" + "3" becomes the
move Nf3, "1" + "e" + "4" becomes an unrecognized move, and NAG digits
overflow past 255. The table is applied greedily left to right and is
transitive over three-symbol windows.

Completed runs are classified by a DFA (lexmachine), compiled once;
merge viability of partial runs is decided by a small SAN prefix
walker. Non-significant runs are attached as leading trivia to the next
significant symbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package scanner
