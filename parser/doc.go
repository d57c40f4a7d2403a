/*
Package parser assembles PGN symbol streams into lossless syntax trees.

Parse is the module's main entry point. It is total and deterministic:
for any input string it produces exactly one tree and one ordered
diagnostic list, never fails, and the concatenated text of the tree's
terminals reproduces the input byte for byte.

The tree builder is a recursive-descent state machine over
symbols-with-trivia. Every grammar slot is optional: a tag pair may
lack its brackets, name or value, a ply may lack its move number or
move, a variation may lack its closing parenthesis. Each missing or
misplaced element degrades to a best-effort node plus a diagnostic;
nested constructs report their diagnostics before the enclosing
construct reports its own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser
