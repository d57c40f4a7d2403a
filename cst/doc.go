/*
Package cst defines the content layer of PGN syntax trees.

Content nodes are immutable and position independent: a node knows its
kind, its byte length, and (for terminals) its exact source lexeme plus
a small semantic payload, but never an absolute offset. Two content
nodes of the same kind and payload are interchangeable, which allows
structural sharing between trees; terminal nodes are interned for this
purpose.

The node kinds form a closed enumeration. Clients dispatch over kinds
with an exhaustive switch; there is no visitor machinery. The invariant
maintained by all constructors is losslessness: concatenating the text
of a node's children, in order, reproduces the exact source substring
the node spans.

Positions and parent links live in the separate package located, which
computes them on demand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cst
