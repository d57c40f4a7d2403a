package cst

import (
	"fmt"
	"strings"

	pgn "github.com/PenguinF/sandra-three-sub010"
)

// Node is the common interface of all content nodes. Content nodes are
// immutable after construction and carry no absolute position.
type Node interface {
	Kind() Kind
	Len() uint64          // byte length of the source text this node spans
	NumChildren() int     // 0 for terminals
	Child(i int) Node     // panics on out-of-range access
	writeText(*strings.Builder)
}

// Text reproduces the exact source substring a node spans, trivia
// included.
func Text(n Node) string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

// --- Terminals --------------------------------------------------------

// Terminal is a leaf content node: a fixed lexeme of a fixed kind, plus
// a small semantic payload for some kinds (move number value, NAG value,
// decoded tag value text). Terminals are interned; always create them
// through the New…-constructors in this package.
type Terminal struct {
	kind         Kind
	lexeme       string
	value        uint32      // move number or NAG value
	tagText      string      // decoded text of a tag value
	unterminated bool        // block comments and tag values only
	subErrors    []pgn.Error // tag values only, spans relative to node start
}

var _ Node = (*Terminal)(nil)

// Kind is part of the Node interface.
func (t *Terminal) Kind() Kind { return t.kind }

// Len is part of the Node interface.
func (t *Terminal) Len() uint64 { return uint64(len(t.lexeme)) }

// NumChildren is part of the Node interface. Terminals have no children.
func (t *Terminal) NumChildren() int { return 0 }

// Child is part of the Node interface. Terminals panic for every index.
func (t *Terminal) Child(i int) Node {
	panic(fmt.Sprintf("cst: child index %d on terminal %s", i, t.kind))
}

// Lexeme returns the terminal's exact source text.
func (t *Terminal) Lexeme() string { return t.lexeme }

// Value returns the numeric payload of move number and NAG terminals.
func (t *Terminal) Value() uint32 { return t.value }

// TagText returns the decoded text of a tag value terminal, i.e. the
// lexeme without quotes and with escape sequences resolved.
func (t *Terminal) TagText() string { return t.tagText }

// IsUnterminated reports whether a block comment or tag value ran into
// the end of input (or end of line) before its closing delimiter.
func (t *Terminal) IsUnterminated() bool { return t.unterminated }

// SubErrors returns the lexical errors recorded inside a tag value.
// Spans are relative to the start of the terminal.
func (t *Terminal) SubErrors() []pgn.Error { return t.subErrors }

func (t *Terminal) writeText(sb *strings.Builder) {
	sb.WriteString(t.lexeme)
}

func (t *Terminal) String() string {
	return fmt.Sprintf("%s(%q)", t.kind, t.lexeme)
}

// --- Non-terminals ----------------------------------------------------

// nonterminal is the uniform representation of inner content nodes: a
// kind, an ordered child list and the cached sum of child lengths.
type nonterminal struct {
	kind     Kind
	children []Node
	length   uint64
}

var _ Node = (*nonterminal)(nil)

func newNonterminal(kind Kind, children []Node) *nonterminal {
	var length uint64
	for _, ch := range children {
		length += ch.Len()
	}
	return &nonterminal{kind: kind, children: children, length: length}
}

func (n *nonterminal) Kind() Kind       { return n.kind }
func (n *nonterminal) Len() uint64      { return n.length }
func (n *nonterminal) NumChildren() int { return len(n.children) }

func (n *nonterminal) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		panic(fmt.Sprintf("cst: child index %d out of range on %s with %d children",
			i, n.kind, len(n.children)))
	}
	return n.children[i]
}

func (n *nonterminal) writeText(sb *strings.Builder) {
	for _, ch := range n.children {
		ch.writeText(sb)
	}
}

func (n *nonterminal) String() string {
	return fmt.Sprintf("%s/%d", n.kind, len(n.children))
}

// --- Root -------------------------------------------------------------

// Root is the top node of a parsed buffer: the ordered list of games
// (and nothing else; trailing trivia hangs off the final end-of-input
// symbol), plus the full ordered diagnostic list.
type Root struct {
	nonterminal
	errors []pgn.Error
}

// NewRoot creates a root node. The last child is expected to be the
// end-of-input symbol carrying the buffer's trailing trivia.
func NewRoot(children []Node, errors []pgn.Error) *Root {
	return &Root{
		nonterminal: *newNonterminal(KindRoot, children),
		errors:      errors,
	}
}

// Errors returns the diagnostics of the parse, in discovery order.
func (r *Root) Errors() []pgn.Error { return r.errors }
