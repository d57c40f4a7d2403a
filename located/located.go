/*
Package located is the positioned view over PGN content nodes.

Content nodes carry only their own length; absolute offsets and parent
links live in this package. A located node is computed on demand by
walking down from the root and summing the lengths of preceding
siblings, and is transient: it is never cached inside the content tree,
so content nodes stay freely shareable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package located

import (
	"fmt"

	pgn "github.com/PenguinF/sandra-three-sub010"
	"github.com/PenguinF/sandra-three-sub010/cst"
)

// Node is a positioned view of one content node: the content itself, a
// non-owning link to the parent view, and the absolute start offset.
type Node struct {
	content cst.Node
	parent  *Node
	start   uint64
}

// Wrap creates the located view of a tree's root.
func Wrap(root cst.Node) *Node {
	return &Node{content: root}
}

// Content returns the underlying content node.
func (n *Node) Content() cst.Node { return n.content }

// Kind returns the content node's kind.
func (n *Node) Kind() cst.Kind { return n.content.Kind() }

// Parent returns the parent view, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Start returns the absolute start offset of the node.
func (n *Node) Start() uint64 { return n.start }

// Span returns the absolute byte span of the node.
func (n *Node) Span() pgn.Span {
	return pgn.SpanFrom(n.start, n.content.Len())
}

// NumChildren returns the number of children of the content node.
func (n *Node) NumChildren() int { return n.content.NumChildren() }

// Child returns the positioned view of the i-th child. Its start is
// the node's own start plus the lengths of all preceding siblings.
// Out-of-range access is a programming error and panics.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= n.content.NumChildren() {
		panic(fmt.Sprintf("located: child index %d out of range on %s", i, n.Kind()))
	}
	start := n.start
	for j := 0; j < i; j++ {
		start += n.content.Child(j).Len()
	}
	return &Node{content: n.content.Child(i), parent: n, start: start}
}

// TerminalAt descends to the terminal node whose span contains the
// given absolute offset, or nil if the offset lies outside the node.
// Zero-length terminals are skipped; at a boundary the later terminal
// wins.
func (n *Node) TerminalAt(offset uint64) *Node {
	if offset < n.start || offset >= n.start+n.content.Len() {
		return nil
	}
	cur := n
	for cur.NumChildren() > 0 {
		pos := cur.start
		var next *Node
		for i := 0; i < cur.NumChildren(); i++ {
			l := cur.content.Child(i).Len()
			if offset >= pos && offset < pos+l {
				next = &Node{content: cur.content.Child(i), parent: cur, start: pos}
				break
			}
			pos += l
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
