package located

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pgn.located'.
func tracer() tracing.Trace {
	return tracing.Select("pgn.located")
}

// A Cursor is a movable mark within a located tree, walking nodes in
// depth-first pre-order (which, for a lossless tree, is source order).
// Cursors are transient; create a new one per traversal.
type Cursor struct {
	stack *arraystack.Stack
}

// NewCursor sets up a cursor over the subtree rooted at a node.
func NewCursor(root *Node) *Cursor {
	c := &Cursor{stack: arraystack.New()}
	if root != nil {
		c.stack.Push(root)
	}
	return c
}

// Next returns the next node of the walk, or false when the walk is
// done.
func (c *Cursor) Next() (*Node, bool) {
	v, ok := c.stack.Pop()
	if !ok {
		return nil, false
	}
	node := v.(*Node)
	for i := node.NumChildren() - 1; i >= 0; i-- {
		c.stack.Push(node.Child(i))
	}
	return node, true
}

// Terminals walks the subtree and calls f for every terminal node, in
// source order, stopping early if f returns false.
func Terminals(root *Node, f func(*Node) bool) {
	cursor := NewCursor(root)
	count := 0
	for node, ok := cursor.Next(); ok; node, ok = cursor.Next() {
		if node.NumChildren() == 0 && node.Kind().IsTerminal() {
			count++
			if !f(node) {
				break
			}
		}
	}
	tracer().Debugf("cursor visited %d terminal(s)", count)
}
