package located

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	pgn "github.com/PenguinF/sandra-three-sub010"
	"github.com/PenguinF/sandra-three-sub010/cst"
	"github.com/PenguinF/sandra-three-sub010/parser"
)

func TestLocatedOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.located")
	defer teardown()
	//
	input := "1. e4 e5"
	root, _ := parser.Parse(input)
	loc := Wrap(root)
	if loc.Span() != pgn.SpanFrom(0, uint64(len(input))) {
		t.Fatalf("expected root span over the whole input, got %s", loc.Span())
	}
	if loc.Parent() != nil {
		t.Errorf("expected the root view to have no parent")
	}
	// Terminal starts are prefix sums of the lengths before them, so
	// walking terminals in order rebuilds the input.
	var sb strings.Builder
	Terminals(loc, func(n *Node) bool {
		term := n.Content().(*cst.Terminal)
		if n.Start() != uint64(sb.Len()) {
			t.Errorf("terminal %q: expected start %d, got %d",
				term.Lexeme(), sb.Len(), n.Start())
		}
		sb.WriteString(term.Lexeme())
		return true
	})
	if sb.String() != input {
		t.Errorf("terminal walk rebuilt %q instead of %q", sb.String(), input)
	}
}

func TestLocatedParentLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.located")
	defer teardown()
	//
	root, _ := parser.Parse("1. e4 e5 1-0")
	loc := Wrap(root)
	leaf := loc.TerminalAt(3) // inside "e4"
	if leaf == nil {
		t.Fatalf("expected a terminal at offset 3")
	}
	// Every parent's span contains the child's span.
	for n := leaf; n.Parent() != nil; n = n.Parent() {
		p := n.Parent()
		if n.Start() < p.Start() || n.Span().To() > p.Span().To() {
			t.Errorf("%s %s escapes parent %s %s", n.Kind(), n.Span(), p.Kind(), p.Span())
		}
	}
	top := leaf
	for top.Parent() != nil {
		top = top.Parent()
	}
	if top.Content() != cst.Node(root) {
		t.Errorf("expected the parent chain to end at the root")
	}
}

func TestTerminalAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.located")
	defer teardown()
	//
	input := "1. e4 e5"
	root, _ := parser.Parse(input)
	loc := Wrap(root)
	//
	cases := []struct {
		offset uint64
		lexeme string
	}{
		{0, "1"},
		{1, "."},
		{2, " "},
		{3, "e4"},
		{4, "e4"},
		{6, "e5"},
		{7, "e5"},
	}
	for _, tc := range cases {
		n := loc.TerminalAt(tc.offset)
		if n == nil {
			t.Errorf("offset %d: expected a terminal, got none", tc.offset)
			continue
		}
		if got := n.Content().(*cst.Terminal).Lexeme(); got != tc.lexeme {
			t.Errorf("offset %d: expected terminal %q, got %q", tc.offset, tc.lexeme, got)
		}
	}
	if n := loc.TerminalAt(uint64(len(input))); n != nil {
		t.Errorf("expected no terminal past the end of input")
	}
}

func TestCursorOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.located")
	defer teardown()
	//
	root, _ := parser.Parse("[E \"v\"] 1. e4 *")
	cursor := NewCursor(Wrap(root))
	first, ok := cursor.Next()
	if !ok || first.Kind() != cst.KindRoot {
		t.Fatalf("expected the walk to start at the root")
	}
	// Pre-order: every node is visited after its parent, and starts
	// never move backwards between terminals.
	var lastTerminalStart uint64
	for node, ok := cursor.Next(); ok; node, ok = cursor.Next() {
		if node.Kind().IsTerminal() {
			if node.Start() < lastTerminalStart {
				t.Errorf("terminal at %d visited after terminal at %d",
					node.Start(), lastTerminalStart)
			}
			lastTerminalStart = node.Start()
		}
	}
}

func TestChildPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.located")
	defer teardown()
	//
	root, _ := parser.Parse("e4")
	loc := Wrap(root)
	defer func() {
		if recover() == nil {
			t.Errorf("expected out-of-range child access to panic")
		}
	}()
	loc.Child(loc.NumChildren())
}
