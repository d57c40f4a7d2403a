package cst

import (
	"testing"

	pgn "github.com/PenguinF/sandra-three-sub010"
)

func TestInterning(t *testing.T) {
	if NewMove("e4") != NewMove("e4") {
		t.Errorf("expected identical terminals for identical moves")
	}
	if NewMove("e4") == NewMove("e5") {
		t.Errorf("expected distinct terminals for distinct lexemes")
	}
	if NewMoveNumber("1", 1) == NewTagName("1") {
		t.Errorf("expected distinct terminals for distinct kinds")
	}
	if NewBlockComment("{x", true) == NewBlockComment("{x", false) {
		t.Errorf("expected the unterminated flag to separate terminals")
	}
	sub := []pgn.Error{pgn.NewError(pgn.IllegalControlCharacter, pgn.SpanFrom(1, 1), "'\\x01'")}
	if NewTagValue(`"a"`, "a", false, sub) != NewTagValue(`"a"`, "a", false, sub) {
		t.Errorf("expected identical tag values to intern to one terminal")
	}
}

func TestSingletons(t *testing.T) {
	if BracketOpen() != BracketOpen() || Period() != Period() {
		t.Errorf("expected fixed terminals to be singletons")
	}
	if EndOfInput().Len() != 0 {
		t.Errorf("expected end-of-input to be zero length")
	}
	if Period().Lexeme() != "." {
		t.Errorf("expected period lexeme '.', got %q", Period().Lexeme())
	}
}

func TestNodeTextAndLen(t *testing.T) {
	ws := NewWhitespace(" ")
	comment := NewLineComment("; hi")
	trivia := NewTrivia([]Node{NewTriviaElement(ws, comment)}, NewWhitespace("\n"))
	sym := NewSymbol(trivia, NewMove("e4"))
	if got := Text(sym); got != " ; hi\ne4" {
		t.Errorf("expected symbol text %q, got %q", " ; hi\ne4", got)
	}
	if sym.Len() != 8 {
		t.Errorf("expected length 8, got %d", sym.Len())
	}
	if sym.Terminal() != NewMove("e4") {
		t.Errorf("expected the significant terminal to be the move")
	}
	if sym.LeadingTrivia() == nil {
		t.Errorf("expected leading trivia to be reachable")
	}
}

func TestSymbolWithoutTrivia(t *testing.T) {
	sym := NewSymbol(nil, NewMoveNumber("12", 12))
	if sym.NumChildren() != 1 {
		t.Errorf("expected a single child, got %d", sym.NumChildren())
	}
	if sym.LeadingTrivia() != nil {
		t.Errorf("expected no leading trivia")
	}
}

func TestEmptySections(t *testing.T) {
	if n := NewTagSection(nil); n.Len() != 0 || n.NumChildren() != 0 {
		t.Errorf("expected an empty tag section to be a valid zero-length node")
	}
	if n := NewPlyList(nil); n.Len() != 0 {
		t.Errorf("expected an empty ply list to be a valid zero-length node")
	}
}

func TestChildPanics(t *testing.T) {
	expectPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		f()
	}
	expectPanic("terminal child", func() {
		NewMove("e4").Child(0)
	})
	expectPanic("out of range", func() {
		NewPly([]Node{NewSymbol(nil, NewMove("e4"))}).Child(1)
	})
}

func TestRootErrors(t *testing.T) {
	errs := []pgn.Error{pgn.NewError(pgn.MissingMove, pgn.SpanFrom(0, 2))}
	root := NewRoot([]Node{NewSymbol(nil, EndOfInput())}, errs)
	if len(root.Errors()) != 1 || root.Errors()[0].Code != pgn.MissingMove {
		t.Errorf("expected the root to carry its diagnostics")
	}
	if root.Kind() != KindRoot {
		t.Errorf("expected kind Root, got %s", root.Kind())
	}
}
