package parser

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	pgn "github.com/PenguinF/sandra-three-sub010"
	"github.com/PenguinF/sandra-three-sub010/cst"
)

func codesOf(errs []pgn.Error) []pgn.ErrorCode {
	codes := make([]pgn.ErrorCode, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	return codes
}

func expectCodes(t *testing.T, input string, want ...pgn.ErrorCode) *cst.Root {
	root, errs := Parse(input)
	got := codesOf(errs)
	if len(got) != len(want) {
		t.Errorf("%q: expected diagnostics %v, got %v", input, want, got)
		return root
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%q: expected diagnostics %v, got %v", input, want, got)
			return root
		}
	}
	return root
}

func TestParseValidGame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	input := "[Event \"Test\"]\n[Site \"?\"]\n\n" +
		"1. e4 e5 2. Nf3 {solid} Nc6 (2... d6 $1) 3. Bb5 a6 1-0\n"
	root, errs := Parse(input)
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics on valid input, got %v", errs)
	}
	if got := cst.Text(root); got != input {
		t.Errorf("expected lossless text, got %q", got)
	}
	if root.Len() != uint64(len(input)) {
		t.Errorf("expected root length %d, got %d", len(input), root.Len())
	}
	if root.NumChildren() != 2 { // one game plus end-of-input
		t.Errorf("expected 1 game, got %d children", root.NumChildren())
	}
}

func TestParseTagErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	expectCodes(t, "[", pgn.EmptyTag, pgn.MissingTagBracketClose)
	expectCodes(t, "[]", pgn.EmptyTag)
	expectCodes(t, "[] []", pgn.EmptyTag, pgn.EmptyTag)
	expectCodes(t, `[Event]`, pgn.MissingTagValue)
	expectCodes(t, `["value"]`, pgn.MissingTagName)
	expectCodes(t, `Event "value"]`, pgn.MissingTagBracketOpen)
	expectCodes(t, `[Event "a" "b"]`, pgn.MultipleTagValues)
}

func TestParseTagErrorSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	_, errs := Parse("[")
	if len(errs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", errs)
	}
	for _, e := range errs {
		if e.Span != pgn.SpanFrom(0, 1) {
			t.Errorf("expected diagnostic span (0…1), got %s", e.Span)
		}
	}
}

func TestParsePlyErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	expectCodes(t, "1.", pgn.MissingMove)
	expectCodes(t, "1", pgn.MissingMove)
	expectCodes(t, "..", pgn.OrphanPeriod, pgn.OrphanPeriod,
		pgn.MissingMoveNumber, pgn.MissingMove)
	expectCodes(t, "$256", pgn.OverflowNag, pgn.MissingMoveNumber, pgn.MissingMove)
	expectCodes(t, "1. e4 e5")
}

func TestParseVariationErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	// Inner diagnostics come before those of the enclosing ply.
	expectCodes(t, "()", pgn.EmptyVariation, pgn.MissingMoveNumber, pgn.MissingMove)
	expectCodes(t, "(1. e4", pgn.MissingParenthesisClose,
		pgn.MissingMoveNumber, pgn.MissingMove)
	expectCodes(t, ")", pgn.OrphanParenthesisClose)
	expectCodes(t, "e4 $4) e5", pgn.OrphanParenthesisClose)
	expectCodes(t, "1. e4 (1... c5) $1", pgn.VariationBeforeNAG)
	expectCodes(t, "1. e4 (1... c5) (1... e5) 2. Nf3")
}

func TestParseNestedVariations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	// "1((" leaves three separate symbols; the inner variation reports
	// before the outer one.
	expectCodes(t, "1((",
		pgn.EmptyVariation, pgn.MissingParenthesisClose, // inner '('
		pgn.MissingMoveNumber, pgn.MissingMove, // ply holding the inner variation
		pgn.MissingParenthesisClose, // outer '('
		pgn.MissingMove)             // ply holding the outer variation
}

func TestParseGameLevelErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	// A full game without tags lacks its tag section; a tagged game
	// without a marker lacks its termination. Bare fragments are left
	// alone.
	expectCodes(t, "1. e4 1-0", pgn.MissingTagSection)
	expectCodes(t, `[Event "x"] 1. e4`, pgn.MissingGameTerminationMarker)
	_, errs := Parse("1. e4 1-0")
	if len(errs) != 1 || errs[0].Span != pgn.SpanFrom(0, 9) {
		t.Errorf("expected the game diagnostic to span the whole game, got %v", errs)
	}
	expectCodes(t, `[Event "x"] 1. e4 1-0`)
	expectCodes(t, "1. e4")
	expectCodes(t, `[Event "x"]`)
}

func TestParseScannerErrorsFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	// Lexical diagnostics keep their discovery position relative to the
	// tree builder's own.
	_, errs := Parse("{open")
	if len(errs) != 1 || errs[0].Code != pgn.UnterminatedComment {
		t.Errorf("expected an UnterminatedComment diagnostic, got %v", errs)
	}
	_, errs = Parse("1. & e4")
	if len(errs) != 1 || errs[0].Code != pgn.IllegalCharacter {
		t.Errorf("expected an IllegalCharacter diagnostic, got %v", errs)
	}
}

func TestParseMultipleGames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	input := `[A "1"] 1. e4 1-0 [B "2"] 1. d4 0-1`
	root, errs := Parse(input)
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", errs)
	}
	if root.NumChildren() != 3 { // two games plus end-of-input
		t.Fatalf("expected 2 games, got %d children", root.NumChildren())
	}
	for i := 0; i < 2; i++ {
		if k := root.Child(i).Kind(); k != cst.KindGame {
			t.Errorf("expected child #%d to be a game, got %s", i, k)
		}
	}
	if got := cst.Text(root); got != input {
		t.Errorf("expected lossless text, got %q", got)
	}
}

func TestParseRootCarriesErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	root, errs := Parse("[")
	if len(root.Errors()) != len(errs) {
		t.Fatalf("expected root to carry the diagnostics")
	}
	for i, e := range errs {
		if root.Errors()[i].Code != e.Code || root.Errors()[i].Span != e.Span {
			t.Errorf("diagnostic #%d differs on root: %v vs %v", i, root.Errors()[i], e)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pgn.parser")
	defer teardown()
	//
	// Totality: any input at all yields a tree whose text is the input.
	inputs := []string{
		"",
		"[",
		"()",
		"1.",
		"$256",
		"((((",
		"}{",
		`[Event "unterminated`,
		"1. e4 (e5",
		"%esc\n1. e4",
		"e4 e5 ) ) *",
		"\x00\x01\x02",
		"[Event \"Test\"]\n1. e4 e5 1/2-1/2\n",
		"; just a comment",
	}
	for _, input := range inputs {
		root, _ := Parse(input)
		if got := cst.Text(root); got != input {
			t.Errorf("round trip failed: %q became %q", input, got)
		}
		if root.Len() != uint64(len(input)) {
			t.Errorf("%q: expected root length %d, got %d", input, len(input), root.Len())
		}
	}
}
