package scanner

import (
	"github.com/PenguinF/sandra-three-sub010/cst"
)

// Symbol merge adjudication. Two adjacent micro tokens may collapse
// into one logical symbol: a tag-name run followed by digits stays one
// tag name, a letter run plus digits may complete a SAN move, NAG
// digits overflow into more digits, and move punctuation (+ # = - ! ?)
// extends a move candidate. The table is keyed on (current kind, next
// kind); merging is applied greedily left to right, so a three-symbol
// window merges exactly like two pairwise steps.

type kindPair struct {
	cur, next cst.Kind
}

var mergeTable = map[kindPair]bool{
	{cst.KindTagName, cst.KindMoveNumber}:           true,
	{cst.KindTagName, cst.KindIllegalChar}:          true,
	{cst.KindMove, cst.KindMoveNumber}:              true,
	{cst.KindMove, cst.KindTagName}:                 true,
	{cst.KindMove, cst.KindUnrecognizedMove}:        true,
	{cst.KindMove, cst.KindIllegalChar}:             true,
	{cst.KindUnrecognizedMove, cst.KindMoveNumber}:  true,
	{cst.KindUnrecognizedMove, cst.KindTagName}:     true,
	{cst.KindUnrecognizedMove, cst.KindIllegalChar}: true,
	{cst.KindMoveNumber, cst.KindTagName}:           true,
	{cst.KindMoveNumber, cst.KindUnrecognizedMove}:  true,
	{cst.KindNag, cst.KindMoveNumber}:               true,
	{cst.KindOverflowNag, cst.KindMoveNumber}:       true,
	{cst.KindOverflowNag, cst.KindTagName}:          true,
	{cst.KindOverflowNag, cst.KindUnrecognizedMove}: true,
	{cst.KindTermination, cst.KindMoveNumber}:       true,
	{cst.KindTermination, cst.KindTagName}:          true,
	{cst.KindTermination, cst.KindUnrecognizedMove}: true,
}

// tryMerge adjudicates one (current, next) pair. On a merge it returns
// the collapsed token, reclassified from the combined lexeme.
func tryMerge(cur, next *token) (*token, bool) {
	if !mergeTable[kindPair{cur.kind, next.kind}] {
		return nil, false
	}
	if cur.start+uint64(len(cur.lexeme)) != next.start {
		return nil, false
	}
	lexeme := cur.lexeme + next.lexeme
	if next.kind == cst.KindIllegalChar {
		// Punctuation only joins a symbol while the result is still a
		// viable SAN move (or already a complete one).
		if !sanPrefix(lexeme) {
			return nil, false
		}
	}
	merged := &token{
		kind:   reclassify(cur, lexeme),
		lexeme: lexeme,
		start:  cur.start,
		errs:   cur.errs,
	}
	if next.kind != cst.KindIllegalChar {
		merged.errs = append(merged.errs, next.errs...)
	}
	if merged.kind == cst.KindMoveNumber {
		merged.value = numberValue(lexeme)
	}
	return merged, true
}

// reclassify determines the kind of a merged lexeme.
func reclassify(cur *token, lexeme string) cst.Kind {
	switch cur.kind {
	case cst.KindNag, cst.KindOverflowNag:
		// NAG digits followed by more digits overflow; anything else
		// appended to a glyph is an unrecognized symbol.
		if allDigits(lexeme[1:]) {
			return cst.KindOverflowNag
		}
		return cst.KindUnrecognizedMove
	}
	return classify(lexeme)
}
