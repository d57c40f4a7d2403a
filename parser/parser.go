package parser

import (
	"github.com/npillmayer/schuko/tracing"

	pgn "github.com/PenguinF/sandra-three-sub010"
	"github.com/PenguinF/sandra-three-sub010/cst"
	"github.com/PenguinF/sandra-three-sub010/scanner"
)

// tracer traces with key 'pgn.parser'.
func tracer() tracing.Trace {
	return tracing.Select("pgn.parser")
}

// Parse turns PGN text into a lossless syntax tree plus the ordered
// diagnostic list. It never fails; malformed input degrades to
// best-effort nodes and diagnostics. The returned root also carries the
// diagnostics.
func Parse(text string) (*cst.Root, []pgn.Error) {
	p := &parser{sc: scanner.New(text)}
	p.sc.SetErrorHandler(func(e pgn.Error) {
		p.errs = append(p.errs, e)
	})
	p.look = p.sc.Next()
	var games []cst.Node
	for p.peek() != cst.KindEndOfInput {
		games = append(games, p.parseGame())
	}
	children := append(games, cst.Node(p.look))
	root := cst.NewRoot(children, p.errs)
	tracer().Infof("parsed %d game(s), %d diagnostic(s)", len(games), len(p.errs))
	return root, p.errs
}

// parser holds the one-symbol lookahead state of a parse run. Absolute
// positions are tracked here, while the content nodes being built stay
// position independent.
type parser struct {
	sc      *scanner.Scanner
	look    *cst.Symbol
	pos     uint64 // absolute start of the lookahead symbol
	lastEnd uint64 // absolute end of the last consumed terminal
	errs    []pgn.Error
}

func (p *parser) peek() cst.Kind {
	return p.look.Terminal().Kind()
}

// nextStart is the absolute start of the lookahead's terminal, leading
// trivia excluded.
func (p *parser) nextStart() uint64 {
	return p.pos + p.look.Len() - p.look.Terminal().Len()
}

// advance consumes the lookahead symbol and returns it together with
// the absolute span of its terminal.
func (p *parser) advance() (*cst.Symbol, pgn.Span) {
	sym := p.look
	span := pgn.SpanFrom(p.nextStart(), sym.Terminal().Len())
	p.pos += sym.Len()
	p.lastEnd = span.To()
	p.look = p.sc.Next()
	return sym, span
}

func (p *parser) report(code pgn.ErrorCode, span pgn.Span, params ...string) {
	p.errs = append(p.errs, pgn.NewError(code, span, params...))
}

// spanSince yields the span from a recorded construct start to the end
// of the last consumed terminal.
func (p *parser) spanSince(start uint64) pgn.Span {
	span := pgn.SpanFrom(start, 0)
	if p.lastEnd > start {
		span = span.Extend(pgn.SpanFrom(p.lastEnd, 0))
	}
	return span
}

// --- Games ------------------------------------------------------------

func (p *parser) parseGame() cst.Node {
	start := p.nextStart()
	tagSection, tagCount := p.parseTagSection()
	plies, termination := p.parsePlies(false)
	plyList := cst.NewPlyList(plies)

	// Game level diagnostics come last, after all inner diagnostics of
	// the game. A bare movetext fragment is not penalized for lacking
	// tags, and a tag-only game is not penalized for lacking a
	// termination marker.
	if tagCount == 0 && len(plies) > 0 && termination != nil {
		p.report(pgn.MissingTagSection, p.spanSince(start))
	}
	if tagCount > 0 && len(plies) > 0 && termination == nil {
		p.report(pgn.MissingGameTerminationMarker, p.spanSince(start))
	}
	return cst.NewGame(tagSection, plyList, termination)
}

// --- Tag section ------------------------------------------------------

func startsTagPair(k cst.Kind) bool {
	switch k {
	case cst.KindBracketOpen, cst.KindTagName, cst.KindTagValue, cst.KindBracketClose:
		return true
	}
	return false
}

func (p *parser) parseTagSection() (cst.Node, int) {
	var pairs []cst.Node
	for startsTagPair(p.peek()) {
		pairs = append(pairs, p.parseTagPair())
	}
	return cst.NewTagSection(pairs), len(pairs)
}

// parseTagPair is maximally permissive: every element of the pair
// (bracket-open, tag name, tag value, bracket-close) may be missing,
// and each absence yields its own diagnostic when the pair closes.
func (p *parser) parseTagPair() cst.Node {
	start := p.nextStart()
	var children []cst.Node
	var haveOpen, haveName, haveClose bool
	valueCount := 0

loop:
	for {
		switch p.peek() {
		case cst.KindBracketOpen:
			if len(children) > 0 {
				break loop // next pair starts here
			}
			sym, _ := p.advance()
			children = append(children, sym)
			haveOpen = true
		case cst.KindTagName:
			if haveName || valueCount > 0 {
				break loop // one name slot per pair
			}
			sym, _ := p.advance()
			children = append(children, sym)
			haveName = true
		case cst.KindTagValue:
			sym, span := p.advance()
			children = append(children, sym)
			valueCount++
			if valueCount > 1 {
				p.report(pgn.MultipleTagValues, span)
			}
		case cst.KindBracketClose:
			sym, _ := p.advance()
			children = append(children, sym)
			haveClose = true
			break loop
		default:
			break loop
		}
	}

	span := p.spanSince(start)
	if !haveOpen {
		p.report(pgn.MissingTagBracketOpen, span)
	}
	if !haveName && valueCount == 0 {
		p.report(pgn.EmptyTag, span)
	} else {
		if !haveName {
			p.report(pgn.MissingTagName, span)
		}
		if valueCount == 0 {
			p.report(pgn.MissingTagValue, span)
		}
	}
	if !haveClose {
		p.report(pgn.MissingTagBracketClose, span)
	}
	return cst.NewTagPair(children)
}

// --- Movetext ---------------------------------------------------------

// parsePlies parses a ply sequence. At the top level (inVariation
// false) it also consumes a game termination marker and tolerates
// orphan closing parentheses; inside a variation both end the sequence.
func (p *parser) parsePlies(inVariation bool) ([]cst.Node, *cst.Symbol) {
	var plies []cst.Node
	for {
		switch p.peek() {
		case cst.KindEndOfInput, cst.KindBracketOpen, cst.KindTagValue, cst.KindBracketClose:
			return plies, nil
		case cst.KindTermination:
			if inVariation {
				return plies, nil
			}
			sym, _ := p.advance()
			return plies, sym
		case cst.KindParenClose:
			if inVariation {
				return plies, nil
			}
			sym, span := p.advance()
			p.report(pgn.OrphanParenthesisClose, span)
			plies = append(plies, cst.NewPly([]cst.Node{sym}))
		default:
			plies = append(plies, p.parsePly())
		}
	}
}

// parsePly parses one half-move bundle: optional move number, periods,
// move, annotation glyphs, variations. Periods directly after a move
// number are expected filler in any quantity; a period without that
// context is an orphan.
func (p *parser) parsePly() cst.Node {
	start := p.nextStart()
	var children []cst.Node
	var haveNumber, haveMove, haveNag, sawVariation bool

loop:
	for {
		switch p.peek() {
		case cst.KindMoveNumber:
			if haveNumber || haveMove || haveNag || sawVariation {
				break loop // next ply
			}
			sym, _ := p.advance()
			children = append(children, sym)
			haveNumber = true
		case cst.KindPeriod:
			if haveMove || haveNag || sawVariation {
				break loop
			}
			sym, span := p.advance()
			children = append(children, sym)
			if !haveNumber {
				p.report(pgn.OrphanPeriod, span)
			}
		case cst.KindMove, cst.KindUnrecognizedMove, cst.KindTagName:
			if haveMove {
				break loop
			}
			sym, _ := p.advance()
			children = append(children, sym)
			haveMove = true
		case cst.KindNag, cst.KindEmptyNag, cst.KindOverflowNag:
			sym, span := p.advance()
			children = append(children, sym)
			haveNag = true
			if sawVariation {
				p.report(pgn.VariationBeforeNAG, span)
			}
		case cst.KindParenOpen:
			children = append(children, p.parseVariation())
			sawVariation = true
		default:
			break loop
		}
	}

	span := p.spanSince(start)
	if !haveNumber && !haveMove {
		p.report(pgn.MissingMoveNumber, span)
		p.report(pgn.MissingMove, span)
	} else if !haveMove {
		p.report(pgn.MissingMove, span)
	}
	return cst.NewPly(children)
}

func (p *parser) parseVariation() cst.Node {
	start := p.nextStart()
	open, _ := p.advance() // '('
	plies, _ := p.parsePlies(true)
	var close *cst.Symbol
	if p.peek() == cst.KindParenClose {
		close, _ = p.advance()
	}
	span := p.spanSince(start)
	if len(plies) == 0 {
		p.report(pgn.EmptyVariation, span)
	}
	if close == nil {
		p.report(pgn.MissingParenthesisClose, span)
	}
	return cst.NewVariation(open, cst.NewPlyList(plies), close)
}
