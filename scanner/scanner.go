package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"

	pgn "github.com/PenguinF/sandra-three-sub010"
	"github.com/PenguinF/sandra-three-sub010/cst"
)

// tracer traces with key 'pgn.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("pgn.scanner")
}

// A token is one scanned micro symbol, before trivia attachment. Tokens
// carry the diagnostics discovered while scanning them; those are
// reported when the token is incorporated into a symbol or its trivia,
// which keeps diagnostics in discovery order across merges.
type token struct {
	kind         cst.Kind
	lexeme       string
	start        uint64
	value        uint32
	tagText      string
	unterminated bool
	subErrors    []pgn.Error // tag values only, relative to token start
	errs         []pgn.Error // absolute positions
}

func (t *token) end() uint64 {
	return t.start + uint64(len(t.lexeme))
}

func (t *token) terminal() *cst.Terminal {
	switch t.kind {
	case cst.KindWhitespace:
		return cst.NewWhitespace(t.lexeme)
	case cst.KindLineComment:
		return cst.NewLineComment(t.lexeme)
	case cst.KindBlockComment:
		return cst.NewBlockComment(t.lexeme, t.unterminated)
	case cst.KindEscapeLine:
		return cst.NewEscapeLine(t.lexeme)
	case cst.KindIllegalChar:
		return cst.NewIllegalChar(t.lexeme)
	case cst.KindBracketOpen:
		return cst.BracketOpen()
	case cst.KindBracketClose:
		return cst.BracketClose()
	case cst.KindParenOpen:
		return cst.ParenOpen()
	case cst.KindParenClose:
		return cst.ParenClose()
	case cst.KindPeriod:
		return cst.Period()
	case cst.KindTagName:
		return cst.NewTagName(t.lexeme)
	case cst.KindTagValue:
		return cst.NewTagValue(t.lexeme, t.tagText, t.unterminated, t.subErrors)
	case cst.KindMoveNumber:
		return cst.NewMoveNumber(t.lexeme, t.value)
	case cst.KindMove:
		return cst.NewMove(t.lexeme)
	case cst.KindUnrecognizedMove:
		return cst.NewUnrecognizedMove(t.lexeme)
	case cst.KindNag:
		return cst.NewNag(t.lexeme, t.value)
	case cst.KindEmptyNag:
		return cst.NewEmptyNag(t.lexeme)
	case cst.KindOverflowNag:
		return cst.NewOverflowNag(t.lexeme)
	case cst.KindTermination:
		return cst.NewTermination(t.lexeme)
	}
	panic("scanner: no terminal for kind " + t.kind.String())
}

// Scanner cuts PGN text into symbols-with-trivia. It is total: every
// byte of the input ends up in exactly one terminal, and Next always
// makes progress. Create one with New.
type Scanner struct {
	input string
	pos   int
	stash *token // micro token already scanned but not yet consumed
	Error func(pgn.Error)
}

// New creates a scanner for one input buffer.
func New(input string) *Scanner {
	return &Scanner{input: input, Error: logError}
}

// Default error reporting function for scanners.
func logError(e pgn.Error) {
	tracer().Infof("scanner diagnostic: %s", e)
}

// SetErrorHandler sets the handler lexical diagnostics are reported to.
func (s *Scanner) SetErrorHandler(h func(pgn.Error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// Next returns the next significant symbol together with its leading
// trivia. At the end of input it returns a symbol holding the
// zero-length end-of-input terminal and the buffer's trailing trivia.
func (s *Scanner) Next() *cst.Symbol {
	tb := triviaBuilder{scanner: s}
	var cur *token
	for {
		t := s.nextMicro()
		if t == nil {
			if cur != nil {
				return s.finishSymbol(&tb, cur)
			}
			return cst.NewSymbol(tb.build(), cst.EndOfInput())
		}
		if cur == nil {
			if t.kind.IsTriviaKind() {
				tb.add(t)
				continue
			}
			cur = t
			continue
		}
		if merged, ok := tryMerge(cur, t); ok {
			cur = merged
			continue
		}
		s.stash = t
		return s.finishSymbol(&tb, cur)
	}
}

func (s *Scanner) finishSymbol(tb *triviaBuilder, cur *token) *cst.Symbol {
	if cur.kind == cst.KindOverflowNag {
		cur.errs = append(cur.errs, pgn.NewError(pgn.OverflowNag,
			pgn.SpanFrom(cur.start, uint64(len(cur.lexeme)))))
	}
	for _, e := range cur.errs {
		s.Error(e)
	}
	tracer().Debugf("symbol %s %q @%d", cur.kind, cur.lexeme, cur.start)
	return cst.NewSymbol(tb.build(), cur.terminal())
}

// --- Trivia collection ------------------------------------------------

// triviaBuilder folds micro trivia tokens into an ordered trivia run:
// each comment, escape line or illegal character becomes an element
// carrying the whitespace immediately before it; a trailing plain
// whitespace run becomes the final background.
type triviaBuilder struct {
	scanner   *Scanner
	elements  []cst.Node
	pendingWS *cst.Terminal
}

func (tb *triviaBuilder) add(t *token) {
	for _, e := range t.errs {
		tb.scanner.Error(e)
	}
	if t.kind == cst.KindWhitespace {
		tb.pendingWS = t.terminal()
		return
	}
	tb.elements = append(tb.elements, cst.NewTriviaElement(tb.pendingWS, t.terminal()))
	tb.pendingWS = nil
}

func (tb *triviaBuilder) build() cst.Node {
	if len(tb.elements) == 0 && tb.pendingWS == nil {
		return nil
	}
	return cst.NewTrivia(tb.elements, tb.pendingWS)
}

// --- Micro scan -------------------------------------------------------

func (s *Scanner) nextMicro() *token {
	if s.stash != nil {
		t := s.stash
		s.stash = nil
		return t
	}
	if s.pos >= len(s.input) {
		return nil
	}
	start := uint64(s.pos)
	c := s.input[s.pos]
	switch {
	case isSpace(c):
		return s.scanWhitespace(start)
	case c == '[':
		return s.single(start, cst.KindBracketOpen)
	case c == ']':
		return s.single(start, cst.KindBracketClose)
	case c == '(':
		return s.single(start, cst.KindParenOpen)
	case c == ')':
		return s.single(start, cst.KindParenClose)
	case c == '.':
		return s.single(start, cst.KindPeriod)
	case c == '*':
		return s.single(start, cst.KindTermination)
	case c == '"':
		return s.scanTagValue(start)
	case c == '$':
		return s.scanNag(start)
	case c == '{':
		return s.scanBlockComment(start)
	case c == ';':
		return s.scanToLineEnd(start, cst.KindLineComment)
	case c == '%':
		if s.pos == 0 || s.input[s.pos-1] == '\n' || s.input[s.pos-1] == '\r' {
			return s.scanToLineEnd(start, cst.KindEscapeLine)
		}
		return s.scanIllegal(start)
	case c >= '0' && c <= '9':
		return s.scanDigits(start)
	case isLetter(c):
		return s.scanLetters(start)
	}
	return s.scanIllegal(start)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func (s *Scanner) single(start uint64, kind cst.Kind) *token {
	s.pos++
	return &token{kind: kind, lexeme: s.input[start:s.pos], start: start}
}

func (s *Scanner) scanWhitespace(start uint64) *token {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
	return &token{kind: cst.KindWhitespace, lexeme: s.input[start:s.pos], start: start}
}

func (s *Scanner) scanIllegal(start uint64) *token {
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	lexeme := s.input[start:s.pos]
	return &token{
		kind:   cst.KindIllegalChar,
		lexeme: lexeme,
		start:  start,
		errs: []pgn.Error{pgn.NewError(pgn.IllegalCharacter,
			pgn.SpanFrom(start, uint64(size)), quoteChar(r))},
	}
}

// Game termination markers take priority over move numbers, longest
// match first.
var terminationMarkers = []string{"1/2-1/2", "1-0", "0-1"}

func (s *Scanner) scanDigits(start uint64) *token {
	for _, m := range terminationMarkers {
		if strings.HasPrefix(s.input[s.pos:], m) {
			s.pos += len(m)
			return &token{kind: cst.KindTermination, lexeme: m, start: start}
		}
	}
	for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	lexeme := s.input[start:s.pos]
	return &token{kind: cst.KindMoveNumber, lexeme: lexeme, start: start, value: numberValue(lexeme)}
}

func (s *Scanner) scanLetters(start uint64) *token {
	for s.pos < len(s.input) && (isLetter(s.input[s.pos]) || s.input[s.pos] == '_') {
		s.pos++
	}
	lexeme := s.input[start:s.pos]
	return &token{kind: classify(lexeme), lexeme: lexeme, start: start}
}

// scanNag scans a '$' glyph. Digits are consumed only while the value
// stays within 0-255; trailing digits are left for the merge pass,
// which collapses them into an overflow glyph.
func (s *Scanner) scanNag(start uint64) *token {
	s.pos++
	if s.pos >= len(s.input) || s.input[s.pos] < '0' || s.input[s.pos] > '9' {
		return &token{
			kind:   cst.KindEmptyNag,
			lexeme: s.input[start:s.pos],
			start:  start,
			errs:   []pgn.Error{pgn.NewError(pgn.EmptyNag, pgn.SpanFrom(start, 1))},
		}
	}
	var value uint32
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c < '0' || c > '9' || value*10+uint32(c-'0') > 255 {
			break
		}
		value = value*10 + uint32(c-'0')
		s.pos++
	}
	return &token{kind: cst.KindNag, lexeme: s.input[start:s.pos], start: start, value: value}
}

func (s *Scanner) scanBlockComment(start uint64) *token {
	if idx := strings.IndexByte(s.input[s.pos+1:], '}'); idx >= 0 {
		s.pos += idx + 2
		return &token{kind: cst.KindBlockComment, lexeme: s.input[start:s.pos], start: start}
	}
	s.pos = len(s.input)
	lexeme := s.input[start:]
	return &token{
		kind:         cst.KindBlockComment,
		lexeme:       lexeme,
		start:        start,
		unterminated: true,
		errs: []pgn.Error{pgn.NewError(pgn.UnterminatedComment,
			pgn.SpanFrom(start, uint64(len(lexeme))))},
	}
}

func (s *Scanner) scanToLineEnd(start uint64, kind cst.Kind) *token {
	if idx := strings.IndexAny(s.input[s.pos:], "\r\n"); idx >= 0 {
		s.pos += idx // the line break becomes leading whitespace of the next symbol
	} else {
		s.pos = len(s.input)
	}
	return &token{kind: kind, lexeme: s.input[start:s.pos], start: start}
}

// scanTagValue scans a quoted tag value. Embedded control characters
// and unknown escape sequences are recorded as sub-errors but never
// break tokenization; an unterminated value spans to the end of the
// line or input.
func (s *Scanner) scanTagValue(start uint64) *token {
	t := &token{kind: cst.KindTagValue, start: start}
	var decoded strings.Builder
	i := s.pos + 1
	terminated := false
	for i < len(s.input) {
		c := s.input[i]
		if c == '"' {
			i++
			terminated = true
			break
		}
		if c == '\n' || c == '\r' {
			break
		}
		if c == '\\' {
			if i+1 >= len(s.input) || s.input[i+1] == '\n' || s.input[i+1] == '\r' {
				decoded.WriteByte(c)
				i++
				continue
			}
			esc := s.input[i+1]
			if esc != '\\' && esc != '"' {
				rel := uint64(i) - start
				sub := pgn.NewError(pgn.UnrecognizedEscapeSequence,
					pgn.SpanFrom(rel, 2), quoteChar(rune(esc)))
				t.subErrors = append(t.subErrors, sub)
				t.errs = append(t.errs, pgn.NewError(pgn.UnrecognizedEscapeSequence,
					pgn.SpanFrom(start+rel, 2), quoteChar(rune(esc))))
			}
			decoded.WriteByte(esc)
			i += 2
			continue
		}
		if c < 0x20 {
			rel := uint64(i) - start
			sub := pgn.NewError(pgn.IllegalControlCharacter,
				pgn.SpanFrom(rel, 1), quoteChar(rune(c)))
			t.subErrors = append(t.subErrors, sub)
			t.errs = append(t.errs, pgn.NewError(pgn.IllegalControlCharacter,
				pgn.SpanFrom(start+rel, 1), quoteChar(rune(c))))
		}
		decoded.WriteByte(c)
		i++
	}
	s.pos = i
	t.lexeme = s.input[start:i]
	t.tagText = decoded.String()
	if !terminated {
		t.unterminated = true
		t.errs = append(t.errs, pgn.NewError(pgn.UnterminatedTagValue,
			pgn.SpanFrom(start, uint64(len(t.lexeme)))))
	}
	return t
}
