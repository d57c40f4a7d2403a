package cst

import (
	"sync"

	"github.com/cnf/structhash"

	pgn "github.com/PenguinF/sandra-three-sub010"
)

// Terminals are interned: two calls with the same kind and payload
// return the same *Terminal. This is what makes content nodes cheap to
// share between trees. The cache is synchronized so that independent
// parses may run concurrently.

type internKey struct {
	Kind         Kind
	Lexeme       string
	Value        uint32
	TagText      string
	Unterminated bool
	SubErrors    []pgn.Error
}

var internMu sync.RWMutex
var interned = make(map[string]*Terminal)

func intern(t *Terminal) *Terminal {
	key := string(structhash.Sha1(internKey{
		Kind:         t.kind,
		Lexeme:       t.lexeme,
		Value:        t.value,
		TagText:      t.tagText,
		Unterminated: t.unterminated,
		SubErrors:    t.subErrors,
	}, 1))
	internMu.RLock()
	cached, ok := interned[key]
	internMu.RUnlock()
	if ok {
		return cached
	}
	internMu.Lock()
	defer internMu.Unlock()
	if cached, ok := interned[key]; ok {
		return cached
	}
	interned[key] = t
	return t
}

// Fixed single-character terminals and the zero-length end-of-input
// terminal are singletons from the start.
var (
	bracketOpen  = &Terminal{kind: KindBracketOpen, lexeme: "["}
	bracketClose = &Terminal{kind: KindBracketClose, lexeme: "]"}
	parenOpen    = &Terminal{kind: KindParenOpen, lexeme: "("}
	parenClose   = &Terminal{kind: KindParenClose, lexeme: ")"}
	period       = &Terminal{kind: KindPeriod, lexeme: "."}
	endOfInput   = &Terminal{kind: KindEndOfInput, lexeme: ""}
)

// BracketOpen returns the '[' terminal.
func BracketOpen() *Terminal { return bracketOpen }

// BracketClose returns the ']' terminal.
func BracketClose() *Terminal { return bracketClose }

// ParenOpen returns the '(' terminal.
func ParenOpen() *Terminal { return parenOpen }

// ParenClose returns the ')' terminal.
func ParenClose() *Terminal { return parenClose }

// Period returns the '.' terminal.
func Period() *Terminal { return period }

// EndOfInput returns the zero-length terminal which carries a buffer's
// trailing trivia.
func EndOfInput() *Terminal { return endOfInput }

// NewWhitespace creates a whitespace run terminal.
func NewWhitespace(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindWhitespace, lexeme: lexeme})
}

// NewLineComment creates a ';'-comment terminal. The lexeme excludes
// the terminating newline.
func NewLineComment(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindLineComment, lexeme: lexeme})
}

// NewBlockComment creates a '{…}' comment terminal. unterminated marks
// a comment which ran into the end of input before its '}'.
func NewBlockComment(lexeme string, unterminated bool) *Terminal {
	return intern(&Terminal{kind: KindBlockComment, lexeme: lexeme, unterminated: unterminated})
}

// NewEscapeLine creates a '%'-escape-mechanism terminal spanning to the
// end of the physical line, newline excluded.
func NewEscapeLine(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindEscapeLine, lexeme: lexeme})
}

// NewIllegalChar wraps a single character which fits no other kind.
func NewIllegalChar(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindIllegalChar, lexeme: lexeme})
}

// NewTagName creates a tag name terminal.
func NewTagName(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindTagName, lexeme: lexeme})
}

// NewTagValue creates a tag value terminal. tagText is the decoded
// value, subErrors are lexical errors inside the value with spans
// relative to the start of the terminal.
func NewTagValue(lexeme, tagText string, unterminated bool, subErrors []pgn.Error) *Terminal {
	return intern(&Terminal{
		kind:         KindTagValue,
		lexeme:       lexeme,
		tagText:      tagText,
		unterminated: unterminated,
		subErrors:    subErrors,
	})
}

// NewMoveNumber creates a move number terminal.
func NewMoveNumber(lexeme string, value uint32) *Terminal {
	return intern(&Terminal{kind: KindMoveNumber, lexeme: lexeme, value: value})
}

// NewMove creates a terminal for a syntactically valid SAN move.
func NewMove(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindMove, lexeme: lexeme})
}

// NewUnrecognizedMove creates a terminal for a symbol run which sits in
// a move slot but is no valid SAN move.
func NewUnrecognizedMove(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindUnrecognizedMove, lexeme: lexeme})
}

// NewNag creates a numeric annotation glyph terminal, value 0-255.
func NewNag(lexeme string, value uint32) *Terminal {
	return intern(&Terminal{kind: KindNag, lexeme: lexeme, value: value})
}

// NewEmptyNag creates a terminal for a bare '$' with no digits.
func NewEmptyNag(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindEmptyNag, lexeme: lexeme})
}

// NewOverflowNag creates a terminal for a '$'-glyph whose value exceeds
// 255. Overflow NAGs merge like move numbers.
func NewOverflowNag(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindOverflowNag, lexeme: lexeme})
}

// NewTermination creates a game termination marker terminal: one of
// '*', '1-0', '0-1', '1/2-1/2'.
func NewTermination(lexeme string) *Terminal {
	return intern(&Terminal{kind: KindTermination, lexeme: lexeme})
}
