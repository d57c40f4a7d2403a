package scanner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/PenguinF/sandra-three-sub010/cst"
)

// Classification of completed symbol runs. A run of letters, digits and
// merged-in move punctuation is categorized by a lexmachine DFA: SAN
// moves (pawn moves, piece moves with disambiguation, captures,
// promotions, castling, check/mate and suffix annotations), move
// numbers and tag names. The DFA is compiled once. Ties go to the
// earlier pattern, so move patterns are registered before the tag name
// pattern ("Nf3" is a move, not a tag name).

const (
	classMove = iota + 1
	classNumber
	classTagName
)

var classifierOnce sync.Once
var classifier *lexmachine.Lexer

func classToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func initClassifier() {
	classifierOnce.Do(func() {
		classifier = lexmachine.NewLexer()
		// Castling, with optional check/mate and suffix annotations.
		classifier.Add([]byte(`O\-O(\-O)?[\+#]?[!\?]?[!\?]?`), classToken(classMove))
		// Pawn moves: e4, exd5, e8=Q, axb1=N+ …
		classifier.Add([]byte(`[a-h](x[a-h])?[1-8](=[NBRQ])?[\+#]?[!\?]?[!\?]?`), classToken(classMove))
		// Piece moves with optional file/rank/square disambiguation.
		classifier.Add([]byte(`[NBRQK]([a-h][1-8]?|[1-8])?x?[a-h][1-8][\+#]?[!\?]?[!\?]?`), classToken(classMove))
		classifier.Add([]byte(`[0-9]+`), classToken(classNumber))
		classifier.Add([]byte(`[A-Za-z]([A-Za-z]|[0-9]|_)*`), classToken(classTagName))
		if err := classifier.Compile(); err != nil {
			panic(fmt.Errorf("scanner: error compiling classifier DFA: %v", err))
		}
	})
}

// classify categorizes a completed symbol run. It never fails: runs the
// DFA cannot match in full fall back to the unrecognized-move kind (or
// to the overflow-NAG kind for '$'-led runs).
func classify(lexeme string) cst.Kind {
	if lexeme == "" {
		return cst.KindUnrecognizedMove
	}
	if lexeme[0] == '$' {
		if len(lexeme) > 1 && allDigits(lexeme[1:]) {
			return cst.KindOverflowNag
		}
		return cst.KindUnrecognizedMove
	}
	initClassifier()
	s, err := classifier.Scanner([]byte(lexeme))
	if err != nil {
		return fallbackClass(lexeme)
	}
	tok, err, eof := s.Next()
	if err != nil || eof {
		return fallbackClass(lexeme)
	}
	token := tok.(*lexmachine.Token)
	if len(token.Lexeme) != len(lexeme) {
		return fallbackClass(lexeme)
	}
	switch token.Type {
	case classMove:
		return cst.KindMove
	case classNumber:
		return cst.KindMoveNumber
	case classTagName:
		// A run like "e" or "exd" is tag-name shaped, but a leading
		// file letter seeds move-candidate classification instead.
		if lexeme[0] >= 'a' && lexeme[0] <= 'h' && sanPrefix(lexeme) {
			return cst.KindUnrecognizedMove
		}
		return cst.KindTagName
	}
	return fallbackClass(lexeme)
}

func fallbackClass(lexeme string) cst.Kind {
	if allDigits(lexeme) {
		return cst.KindMoveNumber
	}
	return cst.KindUnrecognizedMove
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// numberValue parses a digit run, clamping instead of failing on
// overflow. Move number terminals never carry errors.
func numberValue(s string) uint32 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
		if v > 0xFFFFFFFF {
			return 0xFFFFFFFF
		}
	}
	return uint32(v)
}

// --- SAN prefix viability ---------------------------------------------

// A sanTerm is one slot of a SAN move shape: a set of admissible
// characters, possibly optional.
type sanTerm struct {
	chars string
	opt   bool
}

var sanSuffix = []sanTerm{
	{"+#", true}, {"!?", true}, {"!?", true},
}

var sanShapes = [][]sanTerm{
	// pawn move: e4, e8=Q
	append([]sanTerm{{"abcdefgh", false}, {"12345678", false}, {"=", true}, {"NBRQ", true}}, sanSuffix...),
	// pawn capture: exd5, axb8=Q
	append([]sanTerm{{"abcdefgh", false}, {"x", false}, {"abcdefgh", false}, {"12345678", false}, {"=", true}, {"NBRQ", true}}, sanSuffix...),
	// piece move: Nf3, Nbd7, R1e2, Qh4xe1
	append([]sanTerm{{"NBRQK", false}, {"abcdefgh", true}, {"12345678", true}, {"x", true}, {"abcdefgh", false}, {"12345678", false}}, sanSuffix...),
}

// sanPrefix reports whether s could still grow into a syntactically
// valid SAN move. It gates merging a symbol with a following
// punctuation character; final classification is the DFA's business.
func sanPrefix(s string) bool {
	if s == "" {
		return true
	}
	if castlePrefix(s) {
		return true
	}
	for _, shape := range sanShapes {
		if termsPrefix(s, shape) {
			return true
		}
	}
	return false
}

func termsPrefix(s string, terms []sanTerm) bool {
	if s == "" {
		return true
	}
	if len(terms) == 0 {
		return false
	}
	t := terms[0]
	if strings.IndexByte(t.chars, s[0]) >= 0 && termsPrefix(s[1:], terms[1:]) {
		return true
	}
	if t.opt {
		return termsPrefix(s, terms[1:])
	}
	return false
}

func castlePrefix(s string) bool {
	const long = "O-O-O"
	for cut := 3; cut <= len(long); cut += 2 { // "O-O" and "O-O-O"
		base := long[:cut]
		if len(s) <= cut {
			if strings.HasPrefix(base, s) {
				return true
			}
			continue
		}
		if strings.HasPrefix(s, base) && termsPrefix(s[cut:], sanSuffix) {
			return true
		}
	}
	return false
}

// quoteChar renders a character for diagnostic messages.
func quoteChar(r rune) string {
	return fmt.Sprintf("%q", r)
}
