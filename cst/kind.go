package cst

// Kind is the closed enumeration of content node variants. Terminal
// kinds come first, non-terminal kinds after KindEndOfInput.
type Kind int

const (
	// Trivia terminals.
	KindWhitespace Kind = iota
	KindLineComment
	KindBlockComment
	KindEscapeLine
	KindIllegalChar

	// Significant terminals.
	KindBracketOpen
	KindBracketClose
	KindParenOpen
	KindParenClose
	KindPeriod
	KindTagName
	KindTagValue
	KindMoveNumber
	KindMove
	KindUnrecognizedMove
	KindNag
	KindEmptyNag
	KindOverflowNag
	KindTermination
	KindEndOfInput

	// Non-terminals.
	KindTriviaElement
	KindTrivia
	KindSymbol
	KindTagPair
	KindTagSection
	KindPly
	KindPlyList
	KindVariation
	KindGame
	KindRoot
)

var kindNames = []string{
	"Whitespace", "LineComment", "BlockComment", "EscapeLine", "IllegalChar",
	"BracketOpen", "BracketClose", "ParenOpen", "ParenClose", "Period",
	"TagName", "TagValue", "MoveNumber", "Move", "UnrecognizedMove",
	"Nag", "EmptyNag", "OverflowNag", "Termination", "EndOfInput",
	"TriviaElement", "Trivia", "Symbol", "TagPair", "TagSection",
	"Ply", "PlyList", "Variation", "Game", "Root",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// IsTerminal returns true for kinds which carry a lexeme of their own
// instead of children.
func (k Kind) IsTerminal() bool {
	return k <= KindEndOfInput
}

// IsTriviaKind returns true for terminal kinds which only ever occur
// inside trivia.
func (k Kind) IsTriviaKind() bool {
	return k <= KindIllegalChar
}
