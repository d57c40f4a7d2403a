package pgn

import (
	"fmt"
	"strings"
)

// --- Diagnostics ------------------------------------------------------

// ErrorCode identifies one kind of deviation from well-formed PGN. The
// enumeration is flat and closed: lexical, tag, ply and game level codes
// all live here, so that clients can treat diagnostics uniformly.
type ErrorCode int

// All error codes reported by the scanner and the parser.
const (
	// Lexical errors, reported by the scanner.
	IllegalCharacter ErrorCode = iota
	UnterminatedComment
	UnterminatedTagValue
	UnrecognizedEscapeSequence
	IllegalControlCharacter

	// Tag section errors.
	MissingTagBracketOpen
	MissingTagName
	MissingTagValue
	MissingTagBracketClose
	MultipleTagValues
	EmptyTag

	// Ply and variation errors.
	MissingMoveNumber
	MissingMove
	OrphanPeriod
	EmptyNag
	OverflowNag
	EmptyVariation
	MissingParenthesisClose
	OrphanParenthesisClose
	VariationBeforeNAG

	// Game level errors.
	MissingTagSection
	MissingGameTerminationMarker
)

var errorCodeNames = []string{
	"IllegalCharacter",
	"UnterminatedComment",
	"UnterminatedTagValue",
	"UnrecognizedEscapeSequence",
	"IllegalControlCharacter",
	"MissingTagBracketOpen",
	"MissingTagName",
	"MissingTagValue",
	"MissingTagBracketClose",
	"MultipleTagValues",
	"EmptyTag",
	"MissingMoveNumber",
	"MissingMove",
	"OrphanPeriod",
	"EmptyNag",
	"OverflowNag",
	"EmptyVariation",
	"MissingParenthesisClose",
	"OrphanParenthesisClose",
	"VariationBeforeNAG",
	"MissingTagSection",
	"MissingGameTerminationMarker",
}

func (code ErrorCode) String() string {
	if int(code) < 0 || int(code) >= len(errorCodeNames) {
		return fmt.Sprintf("ErrorCode(%d)", int(code))
	}
	return errorCodeNames[code]
}

// Message templates per error code. '%s' slots are filled from
// Error.Params, in order.
var errorCodeMessages = map[ErrorCode]string{
	IllegalCharacter:             "illegal character %s",
	UnterminatedComment:          "comment is not terminated before end of input",
	UnterminatedTagValue:         "tag value is not terminated",
	UnrecognizedEscapeSequence:   "unrecognized escape sequence %s in tag value",
	IllegalControlCharacter:      "illegal control character %s in tag value",
	MissingTagBracketOpen:        "missing opening bracket '['",
	MissingTagName:               "missing tag name",
	MissingTagValue:              "missing tag value",
	MissingTagBracketClose:       "missing closing bracket ']'",
	MultipleTagValues:            "tag pair contains more than one tag value",
	EmptyTag:                     "empty tag pair",
	MissingMoveNumber:            "missing move number",
	MissingMove:                  "missing move",
	OrphanPeriod:                 "period without a preceding move number",
	EmptyNag:                     "annotation glyph '$' without a number",
	OverflowNag:                  "annotation glyph value out of range (0-255)",
	EmptyVariation:               "variation contains no moves",
	MissingParenthesisClose:      "missing closing parenthesis ')'",
	OrphanParenthesisClose:       "closing parenthesis ')' without matching '('",
	VariationBeforeNAG:           "annotation glyph appears after a variation",
	MissingTagSection:            "game has no tag section",
	MissingGameTerminationMarker: "game has no termination marker",
}

// Error is one diagnostic: an error code, the exact byte span of the
// offending text, and zero or more parameters for message interpolation.
// Errors are plain values; they are collected on the root of the syntax
// tree and never abort a parse.
type Error struct {
	Code   ErrorCode
	Span   Span
	Params []string
}

// NewError creates a diagnostic for a given code and span.
func NewError(code ErrorCode, span Span, params ...string) Error {
	return Error{Code: code, Span: span, Params: params}
}

// Message interpolates the error's parameters into the fixed message
// template for its code.
func (e Error) Message() string {
	tmpl, ok := errorCodeMessages[e.Code]
	if !ok {
		return e.Code.String()
	}
	if len(e.Params) == 0 {
		return tmpl
	}
	args := make([]interface{}, len(e.Params))
	for i, p := range e.Params {
		args[i] = p
	}
	if strings.Count(tmpl, "%s") < len(args) {
		return fmt.Sprintf(tmpl, args[:strings.Count(tmpl, "%s")]...)
	}
	return fmt.Sprintf(tmpl, args...)
}

func (e Error) String() string {
	return fmt.Sprintf("%s %s: %s", e.Span, e.Code, e.Message())
}
