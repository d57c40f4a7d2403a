package cst

// Trivia is background text: whitespace, comments, escape lines and
// illegal characters. It is never significant to the grammar, but it is
// part of the lossless tree. Trivia attaches as "leading trivia" to the
// next significant symbol; the buffer's trailing run attaches to the
// end-of-input symbol.

// NewTriviaElement wraps one comment, escape line or illegal character
// together with the whitespace run immediately before it. background
// may be nil.
func NewTriviaElement(background *Terminal, element *Terminal) Node {
	if background == nil {
		return newNonterminal(KindTriviaElement, []Node{element})
	}
	return newNonterminal(KindTriviaElement, []Node{background, element})
}

// NewTrivia creates an ordered trivia run from its elements, optionally
// followed by a final plain whitespace run. final may be nil.
func NewTrivia(elements []Node, final *Terminal) Node {
	children := elements
	if final != nil {
		children = append(children, final)
	}
	return newNonterminal(KindTrivia, children)
}

// Symbol pairs a significant terminal with its leading trivia. It is
// the token unit the tree builder consumes.
type Symbol struct {
	nonterminal
	terminal *Terminal
}

var _ Node = (*Symbol)(nil)

// NewSymbol creates a symbol-with-trivia. trivia may be nil for a
// symbol with no leading background.
func NewSymbol(trivia Node, terminal *Terminal) *Symbol {
	var children []Node
	if trivia != nil {
		children = []Node{trivia, terminal}
	} else {
		children = []Node{terminal}
	}
	return &Symbol{
		nonterminal: *newNonterminal(KindSymbol, children),
		terminal:    terminal,
	}
}

// Terminal returns the significant terminal of the symbol.
func (s *Symbol) Terminal() *Terminal { return s.terminal }

// LeadingTrivia returns the symbol's leading trivia node, or nil.
func (s *Symbol) LeadingTrivia() Node {
	if len(s.children) == 2 {
		return s.children[0]
	}
	return nil
}
