package cst

// Constructors for the grammar non-terminals. All of them accept
// whatever children the tree builder collected; "optional everything"
// is the rule, absence of an element is expressed by simply not
// including it. An empty child list yields a valid zero-length node.

// NewTagPair creates a tag pair from its elements (bracket-open, tag
// name, tag values, bracket-close), each a *Symbol. Any subset may be
// present.
func NewTagPair(children []Node) Node {
	return newNonterminal(KindTagPair, children)
}

// NewTagSection creates a tag section from an ordered list of tag
// pairs. An empty tag section is valid and has length zero.
func NewTagSection(pairs []Node) Node {
	return newNonterminal(KindTagSection, pairs)
}

// NewPly creates a ply from its elements in source order: optional move
// number symbol, period symbols, optional move symbol, NAG symbols and
// variation nodes.
func NewPly(children []Node) Node {
	return newNonterminal(KindPly, children)
}

// NewPlyList creates the ply sequence of a game or variation.
func NewPlyList(plies []Node) Node {
	return newNonterminal(KindPlyList, plies)
}

// NewVariation creates a parenthesized variation: the '(' symbol, the
// nested ply list, and the ')' symbol if one was found.
func NewVariation(open *Symbol, plies Node, close *Symbol) Node {
	children := []Node{open, plies}
	if close != nil {
		children = append(children, close)
	}
	return newNonterminal(KindVariation, children)
}

// NewGame creates a game node: tag section, ply list, and the
// termination marker symbol if one was found.
func NewGame(tagSection Node, plies Node, termination *Symbol) Node {
	children := []Node{tagSection, plies}
	if termination != nil {
		children = append(children, termination)
	}
	return newNonterminal(KindGame, children)
}
