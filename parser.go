package trex

import "fmt"

// SyntaxError describes a malformed pattern. It is the only error kind the
// compiler produces; failing to match an input is not an error.
type SyntaxError struct {
	Pos int    // rune offset in the pattern
	Msg string // textual description of the problem
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at position %d: %s", e.Pos, e.Msg)
}

// parser consumes a pattern string and builds the node tree. The grammar, by
// ascending precedence: alternation, sequence, repetition, atom. An atom is a
// literal character or a parenthesized group; `(`, `)`, `|`, `*` and `+` are
// reserved and cannot appear as literals.
type parser struct {
	pattern []rune
	pos     int
	groups  int // capture counter, incremented at every '('
}

func newParser(pattern string) *parser {
	return &parser{pattern: []rune(pattern)}
}

func (p *parser) parse() (Node, error) {
	node, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	// parseAlternation stops early only on a ')' it did not open.
	if p.pos < len(p.pattern) {
		return nil, &SyntaxError{Pos: p.pos, Msg: "unmatched ')'"}
	}
	return node, nil
}

func (p *parser) parseAlternation() (Node, error) {
	start := p.pos
	first, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	branches := []Node{first}
	for p.pos < len(p.pattern) && p.pattern[p.pos] == '|' {
		p.pos++
		next, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return first, nil
	}
	return &AlternationNode{Branches: branches, pos: start}, nil
}

func (p *parser) parseSequence() (Node, error) {
	start := p.pos
	var items []Node
	for p.pos < len(p.pattern) {
		ch := p.pattern[p.pos]
		if ch == ')' || ch == '|' {
			break
		}
		factor, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		items = append(items, factor...)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &SequenceNode{Items: items, pos: start}, nil
}

// parseRepetition parses an atom with an optional trailing repetition
// operator. `x+` expands to the atom followed by a star over the same node,
// which is why a slice comes back rather than a single node.
func (p *parser) parseRepetition() ([]Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.pattern) {
		switch p.pattern[p.pos] {
		case '*':
			p.pos++
			return []Node{&StarNode{Inner: atom, pos: atom.Position()}}, nil
		case '+':
			p.pos++
			return []Node{atom, &StarNode{Inner: atom, pos: atom.Position()}}, nil
		}
	}
	return []Node{atom}, nil
}

func (p *parser) parseAtom() (Node, error) {
	if p.pos >= len(p.pattern) {
		return nil, &SyntaxError{Pos: p.pos, Msg: "unexpected end of pattern"}
	}
	ch := p.pattern[p.pos]
	switch ch {
	case '(':
		openPos := p.pos
		p.pos++
		p.groups++
		index := p.groups
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.pattern) || p.pattern[p.pos] != ')' {
			return nil, &SyntaxError{Pos: openPos, Msg: "unclosed '('"}
		}
		p.pos++
		return &GroupNode{Index: index, Inner: inner, pos: openPos}, nil

	case '*', '+':
		return nil, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("repetition %q requires a preceding element", ch)}

	default:
		pos := p.pos
		p.pos++
		return &LiteralNode{Ch: ch, pos: pos}, nil
	}
}
