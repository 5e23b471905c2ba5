package trex

import (
	"fmt"
	"strings"
)

// NodeType defines the different node variants a compiled pattern is built from.
type NodeType int

const (
	NodeLiteral     NodeType = iota // single character
	NodeSequence                    // ordered concatenation of sub-nodes
	NodeAlternation                 // ordered list of branches, first success wins
	NodeStar                        // zero or more greedy repetitions
	NodeGroup                       // capturing group with its slot index
)

// Node is one node of a compiled pattern tree. The tree is built once by the
// parser and never mutated afterwards; the variant set is fixed to the five
// types below.
type Node interface {
	Type() NodeType // returns the node type
	String() string // debugging or printing purpose
	Position() int  // where the node starts in the pattern
}

var (
	_ Node = (*LiteralNode)(nil)
	_ Node = (*SequenceNode)(nil)
	_ Node = (*AlternationNode)(nil)
	_ Node = (*StarNode)(nil)
	_ Node = (*GroupNode)(nil)
)

// LiteralNode matches exactly one occurrence of Ch.
type LiteralNode struct {
	Ch  rune
	pos int
}

func (l *LiteralNode) Type() NodeType { return NodeLiteral }
func (l *LiteralNode) String() string { return fmt.Sprintf("Literal(%q)", l.Ch) }
func (l *LiteralNode) Position() int  { return l.pos }

// SequenceNode matches its items in order, each continuing from where the
// previous one left off. An empty sequence matches without consuming input.
type SequenceNode struct {
	Items []Node
	pos   int
}

func (s *SequenceNode) Type() NodeType { return NodeSequence }
func (s *SequenceNode) String() string {
	result := fmt.Sprintf("Sequence(%d items):\n", len(s.Items))
	for i, item := range s.Items {
		itemStr := strings.ReplaceAll(item.String(), "\n", "\n  ")
		result += fmt.Sprintf("  %d: %s\n", i, itemStr)
	}
	return strings.TrimRight(result, "\n")
}
func (s *SequenceNode) Position() int { return s.pos }

// AlternationNode tries its branches left to right and matches if any branch
// matches from the current position.
type AlternationNode struct {
	Branches []Node
	pos      int
}

func (a *AlternationNode) Type() NodeType { return NodeAlternation }
func (a *AlternationNode) String() string {
	result := fmt.Sprintf("Alternation(%d branches):\n", len(a.Branches))
	for i, branch := range a.Branches {
		branchStr := strings.ReplaceAll(branch.String(), "\n", "\n  ")
		result += fmt.Sprintf("  %d: %s\n", i, branchStr)
	}
	return strings.TrimRight(result, "\n")
}
func (a *AlternationNode) Position() int { return a.pos }

// StarNode matches zero or more consecutive repetitions of Inner, preferring
// more repetitions over fewer.
type StarNode struct {
	Inner Node
	pos   int
}

func (s *StarNode) Type() NodeType { return NodeStar }
func (s *StarNode) String() string {
	innerStr := strings.ReplaceAll(s.Inner.String(), "\n", "\n  ")
	return fmt.Sprintf("Star:\n  %s", innerStr)
}
func (s *StarNode) Position() int { return s.pos }

// GroupNode matches whatever Inner matches and records the matched span under
// capture slot Index. Indices are unique per pattern and count opening
// parentheses left to right, starting at 1; slot 0 is reserved for the whole
// match.
type GroupNode struct {
	Index int
	Inner Node
	pos   int
}

func (g *GroupNode) Type() NodeType { return NodeGroup }
func (g *GroupNode) String() string {
	innerStr := strings.ReplaceAll(g.Inner.String(), "\n", "\n  ")
	return fmt.Sprintf("Group(%d):\n  %s", g.Index, innerStr)
}
func (g *GroupNode) Position() int { return g.pos }
