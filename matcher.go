package trex

// continuation receives the position a partial match reached and reports
// whether the rest of the pattern succeeded from there. The matcher invokes it
// once per candidate position, in preference order, and stops at the first
// success.
type continuation func(pos int) bool

// capSlot is the working storage for one capture slot during a match. A slot
// that was never written stays absent from the final Captures.
type capSlot struct {
	value string
	set   bool
}

// matchState carries the working data of a single MatchString call: the input
// runes and the capture slots. Every call builds a fresh state, so a compiled
// Regex can be matched from multiple goroutines at once.
type matchState struct {
	input []rune
	slots []capSlot
}

// MatchString matches the whole input against the pattern. The match is
// anchored at both ends: the tree must consume the input from its first rune
// through its last. On success the returned table maps slot 0 to the input
// and each group index to the substring it matched on the successful path;
// groups that sit on untaken branches stay absent. A failed match returns
// (nil, false) and is not an error.
func (re *Regex) MatchString(input string) (Captures, bool) {
	st := &matchState{
		input: []rune(input),
		slots: make([]capSlot, re.groups+1),
	}
	if !st.match(re.root, 0, func(pos int) bool { return pos == len(st.input) }) {
		return nil, false
	}
	caps := make(Captures, re.groups+1)
	caps[0] = input
	for i := 1; i <= re.groups; i++ {
		if st.slots[i].set {
			caps[i] = st.slots[i].value
		}
	}
	return caps, true
}

// match advances through node from pos and invokes k at every position the
// node can reach, greedier alternatives first. It returns true as soon as one
// invocation of k returns true.
func (st *matchState) match(node Node, pos int, k continuation) bool {
	switch n := node.(type) {
	case *LiteralNode:
		if pos < len(st.input) && st.input[pos] == n.Ch {
			return k(pos + 1)
		}
		return false

	case *SequenceNode:
		return st.matchSequence(n.Items, pos, k)

	case *AlternationNode:
		for _, branch := range n.Branches {
			if st.match(branch, pos, k) {
				return true
			}
		}
		return false

	case *StarNode:
		return st.matchStar(n, pos, k)

	case *GroupNode:
		start := pos
		return st.match(n.Inner, pos, func(end int) bool {
			prev := st.slots[n.Index]
			st.slots[n.Index] = capSlot{value: string(st.input[start:end]), set: true}
			if k(end) {
				return true
			}
			st.slots[n.Index] = prev
			return false
		})

	default:
		return false
	}
}

// matchSequence chains the items so that each one's continuation matches the
// rest of the sequence. An exhausted sequence hands the current position to k.
func (st *matchState) matchSequence(items []Node, pos int, k continuation) bool {
	if len(items) == 0 {
		return k(pos)
	}
	return st.match(items[0], pos, func(next int) bool {
		return st.matchSequence(items[1:], next, k)
	})
}

// matchStar prefers one more repetition over stopping: it matches the inner
// node once and recurses from wherever that ended, falling back to k at the
// current position only when no further repetition leads to overall success.
// A repetition that consumed nothing invokes k directly instead of recursing,
// so zero-width matches cannot loop forever.
func (st *matchState) matchStar(n *StarNode, pos int, k continuation) bool {
	if st.match(n.Inner, pos, func(next int) bool {
		if next == pos {
			return k(next)
		}
		return st.matchStar(n, next, k)
	}) {
		return true
	}
	return k(pos)
}
