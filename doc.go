/*
Package trex implements a compact regular-expression engine that matches a
pattern against a whole input string and reports what every capturing group
matched.

# Overview

A pattern is compiled into an immutable syntax tree and then matched by a
recursive backtracking search. Matching is anchored at both ends: the pattern
must consume the input from its first character through its last, so there is
no substring searching. The result of a successful match is a capture table
mapping slot 0 to the whole input and each parenthesized group, numbered in
the order its '(' appears, to the substring it matched.

# Pattern Syntax

The engine supports five constructs:

  - literal characters: any rune except the reserved metacharacters
  - concatenation: adjacent factors match in order
  - alternation: a|b tries a first, then b
  - grouping with capture: (expr) matches expr and records its span
  - repetition: x* matches x zero or more times, x+ one or more times,
    both greedy

The reserved metacharacters are '(', ')', '|', '*' and '+'. Everything else,
including whitespace and digits, is an ordinary literal. There are no
character classes, anchors, escapes, or bounded repetitions.

# Compilation and Matching

	re, err := trex.Compile("(a|b)((c|d)*)")
	if err != nil {
		// *trex.SyntaxError: the pattern is malformed
	}
	caps, ok := re.MatchString("bcddc")
	if ok {
		fmt.Println(caps) // {0: "bcddc", 1: "b", 2: "cddc", 3: "c"}
	}

Compile fails with a *SyntaxError for structurally invalid patterns such as
unbalanced parentheses or a repetition operator with nothing before it. An
input that simply does not match is not an error: MatchString returns
(nil, false).

# Capture Semantics

Groups are numbered by a single counter that increments at every '(' in
left-to-right scan order, so outer groups receive lower numbers than the
groups nested inside them. When a group matches several times, for example
inside a repetition, the last completed repetition wins, even when that
repetition matched the empty string. A group on an alternation branch that
was not taken leaves its slot absent rather than empty.

# Operational Notes

The search is a plain depth-first backtracking walk: worst-case running time
is exponential in the input length for adversarial patterns, and no internal
timeout is applied. Callers that need bounded latency must enforce their own
limits. A compiled Regex is immutable and safe for concurrent use.
*/
package trex
