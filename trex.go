package trex

// Regex is a compiled pattern. The tree built by Compile is immutable, so a
// single Regex may be shared freely between goroutines; every MatchString
// call keeps its own working state.
type Regex struct {
	pattern string
	root    Node
	groups  int
}

// Compile parses a pattern into a Regex. Malformed patterns fail with a
// *SyntaxError naming the offending position; there is no partial result.
func Compile(pattern string) (*Regex, error) {
	p := newParser(pattern)
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, root: root, groups: p.groups}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
// It simplifies safe initialization of global variables holding patterns.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the source pattern the Regex was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// GroupCount returns the number of capturing groups in the pattern, not
// counting slot 0.
func (re *Regex) GroupCount() int {
	return re.groups
}

// Explain renders the compiled tree in an indented multi-line form, for
// debugging and for the explain command.
func (re *Regex) Explain() string {
	return re.root.String()
}
