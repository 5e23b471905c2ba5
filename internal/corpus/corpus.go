// Package corpus loads and runs YAML conformance suites against the engine.
// A suite file pins pattern/input pairs to their expected match results and
// capture tables, so regressions in parsing or matching show up as named
// failing cases rather than broken callers.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one pattern/input expectation.
type Case struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Input   string `yaml:"input"`
	Match   bool   `yaml:"match"`

	// Captures is the expected table for a matching case, keyed by slot.
	// Leave it empty to assert only the match outcome.
	Captures map[int]string `yaml:"captures,omitempty"`

	// CompileError marks a case whose pattern must fail to compile. Input,
	// Match and Captures are ignored for such cases.
	CompileError bool `yaml:"compile_error,omitempty"`
}

// Suite groups related cases under one name.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// File is the top-level document of a corpus file.
type File struct {
	Suites []Suite `yaml:"suites"`
}

// Load reads and decodes one corpus file.
func Load(path string) ([]Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.Suites, nil
}

// TotalCases counts the cases across suites, e.g. for sizing a progress bar.
func TotalCases(suites []Suite) int {
	n := 0
	for _, s := range suites {
		n += len(s.Cases)
	}
	return n
}
