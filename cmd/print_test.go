package cmd

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchlab/trex"
	"github.com/matchlab/trex/internal/corpus"
)

func init() {
	// keep assertions free of escape codes
	color.NoColor = true
}

func TestFormatMatch(t *testing.T) {
	caps := trex.Captures{0: "bcddc", 1: "b", 2: "cddc", 3: "c"}
	got := formatMatch("bcddc", caps)
	want := "match: \"bcddc\"\n" +
		"  0 | \"bcddc\"\n" +
		"  1 | \"b\"\n" +
		"  2 | \"cddc\"\n" +
		"  3 | \"c\"\n"
	assert.Equal(t, want, got)
}

func TestFormatNoMatch(t *testing.T) {
	assert.Equal(t, "no match: \"xyz\"\n", formatNoMatch("xyz"))
}

func TestFormatSyntaxError(t *testing.T) {
	_, err := trex.Compile("a)")
	require.Error(t, err)
	var serr *trex.SyntaxError
	require.True(t, errors.As(err, &serr))

	got := formatSyntaxError("a)", serr)
	want := "error: unmatched ')'\n" +
		"  | a)\n" +
		"  |  ^ unmatched ')'\n"
	assert.Equal(t, want, got)
}

func TestFormatSummary(t *testing.T) {
	pass := corpus.Summary{Total: 24, Passed: 24}
	assert.Equal(t, "PASS corpus.yaml: 24/24 cases\n", formatSummary("corpus.yaml", pass))

	fail := corpus.Summary{
		Total:  24,
		Passed: 23,
		Failed: 1,
		Failures: []corpus.Result{
			{Suite: "repetition", Case: "greedy", Detail: "no match"},
		},
	}
	want := "FAIL corpus.yaml: 23/24 cases, 1 failed\n" +
		"  - repetition/greedy: no match\n"
	assert.Equal(t, want, formatSummary("corpus.yaml", fail))
}
