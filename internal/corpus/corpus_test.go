package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantSuites  []Suite
		wantErr     bool
	}{
		{
			name: "single suite",
			yamlContent: `
suites:
  - name: basics
    cases:
      - name: literal
        pattern: "abc"
        input: "abc"
        match: true
        captures:
          0: "abc"
      - name: bad pattern
        pattern: "(a"
        compile_error: true
`,
			wantSuites: []Suite{
				{
					Name: "basics",
					Cases: []Case{
						{
							Name:     "literal",
							Pattern:  "abc",
							Input:    "abc",
							Match:    true,
							Captures: map[int]string{0: "abc"},
						},
						{
							Name:         "bad pattern",
							Pattern:      "(a",
							CompileError: true,
						},
					},
				},
			},
		},
		{
			name: "invalid yaml",
			yamlContent: `
suites:
  - name missing colon
    cases: []
`,
			wantErr: true,
		},
		{
			name:        "empty document",
			yamlContent: "",
			wantSuites:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpfile, err := os.CreateTemp("", "corpus_*.yaml")
			if err != nil {
				t.Fatalf("TempFile error: %v", err)
			}
			defer os.Remove(tmpfile.Name())

			if _, err := tmpfile.Write([]byte(tt.yamlContent)); err != nil {
				t.Fatalf("Write error: %v", err)
			}
			if err := tmpfile.Close(); err != nil {
				t.Fatalf("Close error: %v", err)
			}

			suites, err := Load(tmpfile.Name())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSuites, suites)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	suites := []Suite{
		{
			Name: "mixed",
			Cases: []Case{
				{
					Name:     "passing match",
					Pattern:  "(a|b)c",
					Input:    "bc",
					Match:    true,
					Captures: map[int]string{0: "bc", 1: "b"},
				},
				{
					Name:    "passing no-match",
					Pattern: "a",
					Input:   "b",
					Match:   false,
				},
				{
					Name:         "passing compile error",
					Pattern:      "(a",
					CompileError: true,
				},
				{
					Name:    "failing case",
					Pattern: "a",
					Input:   "a",
					Match:   false, // wrong on purpose
				},
				{
					Name:     "failing captures",
					Pattern:  "(a)",
					Input:    "a",
					Match:    true,
					Captures: map[int]string{0: "a", 1: "wrong"},
				},
			},
		},
	}

	var seen []Result
	sum, err := Run(context.Background(), zap.NewNop(), suites, Options{
		OnCase: func(r Result) { seen = append(seen, r) },
	})
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 3, sum.Passed)
	assert.Equal(t, 2, sum.Failed)
	assert.False(t, sum.Ok())
	require.Len(t, sum.Failures, 2)
	assert.Equal(t, "failing case", sum.Failures[0].Case)
	assert.Equal(t, "failing captures", sum.Failures[1].Case)
	assert.Len(t, seen, 5)
}

func TestRun_FailFast(t *testing.T) {
	suites := []Suite{
		{
			Name: "stop early",
			Cases: []Case{
				{Name: "fails", Pattern: "a", Input: "b", Match: true},
				{Name: "never reached", Pattern: "a", Input: "a", Match: true},
			},
		},
	}

	sum, err := Run(context.Background(), nil, suites, Options{FailFast: true})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Failed)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suites := []Suite{
		{Name: "s", Cases: []Case{{Name: "c", Pattern: "a", Input: "a", Match: true}}},
	}
	sum, err := Run(ctx, nil, suites, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, sum.Total)
}

func TestRun_UnexpectedCompileOutcomes(t *testing.T) {
	suites := []Suite{
		{
			Name: "compile",
			Cases: []Case{
				{Name: "wanted error, got none", Pattern: "ab", CompileError: true},
				{Name: "wanted success, got error", Pattern: "a**", Input: "a", Match: true},
			},
		},
	}

	sum, err := Run(context.Background(), nil, suites, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Failed)
	for _, f := range sum.Failures {
		assert.NotEmpty(t, f.Detail)
	}
}

// The shipped corpus must stay green against the engine it documents.
func TestRun_ShippedCorpus(t *testing.T) {
	suites, err := Load(filepath.Join("..", "..", "testdata", "corpus.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, suites)

	sum, err := Run(context.Background(), zap.NewNop(), suites, Options{})
	require.NoError(t, err)
	assert.True(t, sum.Ok(), "failures: %v", sum.Failures)
	assert.Equal(t, TotalCases(suites), sum.Total)
}
