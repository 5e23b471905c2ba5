package corpus

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/matchlab/trex"
)

// Result is the outcome of a single case. Detail is empty when the case
// passed and otherwise says what the engine returned instead.
type Result struct {
	Suite  string
	Case   string
	Pass   bool
	Detail string
}

// Options adjusts how Run walks the suites.
type Options struct {
	// FailFast stops the run after the first failing case.
	FailFast bool

	// OnCase, when set, is called once per evaluated case, in order.
	OnCase func(Result)
}

// Summary aggregates a run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Failures []Result
}

// Ok reports whether every case passed.
func (s Summary) Ok() bool {
	return s.Failed == 0
}

// Run evaluates every case of every suite against the engine. The returned
// error is non-nil only when ctx is canceled mid-run; failing cases are
// reported through the summary, and through logger when one is given.
func Run(ctx context.Context, logger *zap.Logger, suites []Suite, opts Options) (Summary, error) {
	var sum Summary
	for _, suite := range suites {
		for _, c := range suite.Cases {
			select {
			case <-ctx.Done():
				return sum, ctx.Err()
			default:
			}

			res := runCase(suite.Name, c)
			sum.Total++
			if res.Pass {
				sum.Passed++
			} else {
				sum.Failed++
				sum.Failures = append(sum.Failures, res)
				if logger != nil {
					logger.Error("case failed",
						zap.String("suite", res.Suite),
						zap.String("case", res.Case),
						zap.String("detail", res.Detail),
					)
				}
			}
			if opts.OnCase != nil {
				opts.OnCase(res)
			}
			if !res.Pass && opts.FailFast {
				return sum, nil
			}
		}
	}
	return sum, nil
}

func runCase(suite string, c Case) Result {
	res := Result{Suite: suite, Case: c.Name, Pass: true}

	re, err := trex.Compile(c.Pattern)
	if c.CompileError {
		if err == nil {
			res.Pass = false
			res.Detail = fmt.Sprintf("pattern %q compiled, want a syntax error", c.Pattern)
		}
		return res
	}
	if err != nil {
		res.Pass = false
		res.Detail = fmt.Sprintf("pattern %q failed to compile: %v", c.Pattern, err)
		return res
	}

	caps, ok := re.MatchString(c.Input)
	if ok != c.Match {
		res.Pass = false
		if c.Match {
			res.Detail = fmt.Sprintf("input %q did not match", c.Input)
		} else {
			res.Detail = fmt.Sprintf("input %q matched with %v, want no match", c.Input, caps)
		}
		return res
	}
	if c.Match && len(c.Captures) > 0 && !capturesEqual(caps, c.Captures) {
		res.Pass = false
		res.Detail = fmt.Sprintf("captures = %v, want %v", caps, trex.Captures(c.Captures))
	}
	return res
}

func capturesEqual(got trex.Captures, want map[int]string) bool {
	if len(got) != len(want) {
		return false
	}
	for slot, value := range want {
		g, ok := got[slot]
		if !ok || g != value {
			return false
		}
	}
	return true
}
