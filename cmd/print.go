package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/matchlab/trex"
	"github.com/matchlab/trex/internal/corpus"
)

var (
	passStyle    = color.New(color.FgGreen, color.Bold)
	failStyle    = color.New(color.FgRed, color.Bold)
	patternStyle = color.New(color.FgCyan, color.Bold)
	slotStyle    = color.New(color.FgBlue, color.Bold)
)

func formatMatch(input string, caps trex.Captures) string {
	var builder strings.Builder
	builder.WriteString(passStyle.Sprint("match: "))
	builder.WriteString(fmt.Sprintf("%q\n", input))

	slots := make([]int, 0, len(caps))
	for slot := range caps {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	for _, slot := range slots {
		builder.WriteString(slotStyle.Sprintf("  %d | ", slot))
		builder.WriteString(fmt.Sprintf("%q\n", caps[slot]))
	}
	return builder.String()
}

func formatNoMatch(input string) string {
	return failStyle.Sprint("no match: ") + fmt.Sprintf("%q\n", input)
}

// formatSyntaxError points a caret at the offending position of the pattern.
func formatSyntaxError(pattern string, serr *trex.SyntaxError) string {
	var builder strings.Builder
	builder.WriteString(failStyle.Sprint("error: ") + serr.Msg + "\n")
	builder.WriteString(slotStyle.Sprint("  | ") + patternStyle.Sprint(pattern) + "\n")
	builder.WriteString(slotStyle.Sprint("  | "))
	builder.WriteString(strings.Repeat(" ", serr.Pos))
	builder.WriteString(failStyle.Sprintf("^ %s\n", serr.Msg))
	return builder.String()
}

func formatSummary(path string, sum corpus.Summary) string {
	var builder strings.Builder
	if sum.Ok() {
		builder.WriteString(passStyle.Sprint("PASS "))
		builder.WriteString(fmt.Sprintf("%s: %d/%d cases\n", path, sum.Passed, sum.Total))
		return builder.String()
	}
	builder.WriteString(failStyle.Sprint("FAIL "))
	builder.WriteString(fmt.Sprintf("%s: %d/%d cases, %d failed\n", path, sum.Passed, sum.Total, sum.Failed))
	for _, f := range sum.Failures {
		builder.WriteString(failStyle.Sprint("  - "))
		builder.WriteString(fmt.Sprintf("%s/%s: %s\n", f.Suite, f.Case, f.Detail))
	}
	return builder.String()
}
