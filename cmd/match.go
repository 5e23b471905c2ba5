package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matchlab/trex"
)

var matchCmd = &cobra.Command{
	Use:   "match PATTERN [inputs...]",
	Short: "Match inputs against a pattern and print their capture tables",
	Long: `Compiles the pattern once and matches every input against it. Matching is
anchored: the pattern must consume each input in full.
Example) trex match "(a|b)((c|d)*)" bcddc`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println("error: Please provide a pattern and at least one input")
			os.Exit(1)
		}

		re, err := compilePattern(args[0])
		if err != nil {
			os.Exit(1)
		}

		anyMissed := false
		for _, input := range args[1:] {
			caps, ok := re.MatchString(input)
			if !ok {
				anyMissed = true
				fmt.Print(formatNoMatch(input))
				continue
			}
			fmt.Print(formatMatch(input, caps))
		}
		if anyMissed {
			os.Exit(1)
		}
	},
}

// compilePattern compiles and, on failure, reports the syntax error with a
// caret before returning it.
func compilePattern(pattern string) (*trex.Regex, error) {
	re, err := trex.Compile(pattern)
	if err != nil {
		var serr *trex.SyntaxError
		if errors.As(err, &serr) {
			fmt.Print(formatSyntaxError(pattern, serr))
		}
		logger.Error("invalid pattern", zap.String("pattern", pattern), zap.Error(err))
		return nil, err
	}
	return re, nil
}
