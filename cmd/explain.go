package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain PATTERN",
	Short: "Print the compiled tree of a pattern",
	Long: `Compiles the pattern and prints its node tree, one node per line with
nesting shown by indentation. Useful to see group numbering and how
repetition operators attach.
Example) trex explain "(a|b)((c|d)*)"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide exactly one pattern")
			os.Exit(1)
		}

		re, err := compilePattern(args[0])
		if err != nil {
			os.Exit(1)
		}

		fmt.Printf("%s %s\n", patternStyle.Sprint("pattern:"), re.String())
		fmt.Printf("%s %d\n", patternStyle.Sprint("groups:"), re.GroupCount())
		fmt.Println(re.Explain())
	},
}
