package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matchlab/trex/internal/corpus"
)

var (
	failFast  bool
	watchMode bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [corpus.yaml...]",
	Short: "Run conformance corpus files against the engine",
	Long: `Loads each YAML corpus file and evaluates every case in it, printing a
per-file PASS/FAIL summary. Exits non-zero when any case fails.
Example) trex verify testdata/corpus.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide corpus file paths")
			os.Exit(1)
		}

		ctx := context.Background()
		if watchMode {
			if err := watchAndVerify(ctx, logger, args); err != nil {
				logger.Error("watch failed", zap.Error(err))
				os.Exit(1)
			}
			return
		}
		if !verifyFiles(ctx, logger, args) {
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop a file at its first failing case")
	verifyCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-run a corpus file whenever it changes")
}

func verifyFiles(ctx context.Context, logger *zap.Logger, paths []string) bool {
	allOk := true
	for _, path := range paths {
		sum, err := verifyFile(ctx, logger, path)
		if err != nil {
			logger.Error("Error processing corpus", zap.String("path", path), zap.Error(err))
			allOk = false
			continue
		}
		fmt.Print(formatSummary(path, sum))
		if !sum.Ok() {
			allOk = false
		}
	}
	return allOk
}

func verifyFile(ctx context.Context, logger *zap.Logger, path string) (corpus.Summary, error) {
	suites, err := corpus.Load(path)
	if err != nil {
		return corpus.Summary{}, err
	}

	bar := progressbar.NewOptions(corpus.TotalCases(suites),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	sum, err := corpus.Run(ctx, logger, suites, corpus.Options{
		FailFast: failFast,
		OnCase:   func(corpus.Result) { bar.Add(1) },
	})
	fmt.Println()
	return sum, err
}

func watchAndVerify(ctx context.Context, logger *zap.Logger, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("error adding %s to watcher: %w", path, err)
		}
	}

	verifyFiles(ctx, logger, paths)
	fmt.Println("watching for changes...")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				// wait for a while after file change to consider multiple changes as one
				time.Sleep(100 * time.Millisecond)
				verifyFiles(ctx, logger, []string{event.Name})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
