// Command semanticdump runs the semantic extractor over a single file or a
// project directory and prints the resulting scope graph, in the style of
// inspector/coder/example/main.go's standalone CLI driver.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/viant/afs"

	"github.com/lexiscope/lexiscope/internal/config"
	"github.com/lexiscope/lexiscope/semantic/batch"
	"github.com/lexiscope/lexiscope/semantic/report"
)

func main() {
	var (
		format      = flag.String("format", "yaml", "report format: yaml or json")
		recursive   = flag.Bool("recursive", true, "walk sub-directories when the argument is a directory")
		skipTests   = flag.Bool("skip-tests", false, "exclude *.test.* / *.spec.* files")
		concurrency = flag.Int("concurrency", 0, "max files extracted in parallel (0 = default)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: semanticdump [flags] <file-or-directory>")
		os.Exit(2)
	}
	target := flag.Arg(0)

	if err := run(target, *format, *recursive, *skipTests, *concurrency); err != nil {
		fmt.Fprintln(os.Stderr, "semanticdump:", err)
		os.Exit(1)
	}
}

func run(target, format string, recursive, skipTests bool, concurrency int) error {
	cfg := config.New(
		config.WithRecursive(recursive),
		config.WithSkipTests(skipTests),
		config.WithFormat(format),
		config.WithConcurrency(concurrency),
	)

	ctx := context.Background()
	fs := afs.New()

	graph, err := batch.Project(ctx, fs, target, cfg)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", target, err)
	}

	emitter, err := report.ForFormat(cfg.Format)
	if err != nil {
		return err
	}

	out, err := emitter.Emit(graph)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	_, err = os.Stdout.Write(out)
	return err
}
