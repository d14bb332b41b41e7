package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
	"github.com/kk-code-lab/rtree/internal/logging"
	"github.com/kk-code-lab/rtree/internal/render"
	"github.com/kk-code-lab/rtree/internal/tree"
	"go.uber.org/zap"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], config.DefaultEnvironment(), os.Stdout, os.Stderr))
}

func run(args []string, env config.Environment, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, env)
	var usageErr *config.UsageError
	switch {
	case errors.Is(err, config.ErrHelp):
		config.PrintHelp(stdout)
		return exitOK
	case errors.Is(err, config.ErrVersion):
		config.PrintVersion(stdout)
		return exitOK
	case errors.As(err, &usageErr):
		fmt.Fprintf(stderr, "rtree: %v\n", usageErr)
		config.PrintUsage(stderr)
		return exitUsage
	case err != nil:
		fmt.Fprintf(stderr, "rtree: %v\n", err)
		return exitUsage
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "rtree: logger: %v\n", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	out := stdout
	if cfg.OutputPath != "" {
		file, err := os.Create(cfg.OutputPath)
		if err != nil {
			fmt.Fprintf(stderr, "rtree: %v\n", err)
			return exitFailure
		}
		defer func() {
			_ = file.Close()
		}()
		out = file
	}

	if err := list(cfg, out, logger); err != nil {
		fmt.Fprintf(stderr, "rtree: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// list renders the tree and the summary line into out.
func list(cfg *config.Config, out io.Writer, logger *zap.Logger) error {
	w := bufio.NewWriter(out)
	walker := tree.NewWalker(cfg, render.New(w, cfg), logger)

	counter, err := walker.Walk(fs.NewRoot(cfg.Root))
	if err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	if cfg.Report {
		if _, err := io.WriteString(w, counter.Report()); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
