// checkers-perft counts the turn tree of a checkers game to a fixed depth.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("checkers-perft version %s\n", programVersion)
		os.Exit(0)
	}

	builder := config.NewConfigBuilder()
	if err := applyFlags(builder); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cfg := builder.Build()
	setupLogFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := runPerft(ctx, cfg, optionsFromFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var w output.ReportWriter = output.NewTextWriter(os.Stdout)
	if *jsonOutput {
		w = output.NewJSONWriter(os.Stdout)
	}
	if err := w.WriteReport(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile redirects diagnostics when -l is given.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: checkers-perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the leaf nodes of the checkers turn tree from the starting position.\n")
	fmt.Fprintf(os.Stderr, "A whole capture chain counts as one turn.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
