package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sigman78/progress-demo/internal/demo"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: progress-demo [options]

Options:
  -count int              Number of work items (default 100)
  -sleep duration         Simulated work per item (default 10ms)
  -desc string            Progress bar description (default "Processing")
  -unit string            Item unit shown in the rate display (default "items")
  -workers int            Concurrent workers (default 1)
  -version                Print version and exit
  -h / -help              Show this help and exit
`)
}

func main() {
	// Use ContinueOnError so we can intercept ErrHelp and unknown-flag errors
	// and control the exit code ourselves.
	fs := flag.NewFlagSet("progress-demo", flag.ContinueOnError)
	fs.Usage = usage

	var (
		countFlag   int
		sleepFlag   time.Duration
		descFlag    string
		unitFlag    string
		workersFlag int
	)

	fs.IntVar(&countFlag, "count", demo.DefaultCount, "Number of work items")
	fs.DurationVar(&sleepFlag, "sleep", demo.DefaultDelay, "Simulated work per item")
	fs.StringVar(&descFlag, "desc", demo.DefaultDescription, "Progress bar description")
	fs.StringVar(&unitFlag, "unit", demo.DefaultUnit, "Item unit shown in the rate display")
	fs.IntVar(&workersFlag, "workers", 1, "Concurrent workers")

	// Handle -version / -h / -help before the flag parser so we control the exit code.
	for _, a := range os.Args[1:] {
		if a == "-version" || a == "--version" {
			fmt.Printf("progress-demo %s (commit %s, built %s)\n", version, commit, date)
			os.Exit(0)
		}
		if a == "-h" || a == "-help" || a == "--help" {
			usage()
			os.Exit(0)
		}
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		// Unknown/malformed flag: fs already printed the error message
		os.Exit(2)
	}

	if countFlag < 0 {
		fmt.Fprintln(os.Stderr, "error: -count must not be negative")
		os.Exit(1)
	}
	if sleepFlag < 0 {
		fmt.Fprintln(os.Stderr, "error: -sleep must not be negative")
		os.Exit(1)
	}
	if workersFlag <= 0 {
		fmt.Fprintln(os.Stderr, "error: -workers must be greater than 0")
		os.Exit(1)
	}

	cfg := &demo.Config{
		Count:       countFlag,
		Delay:       sleepFlag,
		Description: demo.CleanLabel(descFlag, demo.DefaultDescription),
		Unit:        demo.CleanLabel(unitFlag, demo.DefaultUnit),
		Workers:     workersFlag,
	}

	if err := demo.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
