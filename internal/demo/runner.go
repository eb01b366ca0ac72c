package demo

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"
)

// Defaults reproduce the behavior of a bare "progress-demo" invocation.
const (
	DefaultCount       = 100
	DefaultDelay       = 10 * time.Millisecond
	DefaultDescription = "Processing"
	DefaultUnit        = "items"
)

// Config holds all runtime configuration for a demo run.
type Config struct {
	Count       int           // number of simulated work items
	Delay       time.Duration // blocking pause per item
	Description string        // bar label
	Unit        string        // item unit shown in the rate display
	Workers     int           // concurrent workers; <=1 runs fully sequential

	Out     io.Writer // banner and completion text; if nil, os.Stdout
	BarOut  io.Writer // progress bar redraws; if nil, os.Stderr
	Tracker Tracker   // if nil, NewItemProgress on BarOut is used
}

// Run prints the banner, works through Count items advancing the tracker
// once per item, and prints the completion message. The completion message
// is written only after every item has finished.
func Run(cfg *Config) error {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	barOut := cfg.BarOut
	if barOut == nil {
		barOut = os.Stderr
	}

	fmt.Fprintln(out, "Simple Progress Bar Demo")
	fmt.Fprintln(out, strings.Repeat("-", 30))

	tracker := cfg.Tracker
	if tracker == nil {
		tracker = NewItemProgress(cfg.Count, cfg.Description, cfg.Unit, barOut)
	}

	if err := workItems(cfg, tracker); err != nil {
		return err
	}
	tracker.Finish()

	fmt.Fprintln(out, "\nDone!")
	return nil
}

// workItems performs Count simulated work items. Each item blocks for
// Delay and then advances the tracker by one.
func workItems(cfg *Config, tracker Tracker) error {
	if cfg.Workers <= 1 {
		for i := 0; i < cfg.Count; i++ {
			time.Sleep(cfg.Delay)
			tracker.Inc()
		}
		return nil
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var g errgroup.Group
	for i := 0; i < cfg.Count; i++ {
		g.Go(func() error {
			done := make(chan struct{})
			if err := pool.Submit(func() {
				time.Sleep(cfg.Delay)
				tracker.Inc()
				close(done)
			}); err != nil {
				return fmt.Errorf("submit task: %w", err)
			}
			<-done
			return nil
		})
	}
	return g.Wait()
}
