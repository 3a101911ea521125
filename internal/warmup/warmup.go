package warmup

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/baditaflorin/go_casefmt/internal/ports"
)

// WarmupConfig defines configuration for warming up formatters
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of passes over the samples per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  100,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Validate checks if the configuration is valid. Zero counts are allowed
// and treated as one by NewManager.
func (c WarmupConfig) Validate() error {
	if c.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	if c.Iterations < 0 {
		return errors.New("iterations must not be negative")
	}
	if c.Duration < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}

// Failure records a sample whose formatted output changed when formatted
// a second time.
type Failure struct {
	Formatter string
	Input     string
	First     string
	Second    string
}

// Report is the outcome of a warmup run.
type Report struct {
	Formatted int
	Failures  []Failure
	Duration  time.Duration
}

// OK reports whether every sample was stable.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

type registration struct {
	name      string
	formatter ports.Formatter
	samples   []string
}

// Manager runs registered formatters over sample inputs before traffic
// arrives and checks that formatting a formatted string is a no-op.
type Manager struct {
	logger     ports.Logger
	formatters []registration
	config     WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	if config.Iterations < 1 {
		config.Iterations = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterFormatter adds a formatter and the samples to run through it.
func (wm *Manager) RegisterFormatter(name string, f ports.Formatter, samples ...string) {
	wm.formatters = append(wm.formatters, registration{name: name, formatter: f, samples: samples})
}

// WarmUp runs every registered formatter on its samples from
// Concurrency goroutines until Iterations passes finish or ctx ends.
func (wm *Manager) WarmUp(ctx context.Context) Report {
	startTime := time.Now()
	wm.logger.Info("Starting formatter warmup",
		"formatters", len(wm.formatters),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	var (
		mu        sync.Mutex
		formatted int
		failures  = make(map[[2]string]Failure)
		wg        sync.WaitGroup
	)

	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			count := 0
			found := make(map[[2]string]Failure)
			defer func() {
				mu.Lock()
				formatted += count
				for k, f := range found {
					failures[k] = f
				}
				mu.Unlock()
			}()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-warmupCtx.Done():
					return
				default:
				}

				for _, reg := range wm.formatters {
					for _, in := range reg.samples {
						first := reg.formatter.Format(in)
						second := reg.formatter.Format(first)
						count += 2
						if first != second {
							found[[2]string{reg.name, in}] = Failure{
								Formatter: reg.name,
								Input:     in,
								First:     first,
								Second:    second,
							}
						}
					}
				}
			}
		}()
	}

	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	report := Report{Formatted: formatted, Duration: time.Since(startTime)}
	for _, f := range failures {
		report.Failures = append(report.Failures, f)
	}
	sort.Slice(report.Failures, func(i, j int) bool {
		a, b := report.Failures[i], report.Failures[j]
		if a.Formatter != b.Formatter {
			return a.Formatter < b.Formatter
		}
		return a.Input < b.Input
	})

	for _, f := range report.Failures {
		wm.logger.Error("Formatter is not idempotent",
			"formatter", f.Formatter,
			"input", f.Input,
			"first", f.First,
			"second", f.Second,
		)
	}

	wm.logger.Info("Formatter warmup completed",
		"formatted", report.Formatted,
		"failures", len(report.Failures),
		"duration", report.Duration,
	)

	return report
}
