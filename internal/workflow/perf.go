package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/phkaiser13/peitch/internal/config"
	"github.com/phkaiser13/peitch/internal/log"
	"github.com/phkaiser13/peitch/internal/workspace"
)

const (
	benchmarkLookups  = 100
	benchmarkCommands = 10
)

// BenchmarkResult reports one benchmark run.
type BenchmarkResult struct {
	Elapsed  time.Duration
	Lookups  int
	Commands int
	Stats    workspace.Stats
}

// Benchmark times repeated cache lookups and a handful of git
// invocations, then records the elapsed milliseconds under
// performance.last-benchmark. Command failures are not counted against
// the run; the point is the timing.
func (w *Workflow) Benchmark(ctx context.Context) (BenchmarkResult, error) {
	l := log.FromContext(ctx)
	s := w.session
	l.Infof("benchmark", "starting performance benchmark")

	start := time.Now()
	for i := 0; i < benchmarkLookups; i++ {
		s.FileExists(".git")
		s.ConfigGetOr("test.key", "default")
		s.Branch()
	}
	for i := 0; i < benchmarkCommands; i++ {
		_ = w.run(ctx, s.Dir(), "status", "--porcelain")
	}
	elapsed := time.Since(start)

	ms := fmt.Sprintf("%.2f", elapsed.Seconds()*1000)
	l.Infof("benchmark", "benchmark completed in %sms", ms)

	if err := s.ConfigSet(config.KeyLastBenchmark, ms); err != nil {
		return BenchmarkResult{}, fmt.Errorf("failed to record benchmark: %w", err)
	}
	return BenchmarkResult{
		Elapsed:  elapsed,
		Lookups:  benchmarkLookups,
		Commands: benchmarkCommands,
		Stats:    s.Stats(),
	}, nil
}

// Optimize sweeps the oversized coarse caches and clears the recency
// layers underneath them.
func (w *Workflow) Optimize(ctx context.Context) {
	l := log.FromContext(ctx)
	l.Infof("optimize", "optimizing performance caches")
	w.session.Optimize(ctx)
	l.Infof("optimize", "cache optimization completed")
}
