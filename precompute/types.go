// Package precompute defines options and callback types for the parallel
// precomputation coordinator of github.com/katalvlaran/lvlpath.
package precompute

import (
	"context"
	"runtime"
)

// ProgressFunc receives incremental completion events from the collector:
// how many sources have finished successfully so far and the name of the
// most recent one. Calls happen on the collecting goroutine, one at a time,
// and must be cheap; a slow callback delays aggregation but never a worker.
type ProgressFunc func(completed int, name string)

// Options configures one Run invocation.
//
// Workers  – maximum number of concurrently running Dijkstra tasks.
//
//	Must be ≥ 1. Defaults to NumCPU-1 (at least 1), leaving one core
//	for the collector and the caller's event loop.
//
// Progress – optional completion observer; nil disables reporting.
// Ctx      – optional cancellation context, checked between dispatches.
type Options struct {
	Workers  int
	Progress ProgressFunc
	Ctx      context.Context
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// WithWorkers caps the number of concurrent Dijkstra tasks.
// Panics on values < 1; a poolless run cannot make progress.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("precompute: worker count must be at least 1")
		}
		o.Workers = n
	}
}

// WithProgress installs a completion observer.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// WithContext installs a cancellation context. Cancellation is cooperative:
// sources not yet dispatched when the context fires are reported as failed,
// while already running tasks complete normally.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns the Options used when no functional options are
// passed.
func DefaultOptions() Options {
	workers := runtime.NumCPU() - 1
	if workers < 1 {
		workers = 1
	}

	return Options{
		Workers:  workers,
		Progress: nil,
		Ctx:      context.Background(),
	}
}
