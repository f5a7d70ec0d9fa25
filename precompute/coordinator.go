package precompute

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvlpath/costgrid"
	"github.com/katalvlaran/lvlpath/dijkstra"
)

// completion is one worker's handoff to the collector.
type completion struct {
	name   string
	result dijkstra.Result
	failed bool
}

// Run precomputes shortest-path maps for every named source point.
//
// Each source's continuous coordinate is mapped to a grid cell with the
// clamped floor rule (costgrid.CellForPoint). Sources whose cell is
// impassable are recorded as failed immediately and never dispatched; the
// rest run as independent dijkstra.Compute tasks on a bounded worker pool.
//
// The returned map holds one Result per succeeded source name. The failed
// list carries every source that was obstacle-seated, panicked internally,
// or was still undispatched when the context fired; it is sorted by name and
// empty exactly on full success. Partial results are usable as-is.
//
// Run itself is the collector: it blocks until every dispatched task has
// completed, and it is the only goroutine that touches the aggregate map.
func Run(g *costgrid.Grid, sources map[string]orb.Point, opts ...Option) (map[string]dijkstra.Result, []string) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make(map[string]dijkstra.Result, len(sources))
	var failed []string
	if len(sources) == 0 {
		return results, nil
	}

	// 2) Partition sources: obstacle-seated ones fail without dispatch.
	//    Names are sorted so dispatch order is reproducible run to run.
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	type task struct {
		name string
		cell costgrid.Cell
	}
	tasks := make([]task, 0, len(names))
	for _, name := range names {
		cell := g.CellForPoint(sources[name])
		if !g.Passable(cell.Row, cell.Col) {
			failed = append(failed, name)
			continue
		}
		tasks = append(tasks, task{name: name, cell: cell})
	}

	// 3) Dispatch one goroutine per valid source, admission-limited by a
	//    semaphore channel. The context is only consulted here, between
	//    dispatches; a running Dijkstra pass is short and not interruptible.
	done := cfg.Ctx.Done()
	completions := make(chan completion, len(tasks))
	semaphore := make(chan struct{}, cfg.Workers)
	dispatched := 0

dispatch:
	for _, tk := range tasks {
		// Poll cancellation first: when the context is already done a free
		// semaphore slot must not win the select below.
		select {
		case <-done:
			failed = append(failed, tk.name)
			continue dispatch // canceled before dispatch; never started
		default:
		}
		select {
		case <-done:
			failed = append(failed, tk.name)
			continue dispatch
		case semaphore <- struct{}{}:
		}
		dispatched++
		go func(name string, cell costgrid.Cell) {
			defer func() { <-semaphore }()
			defer func() {
				// A panic inside one source's run must not take down its
				// siblings; it becomes that source's failure.
				if r := recover(); r != nil {
					completions <- completion{name: name, failed: true}
				}
			}()
			completions <- completion{name: name, result: dijkstra.Compute(g, cell)}
		}(tk.name, tk.cell)
	}

	// 4) Collect. This loop is the single writer of the result map; merging
	//    here keeps the aggregate identical no matter which worker finishes
	//    first.
	for i := 0; i < dispatched; i++ {
		c := <-completions
		if c.failed {
			failed = append(failed, c.name)
			continue
		}
		results[c.name] = c.result
		if cfg.Progress != nil {
			cfg.Progress(len(results), c.name)
		}
	}

	sort.Strings(failed)

	return results, failed
}
