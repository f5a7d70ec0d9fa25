// Package precompute fans out single-source Dijkstra runs across many named
// source points in parallel and aggregates the per-source results.
//
// What:
//
//   - Run maps every named continuous-space source to its grid cell,
//     rejects obstacle-seated sources up front, dispatches one
//     dijkstra.Compute task per valid source onto a bounded worker pool,
//     and merges completions into a name-keyed result map.
//   - A progress callback reports (completed count, most recent name) as
//     results land; it is informational only and never blocks a worker.
//
// Why:
//
//   - Per-source runs are independent and share only a read-only grid, so
//     the workload is embarrassingly parallel.
//   - Batch analysis needs every source's maps before it can answer any
//     (source, target) query quickly.
//
// Concurrency model:
//
//   - One goroutine per valid source, admission limited by a semaphore
//     channel sized to Options.Workers.
//   - Workers write nothing shared; each sends its result over a channel.
//   - The calling goroutine is the single collector and the sole writer of
//     the aggregate map, so completion order cannot affect the outcome.
//   - A panicking worker is recovered and recorded as that source's failure;
//     sibling tasks are never aborted.
//   - Cancellation is cooperative and coarse: the context is consulted
//     between dispatches only, never inside a running Dijkstra pass.
//
// Complexity: O(S × W×H log(W×H)) total work across Options.Workers lanes,
// O(S × W×H) memory for S sources.
//
// Outcomes:
//
//   - The failed-names list is empty exactly when every source succeeded.
//   - A non-empty list is a partial, non-fatal outcome: map entries for the
//     sources that did succeed remain fully usable.
package precompute
