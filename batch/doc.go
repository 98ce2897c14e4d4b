// Package batch orchestrates multiple independent generation runs.
//
// Overview:
//
//   - Params carries per-run lists (starting grids, seeds, connectivity,
//     strengths, plateau intervals, temperature bounds, weights); shorter
//     lists broadcast against the longest by repeating their last element.
//   - Generate executes the runs with a bounded worker pool
//     (errgroup.SetLimit) and returns results in run order.
//   - All runs share exactly two values: one atomic cancellation flag and
//     one atomic progress counter, wrapped in search.Control. Cancelling
//     the context — or the Control directly — aborts every run at its next
//     expansion step.
//   - A reporter goroutine reads the shared counter on a fixed interval
//     (default 100ms) and feeds it to an optional ProgressFunc, together
//     with the total number of cells to fill across the batch.
//
// Within one run, behavior is fully deterministic for a fixed seed; across
// runs no ordering is guaranteed beyond the result slice's order.
package batch
