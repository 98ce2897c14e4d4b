// Package search implements a best-first tree search over partial grid
// assignments: the engine behind wavegrid's generation.
//
// Overview:
//
//   - The search tree is expanded lazily. A node is (depth, grid-hash) plus
//     the action that produced it; nodes sharing that identity are merged
//     (graph search). Grid content is never stored per node.
//   - One shared mutable grid, owned exclusively by the engine, always
//     reflects the path to the last materialized node. Jumping to another
//     branch replays the difference: revert up to the nearest common
//     ancestor, re-apply down to the target. Occurrence counters and the
//     frontier set are updated in lockstep, so apply/revert stay exact
//     inverses.
//   - The frontier — undecided cells adjacent to a decided one — is the
//     only set of cells eligible for expansion. It is maintained
//     incrementally; the sole wholesale scan happens at the root.
//   - Per frontier cell, the cost model asks the catalog which tiles fit
//     the cell's 3x3 neighborhood (memoized per engine), then blends
//     observed probability, learned-vs-current frequency deviation, and
//     temperature-scaled noise into a cost, multiplied by the cell's
//     normalized entropy.
//   - The temperature controller nudges a minimum-temperature signal from
//     the sequence of explored depths: backtracking pulls it toward one
//     floor, advancing toward another.
//
// Exploration order minimizes
//
//	w1·(1+T−depth) + w2·nodeCost + w3·(pathEntropy/(1+depth))
//
// so depth progress is favored by default but can be overridden by the
// local cost or path-entropy terms — this is not a pure depth-first search.
//
// Termination is exactly one of: completion (all cells filled), plateau
// (best depth unchanged between two checks), exhaustion (open list empty),
// or cancellation (shared stop flag observed at the start of an expansion
// step). There is no time-based timeout. All non-cancellation outcomes
// return the best node found, decoded into a grid; undecided cells stay
// explicitly undecided.
//
// Concurrency:
//
//   - A single Search call is single-threaded and cooperative; with a fixed
//     seed it is fully deterministic.
//   - Multiple independent calls may run concurrently, sharing only a
//     Control (atomic stop flag + progress counter). No ordering guarantee
//     exists across instances.
//
// Errors (sentinel):
//
//   - ErrNilCatalog, ErrEmptyCatalog, ErrNilGrid for invalid inputs.
//   - ErrBadFreqAdjust, ErrBadPlateau, ErrBadTemperature, ErrBadWeights via
//     panic from option constructors, signalling invalid configuration
//     early.
package search
