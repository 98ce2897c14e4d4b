// Package wavegrid is a Wave-Function-Collapse-style procedural grid
// generator: it learns tile-adjacency statistics from example images and
// fills an undecided grid with tiles chosen by a best-first tree search,
// so that every local 3x3 neighborhood stays statistically plausible.
//
// 🚀 What is wavegrid?
//
//	A deterministic, seedable generator built from four small packages:
//		• grid/    — the 2D tile-hash grid primitive (0 = undecided),
//		             content hashing and JSON snapshots
//		• catalog/ — tile catalog built from sample images: unique tiles,
//		             frequencies, 3x3 neighborhood statistics, wildcard
//		             pattern queries, image encode/render
//		• search/  — the best-first search engine: lazily expanded,
//		             deduplicated tree over partial assignments, one shared
//		             mutable grid replayed between branches, cost model
//		             with temperature annealing, plateau/cancel handling
//		• batch/   — bounded-parallel multi-run orchestration with one
//		             shared cancellation flag and progress counter
//
// ✨ Why choose wavegrid?
//
//   - Deterministic – the same seed, catalog and weights always reproduce
//     the same grid, byte for byte
//   - Best-effort – plateau, exhaustion and cancellation all still return
//     the deepest partial result found; undecided cells stay undecided
//   - Tunable – frequency adjustment, temperature bounds and valuation
//     weights are all functional options with sensible defaults
//
// Quick ASCII example:
//
//	sample image          generated grid
//	┌──┬──┬──┐            ┌──┬──┬──┬──┐
//	│▒▒│░░│▒▒│   learn    │░░│▒▒│░░│▒▒│
//	├──┼──┼──┤  ───────▶  ├──┼──┼──┼──┤
//	│░░│▒▒│░░│   search   │▒▒│░░│▒▒│░░│
//	└──┴──┴──┘            └──┴──┴──┴──┘
//
// Dive into the examples/ directory for end-to-end scenarios: building a
// catalog, completing a partially decided grid, and running batches.
//
//	go get github.com/tilewave/wavegrid
package wavegrid
