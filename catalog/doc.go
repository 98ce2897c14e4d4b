// Package catalog learns tile statistics from sample images and answers
// adjacency queries for the wavegrid search engine.
//
// Overview:
//
//   - Build slices each sample into tileW×tileH blocks, identifies every
//     unique block by a 4-byte BLAKE2b content hash and records its
//     frequency (fraction of occurrences within that sample). Samples whose
//     dimensions are not tile multiples are rescaled to the nearest multiple
//     with a warning, never an error.
//   - Across samples, frequencies under the same hash are summed. This is
//     intentional: it matches how the statistics are consumed downstream,
//     even though it can bias catalogs toward samples with fewer unique
//     tiles.
//   - Every 3x3 window of each sample's tile-hash grid becomes a
//     neighborhood pattern; counts of identical patterns merge additively
//     across windows and samples.
//   - Query answers "which tiles can sit at the center of this partially
//     decided neighborhood, and how often was each observed" — the only
//     adjacency primitive the search engine needs. Wildcard (zero)
//     positions match anything; no propagation beyond the 3x3 window is
//     ever performed.
//
// The catalog also bridges between pixels and tile-hash grids:
//
//   - Encode turns an image into a *grid.Grid (unknown tiles → undecided).
//   - Render turns a grid back into pixels plus a mask marking undecided
//     cells, so a caller can composit or inpaint the blanks.
//   - Filter blanks out cells by tile set, for partial re-generation.
//   - ExportJSON/ImportJSON persist the catalog (tiles as base64 PNG) so
//     samples need not be re-sliced in every process.
//
// A Catalog is immutable after Build and safe for any number of concurrent
// readers; the search engine memoizes queries on its own side.
package catalog
