package search

import (
	"math"
	"math/rand"

	"github.com/tilewave/wavegrid/catalog"
	"github.com/tilewave/wavegrid/grid"
)

// costModel turns a frontier cell's candidate distribution into costs.
//
// Per candidate the cost blends three signals:
//
//   - probability — how often the candidate was observed at the center of
//     compatible neighborhoods;
//   - frequency deviation — whether the tile is over- or under-represented
//     along the current path compared to the samples, scaled by a quadratic
//     depth profile that is strongest at the start and end of generation;
//   - temperature-scaled noise — one uniform draw per candidate plus one
//     temperature draw per cell.
//
// The blended attractiveness is clamped to [0,1], inverted, and multiplied
// by the cell's normalized Shannon entropy, so near-deterministic cells stay
// cheap regardless of noise. The formula is empirically tuned; keep it
// literal.
type costModel struct {
	adj        *adjacency
	cat        *catalog.Catalog
	rng        *rand.Rand
	freqAdjust float64
	total      int // cells to fill (T)
}

// compute returns the candidates, costs and local entropy for cell c at the
// given path depth, or ok=false when the cell has no compatible candidate.
// counts are the occurrence counters of the materialized path; minTemp is
// the engine's current minimum temperature.
func (m *costModel) compute(g *grid.Grid, c grid.Coord, depth int, counts map[grid.TileHash]int, minTemp float64) (tiles []grid.TileHash, costs []float64, entropy float64, ok bool) {
	tiles, probs := m.adj.candidates(g, c)
	if len(tiles) == 0 {
		return nil, nil, 0, false
	}

	// Draw order is fixed: one uniform per candidate, then one temperature
	// value per cell. Reordering would silently change every seeded run.
	rands := make([]float64, len(tiles))
	for i := range rands {
		rands[i] = m.rng.Float64()
	}
	temp := m.drawTemperature(minTemp)

	var adjusted []float64
	if m.freqAdjust > 0 {
		adjusted = m.frequencyAdjustments(tiles, depth, counts)
	}

	entropy = normalizedEntropy(probs)
	costs = make([]float64, len(tiles))
	for i, p := range probs {
		v := p + (2*rands[i]-1)*temp
		if adjusted != nil {
			v += adjusted[i] * temp
		}
		costs[i] = (1 - clamp01(v)) * entropy
	}

	return tiles, costs, entropy, true
}

// drawTemperature produces the per-cell temperature value
// 1 − uniformInt[minTemp,100)/100: high minimum temperatures shrink the
// influence of noise and frequency adjustments.
func (m *costModel) drawTemperature(minTemp float64) float64 {
	low := int(minTemp)
	if low < 0 {
		low = 0
	}
	if low > 99 {
		low = 99
	}

	return 1 - float64(m.rng.Intn(100-low)+low)/100
}

// frequencyAdjustments computes the signed deviation term per candidate:
// sign(sampleFreq − currentFreq) × (1 − min/max of the two) × depthAdjust,
// where depthAdjust = strength × (1 − Q(depth)/T) and Q is the unique
// quadratic through (0,0), (T,0) and (T/2,T) — zero at the start and end of
// generation, peaking halfway.
func (m *costModel) frequencyAdjustments(tiles []grid.TileHash, depth int, counts map[grid.TileHash]int) []float64 {
	depthAdjust := m.freqAdjust * (1 - m.depthQuadratic(depth)/float64(m.total))
	divisor := float64(depth)
	if divisor < 1 {
		divisor = 1
	}

	out := make([]float64, len(tiles))
	for i, t := range tiles {
		sampleFreq := m.cat.Frequency(t)
		currentFreq := float64(counts[t]) / divisor
		lo, hi := sampleFreq, currentFreq
		if lo > hi {
			lo, hi = hi, lo
		}
		ratio := 0.0
		if hi > 0 {
			ratio = lo / hi
		}
		out[i] = sign(sampleFreq-currentFreq) * (1 - ratio) * depthAdjust
	}

	return out
}

// depthQuadratic evaluates Q(d) = 4d(1 − d/T), the quadratic through
// (0,0), (T,0) and (T/2,T).
func (m *costModel) depthQuadratic(depth int) float64 {
	d, t := float64(depth), float64(m.total)

	return 4 * d * (1 - d/t)
}

// normalizedEntropy returns the Shannon entropy of the distribution divided
// by log2(n), or 0 for a single candidate.
func normalizedEntropy(probs []float64) float64 {
	if len(probs) < 2 {
		return 0
	}
	var h float64
	for _, p := range probs {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}

	return h / math.Log2(float64(len(probs)))
}

// clamp01 clamps v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// sign returns -1, 0 or 1 depending on the sign of x.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
