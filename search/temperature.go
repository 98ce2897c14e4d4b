package search

import "math"

// tempMemoLimit bounds the ratio memo. The key space (depth pairs) is not
// intrinsically finite, so the map resets once it crosses this limit.
const tempMemoLimit = 1024

// temperatures is the Temperature Controller: a pure function of the two
// most recently explored depths producing the engine's current minimum
// temperature. Purely advisory input to the cost model, fully deterministic.
type temperatures struct {
	total    int
	minFloor float64
	maxFloor float64
	current  float64
	memo     map[[2]int]float64
}

func newTemperatures(total int, t Temperature) *temperatures {
	return &temperatures{
		total:    total,
		minFloor: t.MinFloor,
		maxFloor: t.MaxFloor,
		current:  t.Start,
		memo:     make(map[[2]int]float64),
	}
}

// ratio maps (depth, priorDepth) to a blend factor in [0,0.9]:
//
//   - advancing (depth > prior): (depth/T)^2.5 / 80 — a slow pull that
//     strengthens as generation nears completion;
//   - backtracking or stalling: |prior−depth| × 3/√T, capped at 0.9 — the
//     further the jump backwards, the harder the pull.
func (t *temperatures) ratio(depth, prior int) float64 {
	key := [2]int{depth, prior}
	if r, ok := t.memo[key]; ok {
		return r
	}

	var r float64
	if depth > prior {
		r = math.Pow(float64(depth)/float64(t.total), 2.5) / 80
	} else {
		r = math.Min(0.9, float64(prior-depth)*3/math.Sqrt(float64(t.total)))
	}
	if len(t.memo) >= tempMemoLimit {
		t.memo = make(map[[2]int]float64)
	}
	t.memo[key] = r

	return r
}

// update blends the current temperature toward a floor:
// maxFloor when advancing, minFloor when backtracking or stalling, with
// newTemperature = floor×ratio + current×(1−ratio).
func (t *temperatures) update(depth, prior int) {
	floor := t.minFloor
	if depth > prior {
		floor = t.maxFloor
	}
	r := t.ratio(depth, prior)
	t.current = floor*r + t.current*(1-r)
}
