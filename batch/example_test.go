// Package batch_test provides a runnable example for the batch runner.
package batch_test

import (
	"context"
	"fmt"
	"image"

	"github.com/tilewave/wavegrid/batch"
	"github.com/tilewave/wavegrid/catalog"
	"github.com/tilewave/wavegrid/grid"
)

// ExampleGenerate demonstrates fanning one starting grid out over several
// seeds and collecting the results in run order.
func ExampleGenerate() {
	// 1) One solid sample → one tile → forced, deterministic fills.
	sample := image.NewNRGBA(image.Rect(0, 0, 12, 12))
	for i := range sample.Pix {
		sample.Pix[i] = 255
	}
	cat, err := catalog.Build([]image.Image{sample}, 4, 4)
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	// 2) One start, three seeds: the batch broadcasts to three runs.
	start, err := grid.New(4, 4)
	if err != nil {
		fmt.Println("grid error:", err)
		return
	}
	results, err := batch.Generate(context.Background(), cat, batch.Params{
		Starts: []*grid.Grid{start},
		Seeds:  []int64{1, 2, 3},
	}, batch.WithMaxParallel(2))
	if err != nil {
		fmt.Println("batch error:", err)
		return
	}

	// 3) Results arrive in run order regardless of completion order.
	for i, res := range results {
		fmt.Printf("run=%d outcome=%s depth=%d\n", i, res.Outcome, res.Depth)
	}
	// Output:
	// run=0 outcome=complete depth=16
	// run=1 outcome=complete depth=16
	// run=2 outcome=complete depth=16
}
