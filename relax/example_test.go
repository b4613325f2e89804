package relax_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinrelax/mesh"
	"github.com/katalvlaran/skinrelax/relax"
	"github.com/katalvlaran/skinrelax/weights"
)

// ExampleRelax smooths the middle vertex of a three-vertex strip with the
// Relax kernel: half its own weight, half the mean of its neighbors.
func ExampleRelax() {
	m := mesh.New()
	for i := 0; i < 3; i++ {
		_ = m.AddVertex(i, r3.Vec{X: float64(i)})
	}
	_ = m.AddEdge(0, 1)
	_ = m.AddEdge(1, 2)

	store, _ := weights.NewMemoryStore(2, []weights.WeightVector{{1, 0}, {0, 1}, {1, 0}})

	cfg := relax.DefaultConfig()
	cfg.Kernel = "relax"

	rep, err := relax.Relax(cfg, store, m, []int{1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rep.Weights[1], rep.Frontier)
	// Output:
	// [0.5 0.5] 2
}

// ExampleSession_locked keeps influence 2 locked while a Laplacian round
// redistributes the rest; the unlocked total of 0.5 is preserved.
func ExampleSession_locked() {
	m, _ := mesh.FromTriangles(
		[]r3.Vec{{X: 0}, {X: 1}, {X: 2}},
		[]int{0, 1, 2},
	)
	store, _ := weights.NewMemoryStore(3, []weights.WeightVector{
		{0.2, 0.3, 0.5},
		{0.1, 0.4, 0.5},
		{0.6, 0.1, 0.3},
	})

	cfg := relax.DefaultConfig()
	cfg.OnlyUnlockInfluences = true

	s, err := relax.NewSession(cfg, store, m, []int{1}, relax.WithLocks(weights.Locks{false, false, true}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rep, err := s.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	w := rep.Weights[1]
	fmt.Printf("%.4f %.4f %.4f\n", w[0], w[1], w[2])
	// Output:
	// 0.3333 0.1667 0.5000
}
