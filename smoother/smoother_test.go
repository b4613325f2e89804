package smoother_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/skinrelax/adjacency"
	"github.com/katalvlaran/skinrelax/kernel"
	"github.com/katalvlaran/skinrelax/mesh"
	"github.com/katalvlaran/skinrelax/smoother"
	"github.com/katalvlaran/skinrelax/weights"
)

const eps = 1e-12

// chain builds 0-1-…-(n-1) along the X axis with unit spacing.
func chain(t *testing.T, n int) *mesh.Mesh {
	t.Helper()
	m := mesh.New()
	for i := 0; i < n; i++ {
		require.NoError(t, m.AddVertex(i, r3.Vec{X: float64(i)}))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, m.AddEdge(i, i+1))
	}
	return m
}

// seed returns a buffer over rows, where rows[v] is the vector of vertex v.
func seed(t *testing.T, rows ...weights.WeightVector) *weights.Buffer {
	t.Helper()
	snap := make(map[int]weights.WeightVector, len(rows))
	for v, w := range rows {
		snap[v] = w
	}
	buf, err := weights.NewBuffer(len(rows[0]), snap)
	require.NoError(t, err)
	return buf
}

func run(t *testing.T, spec kernel.Spec, iterations int, m *mesh.Mesh, buf *weights.Buffer, targets ...int) *smoother.Result {
	t.Helper()
	var opts []adjacency.Option
	if spec.NeedsSecondOrder() {
		opts = append(opts, adjacency.WithSecondOrder())
	}
	view, err := adjacency.Expand(m, targets, opts...)
	require.NoError(t, err)
	s, err := smoother.New(spec, iterations, view, smoother.WithPositions(m))
	require.NoError(t, err)
	res, err := s.Run(buf)
	require.NoError(t, err)
	return res
}

func TestRun_ZeroIterationsIsIdentity(t *testing.T) {
	m := chain(t, 3)
	buf := seed(t, weights.WeightVector{1, 0}, weights.WeightVector{0.2, 0.8}, weights.WeightVector{0, 1})

	for _, k := range []kernel.Kind{kernel.Laplacian, kernel.RBF, kernel.Relax} {
		res := run(t, kernel.DefaultSpec(k), 0, m, buf, 1)
		assert.Equal(t, 0, res.Rounds)
		assert.Equal(t, []weights.WeightVector{{0.2, 0.8}}, res.Vectors, k.String())
	}
}

func TestRun_RoundBarrier(t *testing.T) {
	m := chain(t, 4)
	buf := seed(t,
		weights.WeightVector{1, 0},
		weights.WeightVector{1, 0},
		weights.WeightVector{0, 1},
		weights.WeightVector{0, 1},
	)

	res := run(t, kernel.DefaultSpec(kernel.Laplacian), 1, m, buf, 1, 2)
	// Both targets read round-0 values: neither sees the other's update.
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, res.Vectors[0], eps)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, res.Vectors[1], eps)
	assert.Equal(t, weights.WeightVector{1, 0}, buf.Get(1), "single round commits nothing")

	res = run(t, kernel.DefaultSpec(kernel.Laplacian), 2, m, buf, 1, 2)
	assert.Equal(t, 2, res.Rounds)
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, res.Vectors[0], eps)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, res.Vectors[1], eps)
}

func TestRun_FrontierPinned(t *testing.T) {
	m := chain(t, 5)
	frontier0 := weights.WeightVector{0.1, 0.9}
	frontier4 := weights.WeightVector{0.7, 0.3}
	buf := seed(t,
		frontier0,
		weights.WeightVector{1, 0},
		weights.WeightVector{0, 1},
		weights.WeightVector{1, 0},
		frontier4,
	)

	for _, k := range []kernel.Kind{kernel.Laplacian, kernel.RBF, kernel.Relax} {
		for _, n := range []int{1, 3, 10} {
			_ = run(t, kernel.DefaultSpec(k), n, m, buf, 1, 2, 3)
			for v, want := range map[int]weights.WeightVector{0: frontier0, 4: frontier4} {
				got := buf.Get(v)
				for j := range want {
					assert.Equal(t, math.Float64bits(want[j]), math.Float64bits(got[j]),
						"%s n=%d vertex %d influence %d", k, n, v, j)
				}
			}
		}
	}
}

func TestRun_BiharmonicFrontierPinned(t *testing.T) {
	m := chain(t, 5)
	buf := seed(t,
		weights.WeightVector{1, 0},
		weights.WeightVector{1, 0},
		weights.WeightVector{0, 1},
		weights.WeightVector{0, 1},
		weights.WeightVector{0, 1},
	)
	res := run(t, kernel.DefaultSpec(kernel.Biharmonic), 4, m, buf, 2)
	assert.Equal(t, weights.WeightVector{1, 0}, buf.Get(0))
	assert.Equal(t, weights.WeightVector{0, 1}, buf.Get(4))
	// 1-ring {1,3} is pinned, 2-ring {0,4} is pinned: every round is the same.
	assert.InDeltaSlice(t, []float64{0.75*0.5 + 0.25*0.5, 0.75*0.5 + 0.25*0.5}, res.Vectors[0], eps)
}

func TestRun_SingleTargetLaplacianIsStable(t *testing.T) {
	m := chain(t, 3)
	buf := seed(t, weights.WeightVector{1, 0}, weights.WeightVector{0.9, 0.1}, weights.WeightVector{0, 1})

	one := run(t, kernel.DefaultSpec(kernel.Laplacian), 1, m, buf, 1)
	buf = seed(t, weights.WeightVector{1, 0}, weights.WeightVector{0.9, 0.1}, weights.WeightVector{0, 1})
	many := run(t, kernel.DefaultSpec(kernel.Laplacian), 7, m, buf, 1)
	assert.Equal(t, one.Vectors, many.Vectors)
}

func TestRun_RelaxConverges(t *testing.T) {
	m := chain(t, 3)
	buf := seed(t, weights.WeightVector{1, 0}, weights.WeightVector{0.2, 0.8}, weights.WeightVector{0, 1})

	res := run(t, kernel.Spec{Kind: kernel.Relax, Relax: kernel.RelaxParams{Factor: 0.5}}, 2, m, buf, 1)
	// round 1: 0.5·[0.2,0.8] + 0.5·[0.5,0.5] = [0.35,0.65]
	// round 2: 0.5·[0.35,0.65] + 0.5·[0.5,0.5] = [0.425,0.575]
	assert.InDeltaSlice(t, []float64{0.425, 0.575}, res.Vectors[0], eps)
}

func TestRun_RBFStallKeepsPreviousValue(t *testing.T) {
	// Linear RBF with unit spacing gives every edge weight max(1-1, 0) = 0.
	m := chain(t, 3)
	buf := seed(t, weights.WeightVector{1, 0}, weights.WeightVector{0.2, 0.8}, weights.WeightVector{0, 1})

	spec := kernel.Spec{Kind: kernel.RBF, RBF: kernel.RBFParams{Func: kernel.Linear}}
	res := run(t, spec, 3, m, buf, 1)
	assert.Equal(t, []weights.WeightVector{{0.2, 0.8}}, res.Vectors)
	assert.Equal(t, 3, res.Stalled)
}

func TestRun_RBFWeighted(t *testing.T) {
	m := mesh.New()
	require.NoError(t, m.AddVertex(0, r3.Vec{}))
	require.NoError(t, m.AddVertex(1, r3.Vec{X: -1}))
	require.NoError(t, m.AddVertex(2, r3.Vec{X: 2}))
	require.NoError(t, m.AddEdge(0, 1))
	require.NoError(t, m.AddEdge(0, 2))
	buf := seed(t, weights.WeightVector{0, 0}, weights.WeightVector{1, 0}, weights.WeightVector{0, 1})

	spec := kernel.Spec{Kind: kernel.RBF, RBF: kernel.RBFParams{Func: kernel.InverseDistance, Power: 1}}
	res := run(t, spec, 1, m, buf, 0)
	// w = [1, 0.5]: ([1,0] + 0.5·[0,1]) / 1.5
	assert.InDeltaSlice(t, []float64{2.0 / 3.0, 1.0 / 3.0}, res.Vectors[0], eps)
}

func TestNew_Errors(t *testing.T) {
	m := chain(t, 3)
	view, err := adjacency.Expand(m, []int{1})
	require.NoError(t, err)

	_, err = smoother.New(kernel.DefaultSpec(kernel.Laplacian), -1, view)
	assert.ErrorIs(t, err, smoother.ErrNegativeIterations)
	assert.ErrorIs(t, err, weights.ErrInvalidParameter)

	_, err = smoother.New(kernel.DefaultSpec(kernel.Laplacian), 1, nil)
	assert.ErrorIs(t, err, smoother.ErrViewNil)

	bad := kernel.Spec{Kind: kernel.Biharmonic, Biharmonic: kernel.BiharmonicParams{FirstOrder: 0.6, SecondOrder: 0.6}}
	_, err = smoother.New(bad, 1, view)
	assert.ErrorIs(t, err, weights.ErrInvalidParameter)

	_, err = smoother.New(kernel.DefaultSpec(kernel.Biharmonic), 1, view)
	assert.ErrorIs(t, err, smoother.ErrNoSecondOrder)

	_, err = smoother.New(kernel.DefaultSpec(kernel.RBF), 1, view)
	assert.ErrorIs(t, err, smoother.ErrNoPositions)

	_, err = smoother.New(kernel.DefaultSpec(kernel.RBF), 1, view, smoother.WithPositions(failingPositions{}))
	assert.ErrorIs(t, err, smoother.ErrProvider)

	s, err := smoother.New(kernel.DefaultSpec(kernel.RBF), 1, view, smoother.WithPositions(m))
	require.NoError(t, err)
	assert.Len(t, s.EdgeWeights(0), 2)
	assert.Equal(t, 1, s.Iterations())
}

func TestRun_MissingWorkingVertex(t *testing.T) {
	m := chain(t, 3)
	view, err := adjacency.Expand(m, []int{1})
	require.NoError(t, err)
	s, err := smoother.New(kernel.DefaultSpec(kernel.Laplacian), 1, view)
	require.NoError(t, err)
	assert.Nil(t, s.EdgeWeights(0))

	buf := seed(t, weights.WeightVector{1, 0}, weights.WeightVector{0, 1})
	_, err = s.Run(buf)
	var ve *weights.VertexError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 2, ve.Vertex)
}

type failingPositions struct{}

func (failingPositions) Positions([]int) (map[int]r3.Vec, error) {
	return nil, errors.New("no geometry")
}
