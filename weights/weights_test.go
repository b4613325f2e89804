package weights_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skinrelax/weights"
)

func TestWeightVector_CloneIsIndependent(t *testing.T) {
	w := weights.WeightVector{0.25, 0.75}
	c := w.Clone()
	c[0] = 1
	assert.Equal(t, 0.25, w[0])
	assert.Nil(t, weights.WeightVector(nil).Clone())
}

func TestWeightVector_SumMasked(t *testing.T) {
	w := weights.WeightVector{0.1, 0.2, 0.3, 0.4}
	mask := weights.LockMask{true, false, false, true}

	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
	unlocked, err := w.SumMasked(mask, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, unlocked, 1e-12)
	locked, err := w.SumMasked(mask, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, locked, 1e-12)
}

func TestWeightVector_SumMaskedLengthMismatch(t *testing.T) {
	w := weights.WeightVector{0.1, 0.2}

	var total float64
	var err error
	assert.NotPanics(t, func() { total, err = w.SumMasked(weights.LockMask{true}, false) })
	assert.ErrorIs(t, err, weights.ErrInvalidVertex)
	assert.Zero(t, total)
}

func TestNewLockMask_QueriesEachInfluenceOnce(t *testing.T) {
	calls := map[int]int{}
	p := lockFunc(func(i int) bool {
		calls[i]++
		return i%2 == 0
	})
	mask := weights.NewLockMask(4, p)

	assert.Equal(t, weights.LockMask{true, false, true, false}, mask)
	assert.Equal(t, 2, mask.Unlocked())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1, calls[i], "influence %d", i)
	}
	assert.Equal(t, 3, weights.NewLockMask(3, nil).Unlocked())
}

func TestLocks_OutOfRangeIsUnlocked(t *testing.T) {
	l := weights.Locks{true}
	assert.True(t, l.IsLocked(0))
	assert.False(t, l.IsLocked(1))
	assert.False(t, l.IsLocked(-1))
}

func TestNewBuffer_Errors(t *testing.T) {
	_, err := weights.NewBuffer(0, nil)
	assert.ErrorIs(t, err, weights.ErrInvalidParameter)

	_, err = weights.NewBuffer(2, map[int]weights.WeightVector{7: {1}})
	require.ErrorIs(t, err, weights.ErrInvalidVertex)
	var ve *weights.VertexError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 7, ve.Vertex)
}

func TestBuffer_SeedIsDeepCopy(t *testing.T) {
	snap := map[int]weights.WeightVector{0: {1, 0}, 1: {0, 1}}
	b, err := weights.NewBuffer(2, snap)
	require.NoError(t, err)

	snap[0][0] = 42
	assert.Equal(t, weights.WeightVector{1, 0}, b.Get(0))
	assert.Equal(t, []int{0, 1}, b.Vertices())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Influences())
	assert.Nil(t, b.Get(5))
}

func TestBuffer_CommitIsAllOrNothing(t *testing.T) {
	b, err := weights.NewBuffer(2, map[int]weights.WeightVector{0: {1, 0}, 1: {0, 1}})
	require.NoError(t, err)

	err = b.Commit([]int{0, 9}, []weights.WeightVector{{0.5, 0.5}, {0.5, 0.5}})
	assert.ErrorIs(t, err, weights.ErrInvalidVertex)
	assert.Equal(t, weights.WeightVector{1, 0}, b.Get(0), "no partial commit")

	err = b.Commit([]int{0}, []weights.WeightVector{{0.5}})
	assert.ErrorIs(t, err, weights.ErrInvalidVertex)

	err = b.Commit([]int{0}, nil)
	assert.ErrorIs(t, err, weights.ErrInvalidVertex)

	src := weights.WeightVector{0.5, 0.5}
	require.NoError(t, b.Commit([]int{0}, []weights.WeightVector{src}))
	src[0] = 9
	assert.Equal(t, weights.WeightVector{0.5, 0.5}, b.Get(0))
}

func TestBuffer_SnapshotAndRequire(t *testing.T) {
	b, err := weights.NewBuffer(1, map[int]weights.WeightVector{3: {1}})
	require.NoError(t, err)

	s, err := b.Snapshot([]int{3})
	require.NoError(t, err)
	s[0][0] = 0
	assert.Equal(t, weights.WeightVector{1}, b.Get(3))

	_, err = b.Snapshot([]int{4})
	assert.ErrorIs(t, err, weights.ErrInvalidVertex)
	assert.NoError(t, b.Require([]int{3}))
	assert.ErrorIs(t, b.Require([]int{3, 4}), weights.ErrInvalidVertex)
}

func TestMemoryStore_ReadWrite(t *testing.T) {
	s, err := weights.NewMemoryStore(2, []weights.WeightVector{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.InfluenceCount())

	got, err := s.Read([]int{1})
	require.NoError(t, err)
	assert.Equal(t, weights.WeightVector{0, 1}, got[1])
	got[1][0] = 5
	v, ok := s.Vector(1)
	require.True(t, ok)
	assert.Equal(t, weights.WeightVector{0, 1}, v)

	_, err = s.Read([]int{2})
	assert.ErrorIs(t, err, weights.ErrInvalidVertex)

	assert.ErrorIs(t, s.Write(map[int]weights.WeightVector{0: {1}}), weights.ErrInvalidVertex)
	assert.Equal(t, 0, s.Writes())

	require.NoError(t, s.Write(map[int]weights.WeightVector{0: {0.5, 0.5}}))
	v, _ = s.Vector(0)
	assert.Equal(t, weights.WeightVector{0.5, 0.5}, v)
	assert.Equal(t, 2, s.Reads())
	assert.Equal(t, 1, s.Writes())
}

func TestNewMemoryStore_Errors(t *testing.T) {
	_, err := weights.NewMemoryStore(0, nil)
	assert.ErrorIs(t, err, weights.ErrInvalidParameter)
	_, err = weights.NewMemoryStore(2, []weights.WeightVector{{1, 0, 0}})
	assert.ErrorIs(t, err, weights.ErrInvalidVertex)
}

func TestErrorMessages(t *testing.T) {
	ve := weights.NewVertexError(3, "has %d neighbors", 0)
	assert.Equal(t, "weights: invalid vertex: vertex 3: has 0 neighbors", ve.Error())

	pe := weights.NewParameterError("blend_weights", 0.0, "must be in (0, 1]")
	assert.Equal(t, "weights: invalid parameter: blend_weights=0: must be in (0, 1]", pe.Error())
	assert.ErrorIs(t, pe, weights.ErrInvalidParameter)
}

type lockFunc func(int) bool

func (f lockFunc) IsLocked(i int) bool { return f(i) }
