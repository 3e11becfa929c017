package maze

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFullPartition(n int) *Partition {
	p := NewPartition(n)
	for i := 0; i < n; i++ {
		p.MakeSet(i)
	}
	return p
}

// Checks that the sets cover [0, n) exactly once and agree with SetCount and
// SetSize.
func requirePartitionInvariants(t *testing.T, p *Partition, n int) {
	sets := p.Sets()
	require.Equal(t, p.SetCount(), len(sets))
	seen := make([]bool, n)
	total := 0
	for root, members := range sets {
		require.Equal(t, root, p.Find(root))
		require.Equal(t, len(members), p.SetSize(root))
		for _, id := range members {
			require.Falsef(t, seen[id], "id %d is in more than one set", id)
			seen[id] = true
		}
		total += len(members)
	}
	require.Equal(t, n, total)
}

func TestPartitionMakeSet(t *testing.T) {
	p := newFullPartition(5)
	assert.Equal(t, 5, p.SetCount())
	assert.Equal(t, 5, p.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, p.Find(i))
		assert.Equal(t, 1, p.SetSize(i))
	}
	requirePartitionInvariants(t, p, 5)
}

func TestPartitionUnion(t *testing.T) {
	p := newFullPartition(6)
	require.True(t, p.Union(0, 1))
	require.Equal(t, 5, p.SetCount())
	require.True(t, p.Connected(0, 1))
	require.False(t, p.Connected(0, 2))

	require.True(t, p.Union(2, 3))
	require.True(t, p.Union(3, 0))
	require.Equal(t, 3, p.SetCount())
	assert.Equal(t, 4, p.SetSize(2))
	assert.True(t, p.Connected(1, 2))
	requirePartitionInvariants(t, p, 6)

	require.True(t, p.Union(4, 5))
	require.True(t, p.Union(5, 1))
	assert.Equal(t, 1, p.SetCount())
	assert.Equal(t, 6, p.SetSize(4))
	requirePartitionInvariants(t, p, 6)
}

func TestPartitionUnionIsIdempotent(t *testing.T) {
	p := newFullPartition(4)
	require.True(t, p.Union(1, 2))
	count := p.SetCount()
	assert.False(t, p.Union(1, 2))
	assert.False(t, p.Union(2, 1))
	assert.False(t, p.Union(3, 3))
	assert.Equal(t, count, p.SetCount())
	requirePartitionInvariants(t, p, 4)
}

func TestPartitionTieBreak(t *testing.T) {
	p := newFullPartition(6)
	// Equal sizes: the smaller representative survives.
	p.Union(3, 2)
	assert.Equal(t, 2, p.Find(3))
	p.Union(5, 4)
	assert.Equal(t, 4, p.Find(5))
	// Different sizes: the larger set survives.
	p.Union(0, 2)
	assert.Equal(t, 2, p.Find(0))
	p.Union(4, 2)
	assert.Equal(t, 2, p.Find(5))
	p.Union(1, 5)
	assert.Equal(t, 2, p.Find(1))
	for i := 0; i < 6; i++ {
		assert.Equal(t, 2, p.Find(i))
	}
}

func TestPartitionLongChain(t *testing.T) {
	n := 1000
	p := newFullPartition(n)
	for i := 1; i < n; i++ {
		require.True(t, p.Union(i-1, i))
	}
	require.Equal(t, 1, p.SetCount())
	root := p.Find(0)
	for i := 0; i < n; i++ {
		require.Equal(t, root, p.Find(i))
	}
	requirePartitionInvariants(t, p, n)
}

func TestPartitionContractViolations(t *testing.T) {
	p := NewPartition(3)
	p.MakeSet(0)
	p.MakeSet(1)

	// Id 2 is within capacity but was never registered.
	assert.Panics(t, func() { p.Find(2) })
	assert.Panics(t, func() { p.Union(0, 2) })
	assert.Panics(t, func() { p.Find(-1) })
	assert.Panics(t, func() { p.Find(3) })
	assert.Panics(t, func() { p.MakeSet(1) })
	assert.Panics(t, func() { p.MakeSet(3) })
	assert.Panics(t, func() { NewPartition(-1) })

	e := exceptions.TryCatch[error](func() { p.Union(7, 0) })
	require.Error(t, e)
	assert.Contains(t, e.Error(), "unknown id")

	// A failed call leaves the partition untouched.
	assert.Equal(t, 2, p.SetCount())
	assert.Equal(t, 2, p.Len())
}
