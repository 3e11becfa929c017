package maze

import (
	"math/rand"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Returned by Generate if no random number generator is provided.
var ErrNilRandom = errors.New("a random number generator is required")

// Holds the state used while carving a spanning tree into a bitmap. The
// bitmap and partition are modified together, and only by this type, until
// generation completes.
type spanningTree struct {
	grid      grid
	bitmap    *Bitmap
	partition *Partition
	// The number of walls removed so far.
	carved int
	// If non-nil, called after every carved wall. Used by tests to check
	// invariants partway through generation.
	onCarve func(p *Partition)
}

func newSpanningTree(b *Bitmap) *spanningTree {
	g := gridForSize(b.Size())
	partition := NewPartition(g.cellCount())
	for i := 0; i < g.cellCount(); i++ {
		partition.MakeSet(i)
	}
	return &spanningTree{
		grid:      g,
		bitmap:    b,
		partition: partition,
	}
}

// Returns true once every cell has been joined into a single set.
func (t *spanningTree) done() bool {
	return t.partition.SetCount() <= 1
}

// Removes the wall between c and its neighbor in direction d, unless the
// neighbor is out of bounds or already reachable from c. Returns true if a
// wall was removed.
func (t *spanningTree) tryCarve(c Cell, d Direction) bool {
	next := c.Neighbor(d)
	if !t.grid.contains(next) {
		if klog.V(3).Enabled() {
			klog.Infof("ignored neighbor (%d, %d) of (%d, %d)", next.Row,
				next.Col, c.Row, c.Col)
		}
		return false
	}
	idx := t.grid.index(c)
	nextIdx := t.grid.index(next)
	if t.partition.Connected(idx, nextIdx) {
		if klog.V(3).Enabled() {
			klog.Infof("already processed %d and %d", idx, nextIdx)
		}
		return false
	}
	wall, _ := WallPixelBetween(c, next)
	t.bitmap.set(wall, Passage)
	t.partition.Union(idx, nextIdx)
	t.carved++
	klog.V(2).Infof("write to pixel (%d, %d) of %d and %d", wall.Row,
		wall.Col, idx, nextIdx)
	if t.onCarve != nil {
		t.onCarve(t.partition)
	}
	return true
}

// Visits every cell exactly once, in the given order, trying all four
// directions at each. This considers every pair of adjacent cells, so the
// partition always ends as a single set.
func (t *spanningTree) run(order []Cell) {
	for _, c := range order {
		for _, d := range allDirections {
			t.tryCarve(c, d)
		}
		if t.done() {
			break
		}
	}
	if !t.done() {
		exceptions.Panicf("Internal error: %d disjoint sets remain after "+
			"visiting every cell", t.partition.SetCount())
	}
}

// Returns every cell in the grid in a random order determined by rng.
func shuffledCells(g grid, rng *rand.Rand) []Cell {
	toReturn := g.cells()
	rng.Shuffle(len(toReturn), func(i, j int) {
		toReturn[i], toReturn[j] = toReturn[j], toReturn[i]
	})
	return toReturn
}

// Opens the center pixel of every cell. Walls between cells are left intact.
func openCells(b *Bitmap) {
	for row := 1; row < b.Size(); row += 2 {
		for col := 1; col < b.Size(); col += 2 {
			b.set(Pixel{row, col}, Passage)
		}
	}
}

// Returns the boundary pixel where the maze is entered.
func EntryPixel() Pixel {
	return Pixel{0, 1}
}

// Returns the boundary pixel where the maze is exited.
func ExitPixel(size int) Pixel {
	return Pixel{size - 1, size - 2}
}

// Generates a perfect maze as a size x size bitmap. The size must be odd and
// at least 3; otherwise this returns an error wrapping ErrInvalidSize and no
// bitmap. The order in which cells are joined is drawn from rng, so a given
// seed always produces the same maze.
func Generate(size int, rng *rand.Rand) (*Bitmap, error) {
	e := ValidateSize(size)
	if e != nil {
		return nil, e
	}
	if rng == nil {
		return nil, ErrNilRandom
	}
	b := newBitmap(size)
	klog.V(1).Infof("initialize %dx%d maze matrix", size, size)

	openCells(b)
	klog.V(1).Info("scan maze matrix")

	tree := newSpanningTree(b)
	tree.run(shuffledCells(tree.grid, rng))
	klog.V(1).Infof("finish maze matrix generation (%d walls removed)",
		tree.carved)

	b.set(EntryPixel(), Passage)
	b.set(ExitPixel(size), Passage)
	return b, nil
}
