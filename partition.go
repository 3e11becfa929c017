package maze

import (
	"github.com/gomlx/exceptions"
)

// Partition is a disjoint-set forest over the integer ids [0, capacity). Each
// registered id belongs to exactly one set, identified by the id of its
// representative.
//
// Sets live in flat parent/size arrays, so merging never frees anything: the
// absorbed representative simply stops being a root. When two sets of equal
// size are joined, the one whose representative has the smaller id survives.
//
// Using an id that was never registered with MakeSet is a programming error
// and panics.
type Partition struct {
	// parent[i] is i for representatives, -1 for unregistered ids.
	parent []int
	// Only meaningful for representatives: the number of ids in the set.
	size     []int
	setCount int
	members  int
}

// Returns an empty partition able to hold ids in [0, capacity).
func NewPartition(capacity int) *Partition {
	if capacity < 0 {
		exceptions.Panicf("Partition capacity must not be negative (got %d)",
			capacity)
	}
	p := &Partition{
		parent: make([]int, capacity),
		size:   make([]int, capacity),
	}
	for i := range p.parent {
		p.parent[i] = -1
	}
	return p
}

// Creates a new singleton set containing id. The id must be within the
// partition's capacity and not already registered.
func (p *Partition) MakeSet(id int) {
	if (id < 0) || (id >= len(p.parent)) {
		exceptions.Panicf("Partition.MakeSet(%d): id outside of [0, %d)", id,
			len(p.parent))
	}
	if p.parent[id] != -1 {
		exceptions.Panicf("Partition.MakeSet(%d): id is already registered",
			id)
	}
	p.parent[id] = id
	p.size[id] = 1
	p.setCount++
	p.members++
}

func (p *Partition) checkRegistered(op string, id int) {
	if (id < 0) || (id >= len(p.parent)) || (p.parent[id] == -1) {
		exceptions.Panicf("Partition.%s(%d): unknown id", op, id)
	}
}

// Returns the representative of the set currently containing id. Compresses
// the path from id to its root along the way.
func (p *Partition) Find(id int) int {
	p.checkRegistered("Find", id)
	for p.parent[id] != id {
		// Path halving: point every other node at its grandparent.
		p.parent[id] = p.parent[p.parent[id]]
		id = p.parent[id]
	}
	return id
}

// Merges the sets containing a and b. Returns false, changing nothing, if they
// were already in the same set. Otherwise the smaller set is absorbed into the
// larger one and the absorbed representative is retired in the same step.
func (p *Partition) Union(a, b int) bool {
	rootA := p.Find(a)
	rootB := p.Find(b)
	if rootA == rootB {
		return false
	}
	survivor, absorbed := rootA, rootB
	if (p.size[rootB] > p.size[rootA]) ||
		((p.size[rootB] == p.size[rootA]) && (rootB < rootA)) {
		survivor, absorbed = rootB, rootA
	}
	p.parent[absorbed] = survivor
	p.size[survivor] += p.size[absorbed]
	p.size[absorbed] = 0
	p.setCount--
	return true
}

// Returns true if a and b are in the same set.
func (p *Partition) Connected(a, b int) bool {
	return p.Find(a) == p.Find(b)
}

// Returns the number of disjoint sets currently tracked.
func (p *Partition) SetCount() int {
	return p.setCount
}

// Returns the number of registered ids.
func (p *Partition) Len() int {
	return p.members
}

// Returns the number of ids in the set containing id.
func (p *Partition) SetSize(id int) int {
	return p.size[p.Find(id)]
}

// Returns every set, keyed by representative. The members of each set are
// sorted in ascending order. Intended for debugging and invariant checks; it
// visits every registered id.
func (p *Partition) Sets() map[int][]int {
	toReturn := make(map[int][]int, p.setCount)
	for id, parent := range p.parent {
		if parent == -1 {
			continue
		}
		root := p.Find(id)
		// Ids are visited in increasing order, so members stay sorted.
		toReturn[root] = append(toReturn[root], id)
	}
	return toReturn
}
