package maze

import (
	"fmt"
)

// One of the four directions in which a cell can be joined to its neighbor.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// All directions, in the order the generator attempts them.
var allDirections = [4]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Unknown direction: %d", uint8(d))
}

// A logical maze cell, addressed by row and column in cell units.
type Cell struct {
	Row int
	Col int
}

// A position in the maze bitmap, addressed by row and column in pixels.
type Pixel struct {
	Row int
	Col int
}

// Returns the cell adjacent to c in the given direction. The returned cell may
// be out of bounds.
func (c Cell) Neighbor(d Direction) Cell {
	switch d {
	case Left:
		return Cell{c.Row, c.Col - 1}
	case Right:
		return Cell{c.Row, c.Col + 1}
	case Up:
		return Cell{c.Row - 1, c.Col}
	case Down:
		return Cell{c.Row + 1, c.Col}
	}
	panic("Bad direction.")
}

// Returns the bitmap pixel at the center of the given cell.
func CellToPixel(c Cell) Pixel {
	return Pixel{
		Row: 2*c.Row + 1,
		Col: 2*c.Col + 1,
	}
}

// Returns the wall pixel separating two cells. The second return value is
// false if a and b are not 4-adjacent, in which case there is no such pixel.
func WallPixelBetween(a, b Cell) (Pixel, bool) {
	rowDiff := a.Row - b.Row
	colDiff := a.Col - b.Col
	if rowDiff < 0 {
		rowDiff = -rowDiff
	}
	if colDiff < 0 {
		colDiff = -colDiff
	}
	if rowDiff+colDiff != 1 {
		return Pixel{}, false
	}
	pa := CellToPixel(a)
	pb := CellToPixel(b)
	return Pixel{
		Row: (pa.Row + pb.Row) / 2,
		Col: (pa.Col + pb.Col) / 2,
	}, true
}

// Returns true if (r, c) lies within a rows x cols grid.
func InBounds(r, c, rows, cols int) bool {
	return (r >= 0) && (r < rows) && (c >= 0) && (c < cols)
}

// The logical cell lattice for a bitmap of a given size.
type grid struct {
	rows int
	cols int
}

// Returns the cell lattice that fits in a size x size bitmap. The size must
// already have been validated.
func gridForSize(size int) grid {
	n := (size - 1) / 2
	return grid{rows: n, cols: n}
}

func (g grid) cellCount() int {
	return g.rows * g.cols
}

func (g grid) contains(c Cell) bool {
	return InBounds(c.Row, c.Col, g.rows, g.cols)
}

// Returns the partition index of the given cell.
func (g grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// The inverse of index.
func (g grid) cellAt(index int) Cell {
	return Cell{
		Row: index / g.cols,
		Col: index % g.cols,
	}
}

// Returns every cell in the grid, in row-major order.
func (g grid) cells() []Cell {
	toReturn := make([]Cell, 0, g.cellCount())
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			toReturn = append(toReturn, Cell{row, col})
		}
	}
	return toReturn
}
