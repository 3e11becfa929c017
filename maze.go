// This defines a library for generating perfect mazes as square bitmaps. The
// generated mazes satisfy the Maze interface, which includes go's image.Image
// interface.
package maze

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/yalue/bitmap_maze/morph"
)

// All mazes returned by this library will support this interface. It provides
// the Image interface so the mazes can be saved to files or displayed.
type Maze interface {
	image.Image
	RegenerateFromSeed(seed int64) error
	ShowSolution(show bool) error
	// Returns information about the maze, including where the entry and exit
	// are and debug info such as the last random seed.
	GetInfo() MazeInfo
}

// Returned by GetInfo. Points are in image coordinates. Angles are in
// degrees, counterclockwise from pointing right, and give the direction in
// which a path enters (for the start) or leaves (for the end) the maze.
type MazeInfo struct {
	StartPoint  image.Point
	StartAngle  float32
	EndPoint    image.Point
	EndAngle    float32
	Size        int
	CarvedWalls int
	Seed        int64
	// The time taken by the last generation.
	GenerationTime time.Duration
	// A human-readable summary of the above.
	DebugInfo string
}

// The color used to draw the solution path.
var solutionColor = color.RGBA{
	R: 230,
	G: 20,
	B: 20,
	A: 255,
}

// Satisfies the Maze interface. Wraps a generated bitmap, and optionally its
// solution. Create using NewBitmapMaze or NewBitmapMazeWithSeed.
type BitmapMaze struct {
	size   int
	bitmap *Bitmap
	// Non-nil only while the solution is shown.
	solution *morph.Mask
	// The seed used for the last generation, or 0 if the maze was built from
	// a caller-provided generator.
	randomSeed     int64
	generationTime time.Duration
}

// Generates a maze using the given random number generator.
func NewBitmapMaze(size int, rng *rand.Rand) (*BitmapMaze, error) {
	toReturn := &BitmapMaze{
		size: size,
	}
	e := toReturn.generate(rng)
	if e != nil {
		return nil, e
	}
	return toReturn, nil
}

// Generates a maze. If the given RNG seed is not positive, a new seed will be
// selected based on the current time in nanoseconds.
func NewBitmapMazeWithSeed(size int, seed int64) (*BitmapMaze, error) {
	e := ValidateSize(size)
	if e != nil {
		return nil, e
	}
	toReturn := &BitmapMaze{
		size: size,
	}
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	e = toReturn.RegenerateFromSeed(seed)
	if e != nil {
		return nil, errors.WithMessage(e, "error generating maze")
	}
	return toReturn, nil
}

func (m *BitmapMaze) generate(rng *rand.Rand) error {
	startTime := time.Now()
	b, e := Generate(m.size, rng)
	if e != nil {
		return e
	}
	m.bitmap = b
	m.solution = nil
	m.generationTime = time.Since(startTime)
	return nil
}

// Replaces the maze with a new one generated from the given seed. Any shown
// solution is cleared.
func (m *BitmapMaze) RegenerateFromSeed(seed int64) error {
	e := m.generate(rand.New(rand.NewSource(seed)))
	if e != nil {
		return e
	}
	m.randomSeed = seed
	return nil
}

// Returns the underlying bitmap. Callers must not modify it.
func (m *BitmapMaze) Bitmap() *Bitmap {
	return m.bitmap
}

// Returns the solution path, or nil if it isn't currently shown.
func (m *BitmapMaze) Solution() *morph.Mask {
	return m.solution
}

func (m *BitmapMaze) ShowSolution(show bool) error {
	if !show {
		m.solution = nil
		return nil
	}
	if m.solution != nil {
		return nil
	}
	path, e := Solve(m.bitmap)
	if e != nil {
		return errors.WithMessage(e, "failed to solve maze")
	}
	m.solution = path
	return nil
}

func (m *BitmapMaze) GetInfo() MazeInfo {
	entry := EntryPixel()
	exit := ExitPixel(m.size)
	toReturn := MazeInfo{
		StartPoint:     image.Pt(entry.Col, entry.Row),
		StartAngle:     270,
		EndPoint:       image.Pt(exit.Col, exit.Row),
		EndAngle:       270,
		Size:           m.size,
		CarvedWalls:    m.bitmap.CarvedWalls(),
		Seed:           m.randomSeed,
		GenerationTime: m.generationTime,
	}
	toReturn.DebugInfo = fmt.Sprintf("%dx%d bitmap maze (%d walls removed) "+
		"with random seed %d, generated in %.03f seconds", m.size, m.size,
		toReturn.CarvedWalls, m.randomSeed, m.generationTime.Seconds())
	return toReturn
}

func (m *BitmapMaze) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *BitmapMaze) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.size, m.size)
}

func (m *BitmapMaze) At(x, y int) color.Color {
	if (x < 0) || (y < 0) || (x >= m.size) || (y >= m.size) {
		return color.Transparent
	}
	if (m.solution != nil) && m.solution.Get(x, y) {
		return solutionColor
	}
	return valueColor(m.bitmap.Value(Pixel{Row: y, Col: x}))
}
