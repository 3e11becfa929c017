// Package morph implements the small set of binary image operations needed to
// isolate the solution path of a maze: thresholding, 3x3 dilation and erosion,
// mask subtraction, and labelling of 8-connected regions.
package morph

import (
	"image"

	"github.com/pkg/errors"
)

// Returned when two masks with different dimensions are combined.
var ErrSizeMismatch = errors.New("masks have different dimensions")

// A binary image. Pixels outside of the mask read as unset.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// Returns a new mask with no pixels set.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

func (m *Mask) Width() int {
	return m.width
}

func (m *Mask) Height() int {
	return m.height
}

func (m *Mask) inBounds(x, y int) bool {
	return (x >= 0) && (y >= 0) && (x < m.width) && (y < m.height)
}

// Returns true if the pixel at (x, y) is set.
func (m *Mask) Get(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.bits[y*m.width+x]
}

// Sets or clears the pixel at (x, y). Ignores out-of-bounds pixels.
func (m *Mask) Set(x, y int, v bool) {
	if !m.inBounds(x, y) {
		return
	}
	m.bits[y*m.width+x] = v
}

// Returns the number of set pixels.
func (m *Mask) Count() int {
	count := 0
	for _, b := range m.bits {
		if b {
			count++
		}
	}
	return count
}

// Returns the coordinates of every set pixel, in row-major order.
func (m *Mask) Points() []image.Point {
	var toReturn []image.Point
	for i, b := range m.bits {
		if b {
			toReturn = append(toReturn, image.Pt(i%m.width, i/m.width))
		}
	}
	return toReturn
}

// Returns a mask with the pixels of pic that are at most max set, i.e. an
// inverted binary threshold. The mask covers pic's bounds, shifted so that
// pic.Bounds().Min is at (0, 0).
func ThresholdInv(pic *image.Gray, max uint8) *Mask {
	bounds := pic.Bounds()
	toReturn := NewMask(bounds.Dx(), bounds.Dy())
	for y := 0; y < toReturn.height; y++ {
		for x := 0; x < toReturn.width; x++ {
			v := pic.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y
			toReturn.bits[y*toReturn.width+x] = v <= max
		}
	}
	return toReturn
}

// Returns true if any pixel in the 3x3 neighborhood of (x, y) is set.
func (m *Mask) anyAround(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if m.Get(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// Returns true if every pixel in the 3x3 neighborhood of (x, y) is set.
// Pixels beyond the edge of the mask count as set.
func (m *Mask) allAround(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !m.inBounds(x+dx, y+dy) {
				continue
			}
			if !m.bits[(y+dy)*m.width+x+dx] {
				return false
			}
		}
	}
	return true
}

// Returns m dilated by a 3x3 square.
func Dilate(m *Mask) *Mask {
	toReturn := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			toReturn.bits[y*m.width+x] = m.anyAround(x, y)
		}
	}
	return toReturn
}

// Returns m eroded by a 3x3 square. The mask's border does not erode.
func Erode(m *Mask) *Mask {
	toReturn := NewMask(m.width, m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			toReturn.bits[y*m.width+x] = m.allAround(x, y)
		}
	}
	return toReturn
}

// Returns the pixels set in a but not in b.
func Subtract(a, b *Mask) (*Mask, error) {
	if (a.width != b.width) || (a.height != b.height) {
		return nil, errors.Wrapf(ErrSizeMismatch, "%dx%d minus %dx%d",
			a.width, a.height, b.width, b.height)
	}
	toReturn := NewMask(a.width, a.height)
	for i := range a.bits {
		toReturn.bits[i] = a.bits[i] && !b.bits[i]
	}
	return toReturn, nil
}
