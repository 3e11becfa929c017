package maze

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// Pixel intensities used in a maze bitmap.
const (
	Wall    uint8 = 0
	Passage uint8 = 255
)

// Returned (wrapped) when a bitmap size can't hold a cell/wall lattice.
var ErrInvalidSize = errors.New("maze size must be an odd number of at " +
	"least 3")

// A square, single-channel maze bitmap. Pixels are addressed by (row, col),
// which is (y, x) in image coordinates. The embedded *image.Gray allows the
// bitmap to be drawn or encoded directly.
type Bitmap struct {
	*image.Gray
	size int
}

// Returns a nil error if size is a valid bitmap side length.
func ValidateSize(size int) error {
	if size < 3 {
		return errors.Wrapf(ErrInvalidSize, "size must be at least 3 "+
			"(received %d)", size)
	}
	if (size & 1) == 0 {
		return errors.Wrapf(ErrInvalidSize, "size must be odd (received %d)",
			size)
	}
	return nil
}

// Allocates a size x size bitmap in which every pixel is a Wall.
func newBitmap(size int) *Bitmap {
	// Wall is 0, so the zero-filled image is already all walls.
	return &Bitmap{
		Gray: image.NewGray(image.Rect(0, 0, size, size)),
		size: size,
	}
}

// Returns the side length of the bitmap, in pixels.
func (b *Bitmap) Size() int {
	return b.size
}

// Returns the intensity at the given pixel. Out-of-bounds pixels read as Wall.
func (b *Bitmap) Value(p Pixel) uint8 {
	if !InBounds(p.Row, p.Col, b.size, b.size) {
		return Wall
	}
	return b.Pix[b.PixOffset(p.Col, p.Row)]
}

// Returns true if the pixel is open.
func (b *Bitmap) IsPassage(p Pixel) bool {
	return b.Value(p) == Passage
}

func (b *Bitmap) set(p Pixel, v uint8) {
	b.Pix[b.PixOffset(p.Col, p.Row)] = v
}

// Returns the number of wall pixels between cells that have been carved open,
// i.e. the number of spanning-tree edges. Cell centers and the boundary
// openings are not counted.
func (b *Bitmap) CarvedWalls() int {
	count := 0
	for row := 1; row < b.size-1; row++ {
		for col := 1; col < b.size-1; col++ {
			// Wall pixels between cells have exactly one odd coordinate.
			if ((row ^ col) & 1) == 0 {
				continue
			}
			if b.Pix[b.PixOffset(col, row)] == Passage {
				count++
			}
		}
	}
	return count
}

// Returns an independent copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	toReturn := newBitmap(b.size)
	copy(toReturn.Pix, b.Pix)
	return toReturn
}

// Converts a bitmap intensity into the color used when rendering.
func valueColor(v uint8) color.Color {
	if v == Wall {
		return color.Black
	}
	return color.White
}
