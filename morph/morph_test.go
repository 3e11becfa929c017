package morph

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a mask from rows of '#' (set) and '.' (unset).
func maskFromRows(rows ...string) *Mask {
	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			m.Set(x, y, ch == '#')
		}
	}
	return m
}

func maskRows(m *Mask) []string {
	rows := make([]string, m.Height())
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestMaskBasics(t *testing.T) {
	m := NewMask(4, 3)
	assert.Equal(t, 0, m.Count())
	m.Set(1, 2, true)
	m.Set(3, 0, true)
	m.Set(9, 9, true)
	assert.True(t, m.Get(1, 2))
	assert.False(t, m.Get(2, 1))
	assert.False(t, m.Get(-1, 0))
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, []image.Point{{3, 0}, {1, 2}}, m.Points())
}

func TestThresholdInv(t *testing.T) {
	pic := image.NewGray(image.Rect(0, 0, 3, 1))
	pic.Pix = []uint8{0, 10, 255}
	m := ThresholdInv(pic, 10)
	assert.Equal(t, []string{"##."}, maskRows(m))

	// Images not anchored at the origin are shifted.
	sub := pic.SubImage(image.Rect(1, 0, 3, 1)).(*image.Gray)
	assert.Equal(t, []string{"#."}, maskRows(ThresholdInv(sub, 10)))
}

func TestDilate(t *testing.T) {
	m := maskFromRows(
		".....",
		".....",
		"..#..",
		".....",
		"#....",
	)
	want := []string{
		".....",
		".###.",
		".###.",
		"####.",
		"##...",
	}
	assert.Equal(t, want, maskRows(Dilate(m)))
}

func TestErode(t *testing.T) {
	m := maskFromRows(
		"#####",
		"####.",
		"#####",
		".####",
		"#####",
	)
	// The border doesn't erode, so only the holes' neighborhoods clear.
	want := []string{
		"###..",
		"###..",
		"..#..",
		"..###",
		"..###",
	}
	assert.Equal(t, want, maskRows(Erode(m)))
}

func TestSubtract(t *testing.T) {
	a := maskFromRows("###", "###")
	b := maskFromRows("#.#", "...")
	d, e := Subtract(a, b)
	require.NoError(t, e)
	assert.Equal(t, []string{".#.", "###"}, maskRows(d))

	_, e = Subtract(a, NewMask(2, 2))
	require.ErrorIs(t, e, ErrSizeMismatch)
}

func TestLabel(t *testing.T) {
	m := maskFromRows(
		"##..#",
		"....#",
		"..#..",
		".#...",
		"#....",
	)
	labels := Label(m)
	// The diagonal run touches corners only, which still joins it.
	require.Equal(t, 3, labels.Count)
	assert.Equal(t, 1, labels.At(0, 0))
	assert.Equal(t, 1, labels.At(1, 0))
	assert.Equal(t, 2, labels.At(4, 0))
	assert.Equal(t, 2, labels.At(4, 1))
	assert.Equal(t, 3, labels.At(2, 2))
	assert.Equal(t, 3, labels.At(0, 4))
	assert.Equal(t, 0, labels.At(4, 4))
	assert.Equal(t, 0, labels.At(2, 0))
	assert.Equal(t, 0, labels.At(-1, 0))

	region := labels.Region(3)
	assert.Equal(t, 3, region.Count())
	assert.Equal(t, 0, labels.Region(0).Count())
}
