package morph

// The 8-connected regions of a mask. Each set pixel carries a label in
// [1, Count]; unset pixels are labelled 0. Labels are assigned in row-major
// order of each region's first pixel.
type Labels struct {
	width  int
	height int
	ids    []int
	Count  int
}

// Labels the 8-connected regions of m with a breadth-first flood fill.
func Label(m *Mask) *Labels {
	toReturn := &Labels{
		width:  m.width,
		height: m.height,
		ids:    make([]int, len(m.bits)),
	}
	var queue []int
	for start, set := range m.bits {
		if !set || (toReturn.ids[start] != 0) {
			continue
		}
		toReturn.Count++
		label := toReturn.Count
		toReturn.ids[start] = label
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			x := queue[qi] % m.width
			y := queue[qi] / m.width
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if !m.Get(nx, ny) {
						continue
					}
					ni := ny*m.width + nx
					if toReturn.ids[ni] != 0 {
						continue
					}
					toReturn.ids[ni] = label
					queue = append(queue, ni)
				}
			}
		}
	}
	return toReturn
}

// Returns the label at (x, y), or 0 if the pixel is unset or out of bounds.
func (l *Labels) At(x, y int) int {
	if (x < 0) || (y < 0) || (x >= l.width) || (y >= l.height) {
		return 0
	}
	return l.ids[y*l.width+x]
}

// Returns a mask containing only the pixels with the given label.
func (l *Labels) Region(label int) *Mask {
	toReturn := NewMask(l.width, l.height)
	if label == 0 {
		return toReturn
	}
	for i, id := range l.ids {
		toReturn.bits[i] = id == label
	}
	return toReturn
}
