package maze

import (
	"github.com/pkg/errors"
	"github.com/yalue/bitmap_maze/morph"
	"k8s.io/klog/v2"
)

// Returned by Solve if the bitmap's walls don't split into exactly two
// regions, which is the case for every finished perfect maze.
var ErrNotPerfect = errors.New("bitmap is not a perfect maze with an entry " +
	"and an exit")

// Pixels at or below this intensity are treated as walls when solving.
const wallThreshold = 10

// Returns a mask of the pixels on the path from the maze's entry to its exit.
//
// The entry and exit split the maze's walls into two regions. The path is the
// set of passage pixels that touch both of them, and is isolated by filling
// one region, dilating it, and removing its erosion.
func Solve(b *Bitmap) (*morph.Mask, error) {
	walls := morph.ThresholdInv(b.Gray, wallThreshold)
	labels := morph.Label(walls)
	if labels.Count != 2 {
		return nil, errors.Wrapf(ErrNotPerfect, "found %d wall regions",
			labels.Count)
	}
	klog.V(1).Info("found contours of the two wall regions")
	// The top-left corner is always a wall, so it has a nonzero label.
	region := labels.Region(labels.At(0, 0))
	dilated := morph.Dilate(region)
	eroded := morph.Erode(dilated)
	path, e := morph.Subtract(dilated, eroded)
	if e != nil {
		return nil, errors.WithMessage(e, "failed isolating the path")
	}
	klog.V(1).Infof("solution path covers %d pixels", path.Count())
	return path, nil
}
