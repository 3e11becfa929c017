// This defines a basic executable for generating an image of a maze.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	maze "github.com/yalue/bitmap_maze"
	"github.com/yalue/bitmap_maze/internal/ui/cli"
	"github.com/yalue/image_utils"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

const arrowLength = 16

// Mazes bigger than this print a warning before logging every carved wall.
const verboseSizeWarning = 160

// Returns 0 = left, 1 = up, 2 = right, and 3 = down. The given angle must be
// between 0 and 360, if it isn't this will simply return 2.
func angleToArrowDir(angle float32) int {
	switch {
	case (angle > 45) && (angle <= 135):
		return 1
	case (angle > 135) && (angle <= 225):
		return 0
	case (angle > 225) && (angle < 315):
		return 3
	}
	return 2
}

func getArrowForAngle(angle float32, arrowColor color.Color) image.Image {
	switch angleToArrowDir(angle) {
	case 0:
		return image_utils.LeftArrow(arrowColor)
	case 1:
		return image_utils.UpArrow(arrowColor)
	case 3:
		return image_utils.DownArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns an arrow pointing in the direction of the given angle, outlined in
// arrowColor with a white center.
func getOutlinedArrow(angle float32, arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(getArrowForAngle(angle, arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(getArrowForAngle(angle, color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// If the tip of the arrow is supposed to be at the given pt (or the tail of
// the arrow, if "away" is true), this returns the top-left where the square
// image returned by getOutlinedArrow should be drawn.
func getArrowTopLeft(pt image.Point, angle float32, away bool) image.Point {
	halfLength := arrowLength / 2
	switch angleToArrowDir(angle) {
	case 0:
		// Pointing left
		if away {
			return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
		}
		return image.Pt(pt.X+1, pt.Y-halfLength)
	case 1:
		// Pointing up
		if away {
			return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
		}
		return image.Pt(pt.X-halfLength, pt.Y+1)
	case 3:
		// Pointing down
		if away {
			return image.Pt(pt.X-halfLength, pt.Y+1)
		}
		return image.Pt(pt.X-halfLength, pt.Y-arrowLength-1)
	}
	// Pointing right
	if away {
		return image.Pt(pt.X+1, pt.Y-halfLength)
	}
	return image.Pt(pt.X-arrowLength-1, pt.Y-halfLength)
}

// Returns the integer factor by which a size x size maze is enlarged to come
// as close as possible to imageSize pixels across without exceeding it. Never
// returns less than 1.
func scaleFactor(size, imageSize int) int {
	if size <= 0 {
		return 1
	}
	scale := imageSize / size
	if scale < 1 {
		return 1
	}
	return scale
}

// Enlarges the maze by an integer factor, keeping pixels sharp.
func scaleMaze(m image.Image, scale int) *image.RGBA {
	bounds := m.Bounds()
	toReturn := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale,
		bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(toReturn, toReturn.Bounds(), m, bounds,
		draw.Src, nil)
	return toReturn
}

// Returns the point on the scaled image at the middle of the given edge of the
// maze pixel at p. The edge is the top one unless bottom is set.
func scaledEdgePoint(p image.Point, scale int, bottom bool) image.Point {
	toReturn := image.Pt(p.X*scale+scale/2, p.Y*scale)
	if bottom {
		toReturn.Y += scale
	}
	return toReturn
}

// Adds "decorations" to the scaled maze: a white border and start and end
// arrows. Rasterizes the result to an image.RGBA.
func drawMazeDecorations(mazePic image.Image, info maze.MazeInfo,
	scale int) (*image.RGBA, error) {
	border := arrowLength + 2
	offset := image.Pt(border, border)
	decorated := image_utils.NewCompositeImage()
	e := decorated.AddImage(maze.AddImageBorder(mazePic, border, color.White),
		image.Pt(0, 0))
	if e != nil {
		return nil, errors.Wrap(e, "error setting base maze image")
	}
	blueColor := color.RGBA{100, 120, 255, 255}
	greenColor := color.RGBA{40, 180, 70, 255}

	startArrow := getOutlinedArrow(info.StartAngle, greenColor)
	startPoint := scaledEdgePoint(info.StartPoint, scale, false).Add(offset)
	e = decorated.AddImage(startArrow, getArrowTopLeft(startPoint,
		info.StartAngle, false))
	if e != nil {
		return nil, errors.Wrap(e, "error adding start arrow")
	}

	endArrow := getOutlinedArrow(info.EndAngle, blueColor)
	endPoint := scaledEdgePoint(info.EndPoint, scale, true).Add(offset)
	e = decorated.AddImage(endArrow, getArrowTopLeft(endPoint, info.EndAngle,
		true))
	if e != nil {
		return nil, errors.Wrap(e, "error adding end arrow")
	}
	return image_utils.ToRGBA(decorated), nil
}

// Rasterizes the maze, as it currently looks, into the image that is written
// to a file.
func renderOutput(m maze.Maze, imageSize int, arrows bool) (*image.RGBA,
	error) {
	info := m.GetInfo()
	scale := scaleFactor(info.Size, imageSize)
	scaled := scaleMaze(m, scale)
	if !arrows {
		return scaled, nil
	}
	return drawMazeDecorations(scaled, info, scale)
}

type imageEncoder func(w io.Writer, pic image.Image) error

// Picks an encoder based on the output file's extension.
func encoderFor(filename string) (imageEncoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, pic image.Image) error {
			return jpeg.Encode(w, pic, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	}
	return nil, errors.Errorf("unsupported image format for %q: use .png, "+
		".jpg or .bmp", filename)
}

func writeImage(filename string, pic image.Image) error {
	encode, e := encoderFor(filename)
	if e != nil {
		return e
	}
	f, e := os.Create(filename)
	if e != nil {
		return errors.Wrapf(e, "error creating output file %s", filename)
	}
	e = encode(f, pic)
	if e != nil {
		f.Close()
		return errors.Wrapf(e, "error writing image to %s", filename)
	}
	return errors.Wrapf(f.Close(), "error closing %s", filename)
}

func run() int {
	var size, imageSize int
	var randomSeed int64
	var showSolution, arrows, printMaze, useColor bool
	var outFilename, solvedFilename string
	klog.InitFlags(nil)
	flag.IntVar(&size, "size", -1,
		"The width and height of the maze bitmap, in pixels. Must be odd "+
			"and at least 3.")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use.")
	flag.BoolVar(&showSolution, "show_solution", false,
		"If set, shows the solution of the maze when printing it.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png, .jpg or .bmp file to which the maze will be "+
			"saved.")
	flag.StringVar(&solvedFilename, "solved_output_file", "",
		"The name of the image file to which the solved maze will be saved.")
	flag.IntVar(&imageSize, "image_size", 1024,
		"Saved images are enlarged by a whole factor to at most this many "+
			"pixels across.")
	flag.BoolVar(&arrows, "arrows", false,
		"If set, adds a border and entry and exit arrows to saved images.")
	flag.BoolVar(&printMaze, "print", false,
		"If set, prints the maze on the terminal.")
	flag.BoolVar(&useColor, "color", true,
		"Use colors when printing the maze on the terminal.")
	flag.Parse()
	defer klog.Flush()

	if size == -1 {
		fmt.Fprintf(os.Stderr, "%s: missing argument -size\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Run with -help for more information.")
		return 1
	}
	if e := maze.ValidateSize(size); e != nil {
		klog.Errorf("Invalid -size: %v", e)
		return 1
	}
	if klog.V(2).Enabled() && (size > verboseSizeWarning) {
		if !cli.Confirm("warning: high log levels may cause significant I/O " +
			"pressure and reduce performance. continue?") {
			return 0
		}
	}

	m, e := maze.NewBitmapMazeWithSeed(size, randomSeed)
	if e != nil {
		klog.Errorf("Failed generating maze: %+v", e)
		return 1
	}
	fmt.Printf("Generated %s OK.\n", m.GetInfo().DebugInfo)

	// The unsolved image must be rasterized before the solution is shown.
	outputs := make(map[string]image.Image)
	if outFilename != "" {
		outputs[outFilename] = must.M1(renderOutput(m, imageSize, arrows))
	}
	if showSolution || (solvedFilename != "") {
		fmt.Printf("Finding solution to the maze.\n")
		e = m.ShowSolution(true)
		if e != nil {
			klog.Errorf("Error finding solution: %+v", e)
			return 1
		}
	}
	if solvedFilename != "" {
		outputs[solvedFilename] = must.M1(renderOutput(m, imageSize, arrows))
	}
	if printMaze {
		if !showSolution {
			must.M(m.ShowSolution(false))
		}
		cli.PrintMaze(m, useColor)
	}

	var g errgroup.Group
	for filename, pic := range outputs {
		filename, pic := filename, pic
		g.Go(func() error {
			return writeImage(filename, pic)
		})
	}
	if e = g.Wait(); e != nil {
		klog.Errorf("%v", e)
		return 1
	}
	for filename := range outputs {
		fmt.Printf("Image %s written OK.\n", filename)
	}
	return 0
}

func main() {
	os.Exit(run())
}
