// Package cli renders mazes on a terminal.
package cli

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"k8s.io/klog/v2"
)

// Each image pixel is drawn this many characters wide, so that pixels come out
// roughly square.
const CharsPerPixel = 2

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// Pixel classes recognized when rendering.
type pixelClass int

const (
	wallPixel pixelClass = iota
	passagePixel
	markedPixel
)

// classify maps a rendered maze color back to its pixel class: dark pixels are
// walls, gray ones passages, anything with a color cast is a marker.
func classify(c color.Color) pixelClass {
	r, g, b, _ := c.RGBA()
	r, g, b = r>>8, g>>8, b>>8
	if (r != g) || (g != b) {
		return markedPixel
	}
	if r < 128 {
		return wallPixel
	}
	return passagePixel
}

var (
	wallStyle    = lipgloss.NewStyle().Background(lipgloss.Color("0"))
	passageStyle = lipgloss.NewStyle().Background(lipgloss.Color("15"))
	markedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("9"))
)

var plainPixels = map[pixelClass]string{
	wallPixel:    "██",
	passagePixel: "  ",
	markedPixel:  "··",
}

// Render draws img as a block of text, one line per row of pixels. With color,
// pixels are drawn as background-colored blanks, otherwise as block characters.
func Render(img image.Image, useColor bool) string {
	bounds := img.Bounds()
	blank := strings.Repeat(" ", CharsPerPixel)
	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			class := classify(img.At(x, y))
			if !useColor {
				sb.WriteString(plainPixels[class])
				continue
			}
			switch class {
			case wallPixel:
				sb.WriteString(wallStyle.Render(blank))
			case passagePixel:
				sb.WriteString(passageStyle.Render(blank))
			default:
				sb.WriteString(markedStyle.Render(blank))
			}
		}
		if y < bounds.Max.Y-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// terminalWidth returns the width of stdout, or 0 if it is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// indentFor returns how many spaces center a block of the given width.
func indentFor(terminalWidth, blockWidth int) int {
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	return indent
}

// FprintCentered writes block to w, centering it within the given width.
func FprintCentered(w io.Writer, block string, width int) {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, line := range lines {
		if lw := displayWidth(line); lw > blockWidth {
			blockWidth = lw
		}
	}
	indent := indentFor(width, blockWidth)
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// PrintCentered prints block to stdout, centered on the terminal.
func PrintCentered(block string) {
	FprintCentered(os.Stdout, block, terminalWidth())
}

// PrintMaze renders img and prints it centered on the terminal.
func PrintMaze(img image.Image, useColor bool) {
	PrintCentered(Render(img, useColor))
}

// isYes reports whether the answer to a [Y/n] prompt is a yes. Only an
// explicit capital Y counts.
func isYes(answer byte) bool {
	return answer == 'Y'
}

// Confirm asks the user a [Y/n] question and reads a single key press. If
// stdin is not a terminal there is no one to ask, and it returns true.
func Confirm(prompt string) bool {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return true
	}
	fmt.Printf("%s [Y/n]", prompt)
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		klog.Warningf("failed to set terminal to raw mode: %v", err)
		return true
	}
	answer, err := bufio.NewReader(os.Stdin).ReadByte()
	if restoreErr := term.Restore(fd, oldState); restoreErr != nil {
		klog.Errorf("failed to restore terminal state: %v", restoreErr)
	}
	fmt.Println()
	if err != nil {
		klog.Errorf("failed to read answer: %v", err)
		return false
	}
	return isYes(answer)
}
