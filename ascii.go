package img2outline

import (
	"image"
	"math"
	"strings"

	"gocv.io/x/gocv"
)

// asciiRamp orders glyphs light to dark; brightness scales linearly across it.
const asciiRamp = " .:-=+*#%@"

// charAspect halves the effective row scale so the printed frame keeps the
// image's aspect ratio despite character cells being roughly twice as tall
// as they are wide.
const charAspect = 0.5

// AsciiPreview maps a color image onto a text grid at most maxWidth
// characters wide, newline-terminated per row. Pixels saturated in the
// canvas's first channel, the accent hue the edge renderer strokes with,
// always become the densest glyph so detected outlines survive even over a
// light canvas. Every other pixel is mapped by mean channel brightness.
// Returns the empty string when maxWidth <= 0.
func AsciiPreview(img gocv.Mat, maxWidth int) string {
	if maxWidth <= 0 || img.Empty() {
		return ""
	}

	targetWidth := maxWidth
	if img.Cols() < targetWidth {
		targetWidth = img.Cols()
	}
	aspect := float64(img.Rows()) / float64(img.Cols())
	targetHeight := int(math.Round(float64(targetWidth) * aspect * charAspect))
	if targetHeight < 1 {
		targetHeight = 1
	}

	// Area interpolation averages the covered source region per output
	// pixel, which minimizes aliasing on the way down.
	small := gocv.NewMat()
	defer small.Close()
	gocv.Resize(img, &small, image.Pt(targetWidth, targetHeight), 0, 0,
		gocv.InterpolationArea)

	var sb strings.Builder
	sb.Grow((targetWidth + 1) * targetHeight)
	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			px := small.GetVecbAt(y, x)
			if px[0] > 200 && px[1] < 50 && px[2] < 50 {
				sb.WriteByte(asciiRamp[len(asciiRamp)-1])
				continue
			}
			brightness := float64(int(px[0])+int(px[1])+int(px[2])) / (3 * 255)
			idx := int(math.Round(brightness * float64(len(asciiRamp)-1)))
			if idx < 0 {
				idx = 0
			} else if idx > len(asciiRamp)-1 {
				idx = len(asciiRamp) - 1
			}
			sb.WriteByte(asciiRamp[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
