package img2outline

import (
	"image"

	"gocv.io/x/gocv"
)

const blurKernelSize = 5

// Outline isolates the dominant foreground shapes of a photograph and
// renders their boundaries on a white canvas of the same dimensions. It
// returns the rendered canvas, which the caller owns and must close, and the
// contours that were drawn, which may be empty for scenes with no separable
// foreground. src must be a 3- or 4-channel 8-bit image and is never
// modified.
//
// Thresholds are derived from measured image statistics rather than fixed
// constants, so the same pipeline handles bright, dark, and low-contrast
// scenes without per-image tuning.
func Outline(src gocv.Mat) (gocv.Mat, []Contour) {
	bgr := Normalize(src)
	defer bgr.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Pt(blurKernelSize, blurKernelSize),
		0, 0, gocv.BorderDefault)

	bg := EstimateBackground(blurred)

	mask := ForegroundMask(blurred, bg)
	defer mask.Close()

	contours := SelectContours(mask)
	return RenderEdges(src.Rows(), src.Cols(), contours), contours
}
