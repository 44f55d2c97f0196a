package img2outline

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

const (
	brightBackgroundMean = 180
	brightContrastThresh = 5
	minContrastThresh    = 10

	morphKernelSize = 5
	closeIterations = 2
	openIterations  = 1
)

// ForegroundMask builds a binary mask of foreground candidate pixels from a
// blurred grayscale image. Two independent criteria vote on every pixel: its
// absolute deviation from the border-ring mean must exceed a contrast
// threshold, and it must land on the foreground side of a global Otsu split.
// Only pixels both criteria agree on survive, which sharply reduces the
// false positives either test produces alone. The combined mask is then
// closed to merge nearby fragments and opened to strip speckle noise.
//
// Bright backgrounds carry little noise, so any real contrast stands out at
// a low fixed threshold; darker backgrounds get a threshold scaled to the
// measured ring noise instead.
func ForegroundMask(blurred gocv.Mat, bg BorderStats) gocv.Mat {
	rows, cols := blurred.Rows(), blurred.Cols()

	background := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(bg.Mean, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC1)
	defer background.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(blurred, background, &diff)

	contrastThresh := float64(brightContrastThresh)
	if bg.Mean <= brightBackgroundMean {
		contrastThresh = math.Max(minContrastThresh, bg.StdDev)
	}

	// Threshold compares with strict greater-than; shift down half a level
	// so a deviation exactly at the threshold still counts.
	contrast := gocv.NewMat()
	defer contrast.Close()
	gocv.Threshold(diff, &contrast, float32(contrastThresh)-0.5, 255, gocv.ThresholdBinary)

	// Otsu picks the split point; the border ring tells us which side of it
	// the background sits on, so foreground is the other side.
	otsu := gocv.NewMat()
	defer otsu.Close()
	split := gocv.Threshold(blurred, &otsu, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)
	if bg.Mean > float64(split) {
		gocv.BitwiseNot(otsu, &otsu)
	}

	mask := gocv.NewMat()
	gocv.BitwiseAnd(contrast, otsu, &mask)

	kernel := gocv.GetStructuringElement(gocv.MorphRect,
		image.Pt(morphKernelSize, morphKernelSize))
	defer kernel.Close()

	// Close before open: bridging thin foreground first keeps the open pass
	// from erasing it.
	gocv.MorphologyExWithParams(mask, &mask, gocv.MorphClose, kernel,
		closeIterations, gocv.BorderConstant)
	gocv.MorphologyExWithParams(mask, &mask, gocv.MorphOpen, kernel,
		openIterations, gocv.BorderConstant)

	return mask
}
