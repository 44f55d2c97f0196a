package img2outline

import (
	"math"

	"gocv.io/x/gocv"
)

// BorderStats describes the brightness distribution of the border ring of a
// grayscale image. Mean estimates the background brightness, StdDev its
// noise level. Computed once per image and consumed by the mask builder.
type BorderStats struct {
	Mean   float64
	StdDev float64
}

// EstimateBackground samples a border ring of the grayscale image and
// returns the mean and population standard deviation of the sampled
// intensities. The ring is max(4, min(rows, cols)/20) pixels wide and covers
// the full border frame, corners counted once. A degenerate image with no
// pixels to sample yields the neutral fallback (127, 10).
func EstimateBackground(gray gocv.Mat) BorderStats {
	rows, cols := gray.Rows(), gray.Cols()
	width := min(rows, cols) / 20
	if width < 4 {
		width = 4
	}

	var sum float64
	var count int
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if y >= width && y < rows-width && x >= width && x < cols-width {
				continue
			}
			sum += float64(gray.GetUCharAt(y, x))
			count++
		}
	}
	if count == 0 {
		return BorderStats{Mean: 127, StdDev: 10}
	}

	mean := sum / float64(count)
	var variance float64
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if y >= width && y < rows-width && x >= width && x < cols-width {
				continue
			}
			d := float64(gray.GetUCharAt(y, x)) - mean
			variance += d * d
		}
	}
	variance /= float64(count)

	return BorderStats{Mean: mean, StdDev: math.Sqrt(variance)}
}
