package img2outline

import (
	"image"
	"sort"

	"gocv.io/x/gocv"
)

const (
	maxContours     = 3
	minAreaFraction = 0.001
)

// Contour is one closed outer boundary traced from the foreground mask,
// together with its enclosed planar area.
type Contour struct {
	Points []image.Point
	Area   float64
}

// SelectContours traces the external contours of a binary mask and keeps the
// dominant shapes: anything below 0.1% of the frame area is residual noise
// the morphology pass missed, the survivors are ordered by area descending,
// and at most three are kept. An empty result is valid; the renderer then
// produces a blank canvas.
func SelectContours(mask gocv.Mat) []Contour {
	minArea := minAreaFraction * float64(mask.Rows()) * float64(mask.Cols())

	found := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	var kept []Contour
	for i := 0; i < found.Size(); i++ {
		c := found.At(i)
		area := gocv.ContourArea(c)
		if area < minArea {
			continue
		}
		kept = append(kept, Contour{Points: c.ToPoints(), Area: area})
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Area > kept[j].Area })
	if len(kept) > maxContours {
		kept = kept[:maxContours]
	}
	return kept
}
