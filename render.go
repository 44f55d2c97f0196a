package img2outline

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

const (
	simplifyTolerance = 2.0
	strokeWidth       = 3
)

// edgeColor is pure blue in the canvas's channel order.
var edgeColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// RenderEdges draws the selected contours onto a fresh all-white canvas of
// the given dimensions. Each boundary is simplified with a 2.0-pixel
// polygon-approximation tolerance to smooth pixel-level tracing jitter, then
// stroked antialiased at 3 px in the accent color. The caller owns the
// returned canvas.
func RenderEdges(rows, cols int, contours []Contour) gocv.Mat {
	canvas := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(255, 255, 255, 255), rows, cols, gocv.MatTypeCV8UC3)
	if len(contours) == 0 {
		return canvas
	}

	polys := gocv.NewPointsVector()
	defer polys.Close()
	for _, c := range contours {
		raw := gocv.NewPointVectorFromPoints(c.Points)
		approx := gocv.ApproxPolyDP(raw, simplifyTolerance, true)
		raw.Close()
		polys.Append(approx)
		approx.Close()
	}

	hierarchy := gocv.NewMat()
	defer hierarchy.Close()
	for i := 0; i < polys.Size(); i++ {
		gocv.DrawContoursWithParams(&canvas, polys, i, edgeColor,
			strokeWidth, gocv.LineAA, hierarchy, 0, image.Point{})
	}
	return canvas
}
