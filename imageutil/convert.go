package imageutil

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// ToMatBGRA converts a decoded image to an 8-bit 4-channel Mat in OpenCV's
// native BGRA channel order. Alpha is kept straight, not premultiplied, so
// downstream compositing sees the original channel values.
func ToMatBGRA(src image.Image) gocv.Mat {
	bounds := src.Bounds()
	mat := gocv.NewMatWithSize(bounds.Dy(), bounds.Dx(), gocv.MatTypeCV8UC4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			row := y - bounds.Min.Y
			col := x - bounds.Min.X
			mat.SetUCharAt(row, col*4+0, px.B)
			mat.SetUCharAt(row, col*4+1, px.G)
			mat.SetUCharAt(row, col*4+2, px.R)
			mat.SetUCharAt(row, col*4+3, px.A)
		}
	}
	return mat
}
