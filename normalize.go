package img2outline

import "gocv.io/x/gocv"

// Normalize guarantees a 3-channel color buffer with the same dimensions as
// src. A 4-channel input is composited over an opaque white background using
// its alpha channel, per pixel. A 3-channel input is returned as an
// independent copy so downstream mutation never touches caller-held memory.
// Channel counts other than 3 or 4 are the caller's responsibility to
// reject before invoking the pipeline.
func Normalize(src gocv.Mat) gocv.Mat {
	if src.Channels() != 4 {
		return src.Clone()
	}

	rows, cols := src.Rows(), src.Cols()
	out := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			px := src.GetVecbAt(y, x)
			alpha := float64(px[3]) / 255.0
			for c := 0; c < 3; c++ {
				v := alpha*float64(px[c]) + (1.0-alpha)*255.0
				out.SetUCharAt(y, x*3+c, uint8(v+0.5))
			}
		}
	}
	return out
}
