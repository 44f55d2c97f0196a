package img2outline

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestNormalizePassesThroughThreeChannel(t *testing.T) {
	src := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(10, 20, 30, 0), 4, 4, gocv.MatTypeCV8UC3)
	defer src.Close()

	out := Normalize(src)
	defer out.Close()

	if out.Channels() != 3 {
		t.Fatalf("expected 3 channels, got %d", out.Channels())
	}
	px := out.GetVecbAt(0, 0)
	if px[0] != 10 || px[1] != 20 || px[2] != 30 {
		t.Errorf("expected (10,20,30), got (%d,%d,%d)", px[0], px[1], px[2])
	}

	// The result must be an independent copy.
	src.SetUCharAt(0, 0, 99)
	if out.GetVecbAt(0, 0)[0] != 10 {
		t.Error("output shares storage with the input")
	}
}

func TestNormalizeCompositesPartialAlpha(t *testing.T) {
	src := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(100, 150, 200, 128), 2, 2, gocv.MatTypeCV8UC4)
	defer src.Close()

	out := Normalize(src)
	defer out.Close()

	if out.Channels() != 3 {
		t.Fatalf("expected 3 channels, got %d", out.Channels())
	}
	// alpha 128/255 over white: 100 -> 177, 150 -> 202, 200 -> 227.
	px := out.GetVecbAt(1, 1)
	if px[0] != 177 || px[1] != 202 || px[2] != 227 {
		t.Errorf("expected (177,202,227), got (%d,%d,%d)", px[0], px[1], px[2])
	}
}

func TestNormalizeFullyTransparentBecomesWhite(t *testing.T) {
	src := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(12, 34, 56, 0), 3, 3, gocv.MatTypeCV8UC4)
	defer src.Close()

	out := Normalize(src)
	defer out.Close()

	px := out.GetVecbAt(1, 2)
	if px[0] != 255 || px[1] != 255 || px[2] != 255 {
		t.Errorf("expected white, got (%d,%d,%d)", px[0], px[1], px[2])
	}
}

func TestNormalizeOpaqueAlphaKeepsColor(t *testing.T) {
	src := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(40, 80, 120, 255), 2, 2, gocv.MatTypeCV8UC4)
	defer src.Close()

	out := Normalize(src)
	defer out.Close()

	px := out.GetVecbAt(0, 1)
	if px[0] != 40 || px[1] != 80 || px[2] != 120 {
		t.Errorf("expected (40,80,120), got (%d,%d,%d)", px[0], px[1], px[2])
	}
}
