package imageutil

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadPNGRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 50), G: uint8(y * 80), B: 200, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := SavePNG(src, path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	got, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v vs %v", got.Bounds(), src.Bounds())
	}
	r, g, b, _ := got.At(2, 1).RGBA()
	if uint8(r>>8) != 100 || uint8(g>>8) != 80 || uint8(b>>8) != 200 {
		t.Errorf("pixel (2,1) changed: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
