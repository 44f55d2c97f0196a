package img2outline

import (
	"testing"

	"gocv.io/x/gocv"
)

func fillSquare(mask *gocv.Mat, top, left, size int) {
	for y := top; y < top+size; y++ {
		for x := left; x < left+size; x++ {
			mask.SetUCharAt(y, x, 255)
		}
	}
}

func TestSelectContoursKeepsThreeLargest(t *testing.T) {
	mask := gocv.NewMatWithSize(200, 200, gocv.MatTypeCV8UC1)
	defer mask.Close()

	// Four well-separated squares plus one tiny blob below the area
	// floor (0.1% of 200x200 = 40 px).
	fillSquare(&mask, 10, 10, 60)
	fillSquare(&mask, 10, 100, 50)
	fillSquare(&mask, 100, 10, 40)
	fillSquare(&mask, 100, 100, 30)
	fillSquare(&mask, 180, 180, 3)

	contours := SelectContours(mask)
	if len(contours) != 3 {
		t.Fatalf("expected 3 contours, got %d", len(contours))
	}
	for i := 1; i < len(contours); i++ {
		if contours[i].Area > contours[i-1].Area {
			t.Errorf("contours not sorted by descending area: %f before %f",
				contours[i-1].Area, contours[i].Area)
		}
	}
	// The largest square traces as a 59x59 polygon.
	if contours[0].Area != 59*59 {
		t.Errorf("expected largest area %d, got %f", 59*59, contours[0].Area)
	}
}

func TestSelectContoursEmptyMask(t *testing.T) {
	mask := gocv.NewMatWithSize(50, 50, gocv.MatTypeCV8UC1)
	defer mask.Close()

	if contours := SelectContours(mask); len(contours) != 0 {
		t.Errorf("expected no contours, got %d", len(contours))
	}
}

func TestSelectContoursFiltersTinyBlobs(t *testing.T) {
	mask := gocv.NewMatWithSize(200, 200, gocv.MatTypeCV8UC1)
	defer mask.Close()
	fillSquare(&mask, 20, 20, 3)

	if contours := SelectContours(mask); len(contours) != 0 {
		t.Errorf("expected tiny blob filtered, got %d contours", len(contours))
	}
}
