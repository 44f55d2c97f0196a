package img2outline

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"github.com/golang/freetype"
	"golang.org/x/image/font"

	"github.com/wbrown/img2outline/imageutil"
)

const (
	previewFontSize = 12.0
	previewFontDPI  = 72.0
)

// RenderFrameImage rasterizes an ASCII frame onto a white canvas using the
// TrueType font at fontPath. Cell metrics assume a monospaced face; a
// proportional font still renders but columns drift.
func RenderFrameImage(frame, fontPath string) (*image.RGBA, error) {
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("empty frame")
	}

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	cellW := int(previewFontSize*0.6 + 0.5)
	cellH := int(previewFontSize*1.2 + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, (cols+1)*cellW, (len(lines)+1)*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(previewFontDPI)
	c.SetFont(ttf)
	c.SetFontSize(previewFontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	c.SetHinting(font.HintingFull)

	for i, line := range lines {
		pt := freetype.Pt(cellW/2, (i+1)*cellH)
		if _, err := c.DrawString(line, pt); err != nil {
			return nil, fmt.Errorf("failed to draw line %d: %w", i, err)
		}
	}
	return img, nil
}

// SaveFramePNG renders frame with RenderFrameImage and writes the result as
// a PNG file.
func SaveFramePNG(frame, fontPath, outPath string) error {
	img, err := RenderFrameImage(frame, fontPath)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(img, outPath)
}
