// Command outline batch-processes photographs into edge-outline renderings.
// For every image under -input it writes <name>_outline.png to the output
// directory and prints an ASCII preview of the result to stdout. With -font
// pointing at a TrueType file, the preview is additionally rasterized to
// <name>_preview.png.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"github.com/wbrown/img2outline"
	"github.com/wbrown/img2outline/imageutil"
)

func main() {
	input := flag.String("input", "", "image file or directory to process (required)")
	output := flag.String("output", "outlined", "directory for rendered outputs")
	width := flag.Int("width", 72, "maximum width of the ASCII preview in characters")
	noPreview := flag.Bool("nopreview", false, "skip printing ASCII previews")
	fontPath := flag.String("font", "", "TrueType font for rasterized preview PNGs")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	files, err := collectInputs(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("cannot read input")
	}
	if len(files) == 0 {
		log.Fatal().Str("input", *input).Msg("no image files found")
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatal().Err(err).Str("output", *output).Msg("cannot create output directory")
	}

	failed := 0
	for i, file := range files {
		if err := processFile(log, file, *output, i+1, len(files),
			*width, !*noPreview, *fontPath); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("skipping file")
			failed++
		}
	}
	if failed > 0 {
		log.Warn().Int("failed", failed).Int("total", len(files)).
			Msg("finished with failures")
		os.Exit(1)
	}
	log.Info().Int("total", len(files)).Msg("finished")
}

// collectInputs expands path into the list of image files to process: the
// path itself if it is a file, or its directly contained image files if it
// is a directory. Subdirectories are not recursed into.
func collectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	return files, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".bmp", ".webp":
		return true
	}
	return false
}

// loadMat reads the image at path as an 8-bit BGR or BGRA Mat. Formats
// imread cannot decode fall back to the stdlib decoders; grayscale sources
// are promoted to three channels.
func loadMat(path string) (gocv.Mat, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	if mat.Empty() {
		mat.Close()
		img, err := imageutil.LoadImage(path)
		if err != nil {
			return gocv.NewMat(), fmt.Errorf("failed to load %s: %w", path, err)
		}
		mat = imageutil.ToMatBGRA(img)
	}

	switch mat.Channels() {
	case 3, 4:
		return mat, nil
	case 1:
		bgr := gocv.NewMat()
		gocv.CvtColor(mat, &bgr, gocv.ColorGrayToBGR)
		mat.Close()
		return bgr, nil
	default:
		ch := mat.Channels()
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("%s: unsupported channel count %d", path, ch)
	}
}

func processFile(log zerolog.Logger, file, outDir string, index, total,
	width int, preview bool, fontPath string) error {
	start := time.Now()

	src, err := loadMat(file)
	if err != nil {
		return err
	}
	defer src.Close()

	canvas, contours := img2outline.Outline(src)
	defer canvas.Close()

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	outPath := filepath.Join(outDir, base+"_outline.png")
	if ok := gocv.IMWrite(outPath, canvas); !ok {
		return fmt.Errorf("failed to write %s", outPath)
	}

	if preview {
		frame := img2outline.AsciiPreview(canvas, width)
		fmt.Printf("%s (%d/%d):\n%s\n", filepath.Base(file), index, total, frame)
		if fontPath != "" {
			previewPath := filepath.Join(outDir, base+"_preview.png")
			if err := img2outline.SaveFramePNG(frame, fontPath, previewPath); err != nil {
				return fmt.Errorf("failed to rasterize preview: %w", err)
			}
		}
	}

	log.Info().
		Str("file", filepath.Base(file)).
		Int("index", index).
		Int("total", total).
		Int("contours", len(contours)).
		Str("size", fmt.Sprintf("%dx%d", src.Cols(), src.Rows())).
		Dur("elapsed", time.Since(start)).
		Msg("processed")
	return nil
}
