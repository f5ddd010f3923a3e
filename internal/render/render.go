// Package render turns canvas snapshots into images for human inspection.
// It is a read-only consumer of the engine: nothing here feeds back into the
// simulation.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/numcog/gridgames/internal/common"
)

// Image converts a canvas snapshot of the given pixel dimensions into an
// RGBA image, mapping palette values through common.PaletteColors. Unknown
// values fall back to the background color.
func Image(canvas []float64, pixelRows, pixelCols int) (*image.RGBA, error) {
	if len(canvas) != pixelRows*pixelCols {
		return nil, fmt.Errorf("canvas length %d does not match %dx%d", len(canvas), pixelRows, pixelCols)
	}
	img := image.NewRGBA(image.Rect(0, 0, pixelCols, pixelRows))
	for r := 0; r < pixelRows; r++ {
		for c := 0; c < pixelCols; c++ {
			col, ok := common.PaletteColors[canvas[r*pixelCols+c]]
			if !ok {
				col = common.BackgroundColor
			}
			img.Set(c, r, col)
		}
	}
	return img, nil
}

// Upscale enlarges an image by an integer factor with nearest-neighbor
// sampling, keeping the blocky grid look.
func Upscale(src image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes the image to a file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()
	if err := WritePNG(f, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
