package canvas

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// captionMargin is the gap between the caption and the image edge
const captionMargin = 6

// ToRGBA unpacks a pixel buffer into an image
func ToRGBA(pixels []uint32, width, height int) *image.RGBA {
	return renderer.ToImage(pixels, width, height)
}

// SavePNG writes img to path, creating parent directories. A non-empty
// caption is drawn into img in the bottom-left corner on a dark strip.
func SavePNG(path string, img *image.RGBA, caption string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	dc := gg.NewContextForRGBA(img)
	if caption != "" {
		drawCaption(dc, caption)
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func drawCaption(dc *gg.Context, caption string) {
	w, h := dc.MeasureString(caption)
	bottom := float64(dc.Height())

	dc.SetColor(colornames.Black)
	dc.DrawRectangle(0, bottom-h-2*captionMargin, w+2*captionMargin, h+2*captionMargin)
	dc.Fill()

	dc.SetColor(colornames.Gold)
	dc.DrawStringAnchored(caption, captionMargin, bottom-captionMargin, 0, 0)
}
