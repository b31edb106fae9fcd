// Package preview draws rendered images as terminal cells.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"io"

	uv "github.com/charmbracelet/ultraviolet"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// DefaultColumns is the preview width when none is given
const DefaultColumns = 80

// Terminal renders images with upper half blocks: each cell shows two
// vertically stacked pixels, the top one as foreground and the bottom one as
// background.
type Terminal struct {
	Columns int // Cell width of the preview
}

// NewTerminal creates a preview of the given width, falling back to DefaultColumns
func NewTerminal(columns int) *Terminal {
	if columns <= 0 {
		columns = DefaultColumns
	}
	return &Terminal{Columns: columns}
}

// Size returns the preview size in cells for an image of the given size.
// Terminal cells are roughly twice as tall as wide, which half blocks cancel out.
func (t *Terminal) Size(width, height int) (cols, rows int) {
	cols = min(t.Columns, width)
	pixelRows := max(1, height*cols/width)
	return cols, (pixelRows + 1) / 2
}

// Buffer scales img to the preview size and draws it into a cell buffer
func (t *Terminal) Buffer(img image.Image) *uv.Buffer {
	bounds := img.Bounds()
	if bounds.Empty() {
		return uv.NewBuffer(0, 0)
	}
	cols, rows := t.Size(bounds.Dx(), bounds.Dy())

	scaled := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.Draw(scaled, scaled.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)
	pixelRows := max(1, bounds.Dy()*cols/bounds.Dx())
	draw.ApproxBiLinear.Scale(scaled, image.Rect(0, 0, cols, pixelRows), img, bounds, draw.Src, nil)

	buf := uv.NewBuffer(cols, rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			buf.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: opaque(scaled.RGBAAt(col, row*2)),
					Bg: opaque(scaled.RGBAAt(col, row*2+1)),
				},
			})
		}
	}
	return buf
}

// Render returns the styled preview as a string
func (t *Terminal) Render(img image.Image) string {
	return t.Buffer(img).Render()
}

// Fprint writes the preview followed by a reset and newline
func (t *Terminal) Fprint(w io.Writer, img image.Image) error {
	_, err := fmt.Fprintf(w, "%s\x1b[0m\n", t.Render(img))
	return err
}

func opaque(c color.RGBA) color.Color {
	c.A = 0xFF
	return c
}
