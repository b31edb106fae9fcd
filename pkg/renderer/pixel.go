package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// EncodePixel clamps a linear color to [0,1], applies gamma 2 and packs it as
// the bytes [R, G, B, 255] in little-endian order
func EncodePixel(c core.Vec3) uint32 {
	c = core.GammaCorrect(core.Clamp(c, 0, 1), 2)
	r := uint32(uint8(c[0] * 255.99))
	g := uint32(uint8(c[1] * 255.99))
	b := uint32(uint8(c[2] * 255.99))
	return r | g<<8 | b<<16 | 0xFF<<24
}

// DecodePixel unpacks a pixel produced by EncodePixel
func DecodePixel(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// ToImage copies a packed pixel buffer into an RGBA image
func ToImage(pixels []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, DecodePixel(pixels[y*width+x]))
		}
	}
	return img
}
