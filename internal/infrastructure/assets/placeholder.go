package assets

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
)

const defaultPlaceholderSize = 64

// Placeholder draws a strip of square frames for a texture that has no
// image file. Each frame is a box whose shade and height change from frame
// to frame, with a marker on its left side so the facing is visible.
func Placeholder(key string, frames, size int) *image.RGBA {
	if frames <= 0 {
		frames = 1
	}
	if size <= 0 {
		size = defaultPlaceholderSize
	}

	base := keyColor(key)
	img := image.NewRGBA(image.Rect(0, 0, frames*size, size))
	for i := 0; i < frames; i++ {
		shade := uint8(40 * (i % 4))
		body := color.RGBA{sat(base.R, shade), sat(base.G, shade), sat(base.B, shade), 255}

		inset := size / 4
		bob := (i % 2) * size / 16
		frame := image.Rect(i*size+inset, size/3+bob, (i+1)*size-inset, size)
		draw.Draw(img, frame, &image.Uniform{C: body}, image.Point{}, draw.Src)

		eye := image.Rect(frame.Min.X+size/16, frame.Min.Y+size/16, frame.Min.X+size/16+size/8, frame.Min.Y+size/16+size/8)
		draw.Draw(img, eye, &image.Uniform{C: color.RGBA{20, 20, 20, 255}}, image.Point{}, draw.Src)
	}
	return img
}

// GemPlaceholder draws a single diamond texture
func GemPlaceholder(size int) *image.RGBA {
	if size <= 0 {
		size = defaultPlaceholderSize / 2
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := color.RGBA{255, 215, 0, 255}
	half := size / 2
	for y := 0; y < size; y++ {
		span := half - abs(y-half)
		for x := half - span; x < half+span; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func keyColor(key string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(96 + sum%128),
		G: uint8(96 + (sum>>8)%128),
		B: uint8(96 + (sum>>16)%128),
		A: 255,
	}
}

func sat(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
