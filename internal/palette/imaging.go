package palette

import (
	"image"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
)

// scaleImageDown shrinks the source below the configured area or maximum
// dimension. Scaling is nearest neighbor so the sampled colors stay colors
// that exist in the source.
func scaleImageDown(img image.Image, resizeArea int, resizeMaxDimension int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	scaleRatio := -1.0
	if resizeMaxDimension > 0 {
		if longest := maxInt(width, height); longest > resizeMaxDimension {
			scaleRatio = float64(resizeMaxDimension) / float64(longest)
		}
	} else if resizeArea > 0 {
		if area := width * height; area > resizeArea {
			scaleRatio = math.Sqrt(float64(resizeArea) / float64(area))
		}
	}

	if scaleRatio <= 0 {
		return img
	}

	targetWidth := maxInt(int(math.Floor(float64(width)*scaleRatio)), 1)
	targetHeight := maxInt(int(math.Floor(float64(height)*scaleRatio)), 1)
	return resize.Resize(uint(targetWidth), uint(targetHeight), img, resize.NearestNeighbor)
}

// packImagePixels copies the image into a packed ARGB buffer, row major.
func packImagePixels(img image.Image) []Color {
	source := toNRGBA(img)
	bounds := source.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pixels := make([]Color, 0, width*height)
	for y := 0; y < height; y++ {
		rowOffset := y * source.Stride
		for x := 0; x < width; x++ {
			offset := rowOffset + x*4
			red := source.Pix[offset]
			green := source.Pix[offset+1]
			blue := source.Pix[offset+2]
			alpha := source.Pix[offset+3]
			pixels = append(pixels, Argb(alpha, red, green, blue))
		}
	}
	return pixels
}

// packBufferPixels reinterprets a caller-supplied RGBA byte buffer as packed
// ARGB words. The length is validated by the builder.
func packBufferPixels(buffer []byte) []Color {
	pixels := make([]Color, 0, len(buffer)/4)
	for offset := 0; offset+3 < len(buffer); offset += 4 {
		pixels = append(pixels, Argb(buffer[offset+3], buffer[offset], buffer[offset+1], buffer[offset+2]))
	}
	return pixels
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}

	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
