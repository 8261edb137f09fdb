package palette

import (
	"fmt"
	"image"
)

const (
	defaultMaximumColorCount = 16
	defaultResizeBitmapArea  = 112 * 112
)

// Builder configures a single palette generation. It is not safe for
// concurrent use; the Palette it produces is.
type Builder struct {
	img      image.Image
	buffer   []byte
	width    int
	height   int
	swatches []*Swatch

	maxColors          int
	resizeArea         int
	resizeMaxDimension int
	filters            []Filter
	targets            []*Target
}

func FromImage(img image.Image) *Builder {
	builder := newBuilder()
	builder.img = img
	return builder
}

// FromBuffer wraps a packed sRGB buffer of width*height pixels, four bytes
// per pixel in R, G, B, A order. The length is validated at Generate time.
func FromBuffer(buffer []byte, width int, height int) *Builder {
	builder := newBuilder()
	builder.buffer = buffer
	builder.width = width
	builder.height = height
	return builder
}

func FromSwatches(swatches []*Swatch) *Builder {
	builder := newBuilder()
	builder.swatches = swatches
	return builder
}

func newBuilder() *Builder {
	return &Builder{
		maxColors:          defaultMaximumColorCount,
		resizeArea:         defaultResizeBitmapArea,
		resizeMaxDimension: -1,
		filters:            []Filter{FilterDefault},
		targets:            defaultTargets(),
	}
}

func (b *Builder) MaximumColorCount(count int) *Builder {
	b.maxColors = count
	return b
}

// ResizeBitmapArea downscales the source so its pixel count is at most area
// before quantization. Zero or negative disables resizing.
func (b *Builder) ResizeBitmapArea(area int) *Builder {
	b.resizeArea = area
	b.resizeMaxDimension = -1
	return b
}

// ResizeBitmapMaxDimension downscales the source so its longest side is at
// most dimension. A positive value overrides ResizeBitmapArea.
func (b *Builder) ResizeBitmapMaxDimension(dimension int) *Builder {
	b.resizeMaxDimension = dimension
	return b
}

func (b *Builder) AddFilter(filter Filter) *Builder {
	if filter != nil {
		b.filters = append(b.filters, filter)
	}
	return b
}

func (b *Builder) ClearFilters() *Builder {
	b.filters = nil
	return b
}

func (b *Builder) AddTarget(target *Target) *Builder {
	for _, existing := range b.targets {
		if existing == target {
			return b
		}
	}
	b.targets = append(b.targets, target)
	return b
}

func (b *Builder) ClearTargets() *Builder {
	b.targets = nil
	return b
}

func (b *Builder) Generate() (*Palette, error) {
	swatches := b.swatches

	switch {
	case b.buffer != nil:
		if len(b.buffer) != b.width*b.height*4 {
			return nil, fmt.Errorf("generate palette from %dx%d buffer of %d bytes: %w", b.width, b.height, len(b.buffer), ErrInvalidBuffer)
		}
		swatches = quantizePixels(packBufferPixels(b.buffer), b.maxColors, b.filters)
	case b.img != nil:
		if b.img.Bounds().Empty() {
			return nil, fmt.Errorf("generate palette: %w", ErrEmptyInput)
		}
		scaled := scaleImageDown(b.img, b.resizeArea, b.resizeMaxDimension)
		swatches = quantizePixels(packImagePixels(scaled), b.maxColors, b.filters)
	case len(b.swatches) == 0:
		return nil, fmt.Errorf("generate palette: %w", ErrEmptyInput)
	}

	return newPalette(swatches, b.targets), nil
}
