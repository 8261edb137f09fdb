package palette

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func fillRect(img *image.NRGBA, rect image.Rectangle, fill color.NRGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
}

func TestBuilderRejectsMissingInput(t *testing.T) {
	t.Parallel()

	if _, err := FromImage(nil).Generate(); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("nil image err = %v, want ErrEmptyInput", err)
	}

	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := FromImage(empty).Generate(); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty image err = %v, want ErrEmptyInput", err)
	}
}

func TestBuilderRejectsMismatchedBuffer(t *testing.T) {
	t.Parallel()

	_, err := FromBuffer(make([]byte, 10), 2, 2).Generate()
	if !errors.Is(err, ErrInvalidBuffer) {
		t.Fatalf("err = %v, want ErrInvalidBuffer", err)
	}
}

func TestBuilderResizeBitmapArea(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fillRect(img, img.Bounds(), color.NRGBA{R: 40, G: 80, B: 200, A: 255})

	p, err := FromImage(img).ResizeBitmapArea(2500).ClearFilters().Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	swatches := p.Swatches()
	if len(swatches) != 1 {
		t.Fatalf("got %d swatches, want 1", len(swatches))
	}
	if swatches[0].Population() != 2500 {
		t.Fatalf("population = %d, want 2500 after downscale", swatches[0].Population())
	}
	if swatches[0].RGB() != Rgb(40, 80, 200) {
		t.Fatalf("swatch = %s, nearest neighbor should preserve the color", swatches[0].Hex())
	}
}

func TestBuilderResizeMaxDimension(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	fillRect(img, img.Bounds(), color.NRGBA{R: 40, G: 80, B: 200, A: 255})

	p, err := FromImage(img).ResizeBitmapMaxDimension(50).ClearFilters().Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	swatches := p.Swatches()
	if len(swatches) != 1 {
		t.Fatalf("got %d swatches, want 1", len(swatches))
	}
	if swatches[0].Population() != 50*25 {
		t.Fatalf("population = %d, want 1250 after downscale", swatches[0].Population())
	}
}

func TestBuilderResizeDisabled(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 120, 120))
	fillRect(img, img.Bounds(), color.NRGBA{R: 40, G: 80, B: 200, A: 255})

	p, err := FromImage(img).ResizeBitmapArea(0).ClearFilters().Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if population := p.Swatches()[0].Population(); population != 120*120 {
		t.Fatalf("population = %d, want the full pixel count", population)
	}
}

func TestBuilderMaximumColorCount(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 4), G: uint8(y * 4), B: 96, A: 255})
		}
	}

	p, err := FromImage(img).MaximumColorCount(4).ClearFilters().Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if count := len(p.Swatches()); count == 0 || count > 4 {
		t.Fatalf("got %d swatches, want between 1 and 4", count)
	}
}

func TestBuilderQuadrantImageSelectsTargets(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	fillRect(img, image.Rect(0, 0, 32, 32), color.NRGBA{R: 208, G: 32, B: 80, A: 255})
	fillRect(img, image.Rect(32, 0, 64, 32), color.NRGBA{R: 32, G: 104, B: 208, A: 255})
	fillRect(img, image.Rect(0, 32, 32, 64), color.NRGBA{R: 144, G: 160, B: 144, A: 255})
	fillRect(img, image.Rect(32, 32, 64, 64), color.NRGBA{R: 40, G: 48, B: 40, A: 255})

	p, err := FromImage(img).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(p.Swatches()) == 0 {
		t.Fatal("expected swatches from a four-color image")
	}
	if p.DominantSwatch() == nil {
		t.Fatal("expected a dominant swatch")
	}

	selections := 0
	for _, target := range p.Targets() {
		if p.SwatchForTarget(target) != nil {
			selections++
		}
	}
	if selections == 0 {
		t.Fatal("expected at least one target selection")
	}
}

func TestBuilderGenerateIsRepeatable(t *testing.T) {
	t.Parallel()

	makeImage := func() *image.NRGBA {
		img := image.NewNRGBA(image.Rect(0, 0, 48, 48))
		for y := 0; y < 48; y++ {
			for x := 0; x < 48; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 5), G: uint8(y * 5), B: uint8((x + y) * 2), A: 255})
			}
		}
		return img
	}

	first, err := FromImage(makeImage()).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := FromImage(makeImage()).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	firstSwatches := first.Swatches()
	secondSwatches := second.Swatches()
	if len(firstSwatches) != len(secondSwatches) {
		t.Fatalf("swatch counts differ: %d vs %d", len(firstSwatches), len(secondSwatches))
	}
	for index := range firstSwatches {
		if !firstSwatches[index].Equal(secondSwatches[index]) {
			t.Fatalf("swatch %d differs between runs", index)
		}
	}
}
