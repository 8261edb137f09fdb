package palette

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidAlpha      = errors.New("alpha must be between 0 and 255")
	ErrInvalidBackground = errors.New("background color must be opaque")
	ErrEmptyInput        = errors.New("no image or swatches to generate from")
	ErrInvalidBuffer     = errors.New("pixel buffer length does not match width*height*4")
)

type Color uint32

const (
	ColorBlack Color = 0xFF000000
	ColorWhite Color = 0xFFFFFFFF
)

func Rgb(red uint8, green uint8, blue uint8) Color {
	return Argb(255, red, green, blue)
}

func Argb(alpha uint8, red uint8, green uint8, blue uint8) Color {
	return Color(alpha)<<24 | Color(red)<<16 | Color(green)<<8 | Color(blue)
}

func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

func (c Color) Blue() uint8 {
	return uint8(c)
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
}

type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

func RGBToHSL(red uint8, green uint8, blue uint8) HSL {
	rf := float64(red) / 255
	gf := float64(green) / 255
	bf := float64(blue) / 255

	maxChannel := maxFloat(rf, maxFloat(gf, bf))
	minChannel := minFloat(rf, minFloat(gf, bf))
	delta := maxChannel - minChannel

	lightness := (maxChannel + minChannel) / 2

	var hue float64
	var saturation float64
	if maxChannel != minChannel {
		switch maxChannel {
		case rf:
			hue = math.Mod((gf-bf)/delta, 6)
		case gf:
			hue = (bf-rf)/delta + 2
		default:
			hue = (rf-gf)/delta + 4
		}
		saturation = delta / (1 - math.Abs(2*lightness-1))
	}

	hue = math.Mod(hue*60, 360)
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 {
		hue -= 360
	}

	return HSL{
		Hue:        clampFloat(hue, 0, 360),
		Saturation: clampFloat(saturation, 0, 1),
		Lightness:  clampFloat(lightness, 0, 1),
	}
}

func HSLToRGB(hsl HSL) Color {
	chroma := (1 - math.Abs(2*hsl.Lightness-1)) * hsl.Saturation
	huePrime := math.Mod(hsl.Hue, 360) / 60
	secondary := chroma * (1 - math.Abs(math.Mod(huePrime, 2)-1))
	match := hsl.Lightness - chroma/2

	var rf, gf, bf float64
	switch {
	case huePrime < 1:
		rf, gf, bf = chroma, secondary, 0
	case huePrime < 2:
		rf, gf, bf = secondary, chroma, 0
	case huePrime < 3:
		rf, gf, bf = 0, chroma, secondary
	case huePrime < 4:
		rf, gf, bf = 0, secondary, chroma
	case huePrime < 5:
		rf, gf, bf = secondary, 0, chroma
	default:
		rf, gf, bf = chroma, 0, secondary
	}

	red := uint8(math.Round(clampFloat(rf+match, 0, 1) * 255))
	green := uint8(math.Round(clampFloat(gf+match, 0, 1) * 255))
	blue := uint8(math.Round(clampFloat(bf+match, 0, 1) * 255))
	return Rgb(red, green, blue)
}

func RGBToXYZ(red uint8, green uint8, blue uint8) (float64, float64, float64) {
	r := srgb8ToLinear(red)
	g := srgb8ToLinear(green)
	b := srgb8ToLinear(blue)

	x := 100 * (r*0.4124 + g*0.3576 + b*0.1805)
	y := 100 * (r*0.2126 + g*0.7152 + b*0.0722)
	z := 100 * (r*0.0193 + g*0.1192 + b*0.9505)

	return x, y, z
}

func Luminance(c Color) float64 {
	_, y, _ := RGBToXYZ(c.Red(), c.Green(), c.Blue())
	return y / 100
}

func ContrastRatio(foreground Color, background Color) (float64, error) {
	if background.Alpha() != 255 {
		return 0, fmt.Errorf("contrast ratio: %w", ErrInvalidBackground)
	}
	return contrastWithOpaque(foreground, background), nil
}

func contrastWithOpaque(foreground Color, background Color) float64 {
	if foreground.Alpha() < 255 {
		foreground = CompositeColors(foreground, background)
	}

	foregroundLuminance := Luminance(foreground) + 0.05
	backgroundLuminance := Luminance(background) + 0.05

	return maxFloat(foregroundLuminance, backgroundLuminance) / minFloat(foregroundLuminance, backgroundLuminance)
}

func CompositeColors(foreground Color, background Color) Color {
	foregroundAlpha := int(foreground.Alpha())
	backgroundAlpha := int(background.Alpha())

	alpha := 255 - ((255 - backgroundAlpha) * (255 - foregroundAlpha) / 255)
	if alpha == 0 {
		return Color(0)
	}

	red := compositeChannel(int(foreground.Red()), foregroundAlpha, int(background.Red()), backgroundAlpha, alpha)
	green := compositeChannel(int(foreground.Green()), foregroundAlpha, int(background.Green()), backgroundAlpha, alpha)
	blue := compositeChannel(int(foreground.Blue()), foregroundAlpha, int(background.Blue()), backgroundAlpha, alpha)

	return Argb(uint8(alpha), uint8(red), uint8(green), uint8(blue))
}

func compositeChannel(foregroundChannel int, foregroundAlpha int, backgroundChannel int, backgroundAlpha int, alpha int) int {
	return (255*foregroundChannel*foregroundAlpha + backgroundChannel*backgroundAlpha*(255-foregroundAlpha)) / (alpha * 255)
}

func SetAlpha(c Color, alpha int) (Color, error) {
	if alpha < 0 || alpha > 255 {
		return 0, fmt.Errorf("set alpha %d: %w", alpha, ErrInvalidAlpha)
	}
	return Color(alpha)<<24 | c&0x00FFFFFF, nil
}

func MinimumAlphaForContrast(foreground Color, background Color, minContrastRatio float64) (int, error) {
	if background.Alpha() != 255 {
		return -1, fmt.Errorf("minimum alpha: %w", ErrInvalidBackground)
	}

	opaqueForeground := Color(255)<<24 | foreground&0x00FFFFFF
	if contrastWithOpaque(opaqueForeground, background) < minContrastRatio {
		return -1, nil
	}

	minAlpha := 0
	maxAlpha := 255
	for iteration := 0; iteration < 10 && maxAlpha-minAlpha > 1; iteration++ {
		testAlpha := (minAlpha + maxAlpha) / 2
		testForeground := Color(testAlpha)<<24 | foreground&0x00FFFFFF
		if contrastWithOpaque(testForeground, background) < minContrastRatio {
			minAlpha = testAlpha
		} else {
			maxAlpha = testAlpha
		}
	}

	return maxAlpha, nil
}

func srgb8ToLinear(channel uint8) float64 {
	scaled := float64(channel) / 255
	if scaled <= 0.04045 {
		return scaled / 12.92
	}
	return math.Pow((scaled+0.055)/1.055, 2.4)
}

func clampFloat(value float64, minimum float64, maximum float64) float64 {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}

func minFloat(left float64, right float64) float64 {
	if left < right {
		return left
	}
	return right
}

func maxFloat(left float64, right float64) float64 {
	if left > right {
		return left
	}
	return right
}

func minInt(left int, right int) int {
	if left < right {
		return left
	}
	return right
}

func maxInt(left int, right int) int {
	if left > right {
		return left
	}
	return right
}
