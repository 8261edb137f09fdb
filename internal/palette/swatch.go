package palette

const (
	minContrastTitleText = 3.0
	minContrastBodyText  = 4.5
)

// Swatch is a single representative color together with the number of source
// pixels it stands for. HSL and overlay text colors are derived on first use.
type Swatch struct {
	rgb        Color
	population int

	hslComputed bool
	hsl         HSL

	textColorsComputed bool
	titleTextColor     Color
	bodyTextColor      Color
}

func NewSwatch(rgb Color, population int) *Swatch {
	return &Swatch{
		rgb:        rgb | 0xFF000000,
		population: population,
	}
}

func (s *Swatch) RGB() Color {
	return s.rgb
}

func (s *Swatch) Hex() string {
	return s.rgb.Hex()
}

func (s *Swatch) Population() int {
	return s.population
}

func (s *Swatch) HSL() HSL {
	if !s.hslComputed {
		s.hsl = RGBToHSL(s.rgb.Red(), s.rgb.Green(), s.rgb.Blue())
		s.hslComputed = true
	}
	return s.hsl
}

// TitleTextColor is a color guaranteed to meet a 3.0:1 contrast ratio when
// drawn over this swatch. The alpha channel carries the minimum opacity that
// still passes.
func (s *Swatch) TitleTextColor() Color {
	s.ensureTextColors()
	return s.titleTextColor
}

// BodyTextColor is the 4.5:1 counterpart of TitleTextColor.
func (s *Swatch) BodyTextColor() Color {
	s.ensureTextColors()
	return s.bodyTextColor
}

func (s *Swatch) Equal(other *Swatch) bool {
	if other == nil {
		return false
	}
	return s.rgb == other.rgb && s.population == other.population
}

func (s *Swatch) ensureTextColors() {
	if s.textColorsComputed {
		return
	}
	s.textColorsComputed = true

	lightBodyAlpha, _ := MinimumAlphaForContrast(ColorWhite, s.rgb, minContrastBodyText)
	lightTitleAlpha, _ := MinimumAlphaForContrast(ColorWhite, s.rgb, minContrastTitleText)

	if lightBodyAlpha != -1 && lightTitleAlpha != -1 {
		s.bodyTextColor, _ = SetAlpha(ColorWhite, lightBodyAlpha)
		s.titleTextColor, _ = SetAlpha(ColorWhite, lightTitleAlpha)
		return
	}

	darkBodyAlpha, _ := MinimumAlphaForContrast(ColorBlack, s.rgb, minContrastBodyText)
	darkTitleAlpha, _ := MinimumAlphaForContrast(ColorBlack, s.rgb, minContrastTitleText)

	if darkBodyAlpha != -1 && darkTitleAlpha != -1 {
		s.bodyTextColor, _ = SetAlpha(ColorBlack, darkBodyAlpha)
		s.titleTextColor, _ = SetAlpha(ColorBlack, darkTitleAlpha)
		return
	}

	// Mismatched: each role independently takes whichever side passed.
	if lightBodyAlpha != -1 {
		s.bodyTextColor, _ = SetAlpha(ColorWhite, lightBodyAlpha)
	} else {
		s.bodyTextColor, _ = SetAlpha(ColorBlack, darkBodyAlpha)
	}
	if lightTitleAlpha != -1 {
		s.titleTextColor, _ = SetAlpha(ColorWhite, lightTitleAlpha)
	} else {
		s.titleTextColor, _ = SetAlpha(ColorBlack, darkTitleAlpha)
	}
}
