package palette

type Filter interface {
	IsAllowed(rgb Color, hsl HSL) bool
}

const (
	blackMaxLightness     = 0.05
	whiteMinLightness     = 0.95
	redILineHueMin        = 10.0
	redILineHueMax        = 37.0
	redILineMaxSaturation = 0.82
)

// FilterDefault rejects colors too close to black or white and the reddish
// low-saturation band that mostly captures skin tones. Consumers that want
// those colors back clear the filter chain on the builder.
var FilterDefault Filter = defaultFilter{}

type defaultFilter struct{}

func (defaultFilter) IsAllowed(rgb Color, hsl HSL) bool {
	return !isNearBlack(hsl) && !isNearWhite(hsl) && !isNearRedILine(hsl)
}

func isNearBlack(hsl HSL) bool {
	return hsl.Lightness <= blackMaxLightness
}

func isNearWhite(hsl HSL) bool {
	return hsl.Lightness >= whiteMinLightness
}

func isNearRedILine(hsl HSL) bool {
	return hsl.Hue >= redILineHueMin && hsl.Hue <= redILineHueMax && hsl.Saturation <= redILineMaxSaturation
}

func allFiltersAllow(filters []Filter, rgb Color, hsl HSL) bool {
	for _, filter := range filters {
		if !filter.IsAllowed(rgb, hsl) {
			return false
		}
	}
	return true
}
