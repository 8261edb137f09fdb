package main

import (
	"fmt"

	"swatch/internal/palette"
)

type SwatchReport struct {
	Hex            string      `json:"hex"`
	Red            int         `json:"r"`
	Green          int         `json:"g"`
	Blue           int         `json:"b"`
	Population     int         `json:"population"`
	HSL            palette.HSL `json:"hsl"`
	TitleTextColor string      `json:"titleTextColor"`
	BodyTextColor  string      `json:"bodyTextColor"`
}

type Report struct {
	Path       string                   `json:"path"`
	Swatches   []SwatchReport           `json:"swatches"`
	Dominant   *SwatchReport            `json:"dominant,omitempty"`
	Selections map[string]*SwatchReport `json:"selections"`
}

func buildReport(path string, p *palette.Palette) Report {
	swatches := p.Swatches()

	report := Report{
		Path:       path,
		Swatches:   make([]SwatchReport, 0, len(swatches)),
		Selections: make(map[string]*SwatchReport, 6),
	}

	for _, swatch := range swatches {
		report.Swatches = append(report.Swatches, swatchReport(swatch))
	}
	if dominant := p.DominantSwatch(); dominant != nil {
		dominantReport := swatchReport(dominant)
		report.Dominant = &dominantReport
	}

	selections := map[string]*palette.Swatch{
		"lightVibrant": p.LightVibrantSwatch(),
		"vibrant":      p.VibrantSwatch(),
		"darkVibrant":  p.DarkVibrantSwatch(),
		"lightMuted":   p.LightMutedSwatch(),
		"muted":        p.MutedSwatch(),
		"darkMuted":    p.DarkMutedSwatch(),
	}
	for name, selected := range selections {
		if selected == nil {
			report.Selections[name] = nil
			continue
		}
		selectedReport := swatchReport(selected)
		report.Selections[name] = &selectedReport
	}

	return report
}

func swatchReport(swatch *palette.Swatch) SwatchReport {
	rgb := swatch.RGB()
	return SwatchReport{
		Hex:            swatch.Hex(),
		Red:            int(rgb.Red()),
		Green:          int(rgb.Green()),
		Blue:           int(rgb.Blue()),
		Population:     swatch.Population(),
		HSL:            swatch.HSL(),
		TitleTextColor: argbHex(swatch.TitleTextColor()),
		BodyTextColor:  argbHex(swatch.BodyTextColor()),
	}
}

func argbHex(c palette.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func optionsFingerprint(options ExtractConfig) string {
	return fmt.Sprintf(
		"mc:%d|ra:%d|rd:%d|ndf:%t",
		options.MaxColors,
		options.ResizeArea,
		options.ResizeMaxDimension,
		options.DisableDefaultFilter,
	)
}
