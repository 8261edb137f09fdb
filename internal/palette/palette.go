package palette

// Palette is the read-only result of a generation: the full swatch list, the
// targets it was generated against, and the per-target selections.
type Palette struct {
	swatches []*Swatch
	targets  []*Target
	selected map[*Target]*Swatch
	dominant *Swatch
	used     map[Color]struct{}
}

func newPalette(swatches []*Swatch, targets []*Target) *Palette {
	p := &Palette{
		swatches: swatches,
		targets:  targets,
		selected: make(map[*Target]*Swatch, len(targets)),
		used:     make(map[Color]struct{}),
	}

	p.dominant = p.findDominantSwatch()

	for _, target := range p.targets {
		selected := p.maxScoredSwatchForTarget(target)
		p.selected[target] = selected
		if selected != nil && target.exclusive {
			p.used[selected.RGB()] = struct{}{}
		}
	}

	clear(p.used)

	return p
}

func (p *Palette) Swatches() []*Swatch {
	swatches := make([]*Swatch, len(p.swatches))
	copy(swatches, p.swatches)
	return swatches
}

func (p *Palette) Targets() []*Target {
	targets := make([]*Target, len(p.targets))
	copy(targets, p.targets)
	return targets
}

func (p *Palette) SwatchForTarget(target *Target) *Swatch {
	return p.selected[target]
}

func (p *Palette) ColorForTarget(target *Target, defaultColor Color) Color {
	if selected := p.selected[target]; selected != nil {
		return selected.RGB()
	}
	return defaultColor
}

func (p *Palette) DominantSwatch() *Swatch {
	return p.dominant
}

func (p *Palette) DominantColor(defaultColor Color) Color {
	if p.dominant != nil {
		return p.dominant.RGB()
	}
	return defaultColor
}

func (p *Palette) VibrantSwatch() *Swatch      { return p.SwatchForTarget(TargetVibrant) }
func (p *Palette) LightVibrantSwatch() *Swatch { return p.SwatchForTarget(TargetLightVibrant) }
func (p *Palette) DarkVibrantSwatch() *Swatch  { return p.SwatchForTarget(TargetDarkVibrant) }
func (p *Palette) MutedSwatch() *Swatch        { return p.SwatchForTarget(TargetMuted) }
func (p *Palette) LightMutedSwatch() *Swatch   { return p.SwatchForTarget(TargetLightMuted) }
func (p *Palette) DarkMutedSwatch() *Swatch    { return p.SwatchForTarget(TargetDarkMuted) }

func (p *Palette) VibrantColor(defaultColor Color) Color {
	return p.ColorForTarget(TargetVibrant, defaultColor)
}

func (p *Palette) LightVibrantColor(defaultColor Color) Color {
	return p.ColorForTarget(TargetLightVibrant, defaultColor)
}

func (p *Palette) DarkVibrantColor(defaultColor Color) Color {
	return p.ColorForTarget(TargetDarkVibrant, defaultColor)
}

func (p *Palette) MutedColor(defaultColor Color) Color {
	return p.ColorForTarget(TargetMuted, defaultColor)
}

func (p *Palette) LightMutedColor(defaultColor Color) Color {
	return p.ColorForTarget(TargetLightMuted, defaultColor)
}

func (p *Palette) DarkMutedColor(defaultColor Color) Color {
	return p.ColorForTarget(TargetDarkMuted, defaultColor)
}

func (p *Palette) findDominantSwatch() *Swatch {
	var dominant *Swatch
	for _, candidate := range p.swatches {
		if dominant == nil || candidate.Population() > dominant.Population() {
			dominant = candidate
		}
	}
	return dominant
}

// maxScoredSwatchForTarget returns the highest-scoring eligible swatch, with
// earlier swatches winning score ties.
func (p *Palette) maxScoredSwatchForTarget(target *Target) *Swatch {
	weights := target.normalizedWeights()

	maxPopulation := 1
	if p.dominant != nil {
		maxPopulation = p.dominant.Population()
	}

	var best *Swatch
	bestScore := 0.0
	for _, candidate := range p.swatches {
		if !p.shouldBeScoredForTarget(candidate, target) {
			continue
		}
		score := scoreSwatchForTarget(candidate, target, weights, maxPopulation)
		if best == nil || score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best
}

func (p *Palette) shouldBeScoredForTarget(candidate *Swatch, target *Target) bool {
	hsl := candidate.HSL()
	if hsl.Saturation < target.MinimumSaturation() || hsl.Saturation > target.MaximumSaturation() {
		return false
	}
	if hsl.Lightness < target.MinimumLightness() || hsl.Lightness > target.MaximumLightness() {
		return false
	}
	_, consumed := p.used[candidate.RGB()]
	return !consumed
}

func scoreSwatchForTarget(candidate *Swatch, target *Target, weights [3]float64, maxPopulation int) float64 {
	hsl := candidate.HSL()

	var saturationScore float64
	var lightnessScore float64
	var populationScore float64

	if weights[indexWeightSaturation] > 0 {
		saturationScore = weights[indexWeightSaturation] * (1 - absFloat(hsl.Saturation-target.TargetSaturation()))
	}
	if weights[indexWeightLightness] > 0 {
		lightnessScore = weights[indexWeightLightness] * (1 - absFloat(hsl.Lightness-target.TargetLightness()))
	}
	if weights[indexWeightPopulation] > 0 {
		populationScore = weights[indexWeightPopulation] * (float64(candidate.Population()) / float64(maxPopulation))
	}

	return saturationScore + lightnessScore + populationScore
}

func absFloat(value float64) float64 {
	if value < 0 {
		return -value
	}
	return value
}
