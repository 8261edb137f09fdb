package palette

const (
	indexMin    = 0
	indexTarget = 1
	indexMax    = 2

	indexWeightSaturation = 0
	indexWeightLightness  = 1
	indexWeightPopulation = 2

	defaultWeightSaturation = 0.24
	defaultWeightLightness  = 0.52
	defaultWeightPopulation = 0.24

	targetDarkLightnessMax   = 0.45
	targetDarkLightness      = 0.26
	targetNormalLightnessMin = 0.3
	targetNormalLightness    = 0.5
	targetNormalLightnessMax = 0.7
	targetLightLightnessMin  = 0.55
	targetLightLightness     = 0.74

	targetVibrantSaturationMin = 0.35
	targetVibrantSaturation    = 1.0
	targetMutedSaturation      = 0.3
	targetMutedSaturationMax   = 0.4
)

// Target is an immutable scoring profile: saturation and lightness ranges,
// component weights, and whether a selected swatch is withheld from later
// targets.
type Target struct {
	saturation [3]float64
	lightness  [3]float64
	weights    [3]float64
	exclusive  bool
}

var (
	TargetLightVibrant = buildTarget(func(b *TargetBuilder) {
		b.MinimumLightness(targetLightLightnessMin)
		b.TargetLightness(targetLightLightness)
		b.MinimumSaturation(targetVibrantSaturationMin)
		b.TargetSaturation(targetVibrantSaturation)
	})
	TargetVibrant = buildTarget(func(b *TargetBuilder) {
		b.MinimumLightness(targetNormalLightnessMin)
		b.TargetLightness(targetNormalLightness)
		b.MaximumLightness(targetNormalLightnessMax)
		b.MinimumSaturation(targetVibrantSaturationMin)
		b.TargetSaturation(targetVibrantSaturation)
	})
	TargetDarkVibrant = buildTarget(func(b *TargetBuilder) {
		b.TargetLightness(targetDarkLightness)
		b.MaximumLightness(targetDarkLightnessMax)
		b.MinimumSaturation(targetVibrantSaturationMin)
		b.TargetSaturation(targetVibrantSaturation)
	})
	TargetLightMuted = buildTarget(func(b *TargetBuilder) {
		b.MinimumLightness(targetLightLightnessMin)
		b.TargetLightness(targetLightLightness)
		b.TargetSaturation(targetMutedSaturation)
		b.MaximumSaturation(targetMutedSaturationMax)
	})
	TargetMuted = buildTarget(func(b *TargetBuilder) {
		b.MinimumLightness(targetNormalLightnessMin)
		b.TargetLightness(targetNormalLightness)
		b.MaximumLightness(targetNormalLightnessMax)
		b.TargetSaturation(targetMutedSaturation)
		b.MaximumSaturation(targetMutedSaturationMax)
	})
	TargetDarkMuted = buildTarget(func(b *TargetBuilder) {
		b.TargetLightness(targetDarkLightness)
		b.MaximumLightness(targetDarkLightnessMax)
		b.TargetSaturation(targetMutedSaturation)
		b.MaximumSaturation(targetMutedSaturationMax)
	})
)

func defaultTargets() []*Target {
	return []*Target{
		TargetLightVibrant,
		TargetVibrant,
		TargetDarkVibrant,
		TargetLightMuted,
		TargetMuted,
		TargetDarkMuted,
	}
}

func buildTarget(configure func(*TargetBuilder)) *Target {
	builder := NewTargetBuilder()
	configure(builder)
	return builder.Build()
}

func (t *Target) MinimumSaturation() float64 { return t.saturation[indexMin] }
func (t *Target) TargetSaturation() float64  { return t.saturation[indexTarget] }
func (t *Target) MaximumSaturation() float64 { return t.saturation[indexMax] }
func (t *Target) MinimumLightness() float64  { return t.lightness[indexMin] }
func (t *Target) TargetLightness() float64   { return t.lightness[indexTarget] }
func (t *Target) MaximumLightness() float64  { return t.lightness[indexMax] }
func (t *Target) SaturationWeight() float64  { return t.weights[indexWeightSaturation] }
func (t *Target) LightnessWeight() float64   { return t.weights[indexWeightLightness] }
func (t *Target) PopulationWeight() float64  { return t.weights[indexWeightPopulation] }
func (t *Target) Exclusive() bool            { return t.exclusive }

// normalizedWeights scales each positive weight so that the positive entries
// sum to 1. Zero weights stay zero; an all-zero profile scores zero.
func (t *Target) normalizedWeights() [3]float64 {
	var sum float64
	for _, weight := range t.weights {
		if weight > 0 {
			sum += weight
		}
	}
	if sum == 0 {
		return [3]float64{}
	}

	normalized := t.weights
	for index, weight := range normalized {
		if weight > 0 {
			normalized[index] = weight / sum
		}
	}
	return normalized
}

type TargetBuilder struct {
	target Target
}

func NewTargetBuilder() *TargetBuilder {
	return &TargetBuilder{
		target: Target{
			saturation: [3]float64{0, 0.5, 1},
			lightness:  [3]float64{0, 0.5, 1},
			weights:    [3]float64{defaultWeightSaturation, defaultWeightLightness, defaultWeightPopulation},
			exclusive:  true,
		},
	}
}

func (b *TargetBuilder) MinimumSaturation(value float64) *TargetBuilder {
	b.target.saturation[indexMin] = value
	return b
}

func (b *TargetBuilder) TargetSaturation(value float64) *TargetBuilder {
	b.target.saturation[indexTarget] = value
	return b
}

func (b *TargetBuilder) MaximumSaturation(value float64) *TargetBuilder {
	b.target.saturation[indexMax] = value
	return b
}

func (b *TargetBuilder) MinimumLightness(value float64) *TargetBuilder {
	b.target.lightness[indexMin] = value
	return b
}

func (b *TargetBuilder) TargetLightness(value float64) *TargetBuilder {
	b.target.lightness[indexTarget] = value
	return b
}

func (b *TargetBuilder) MaximumLightness(value float64) *TargetBuilder {
	b.target.lightness[indexMax] = value
	return b
}

func (b *TargetBuilder) SaturationWeight(value float64) *TargetBuilder {
	b.target.weights[indexWeightSaturation] = value
	return b
}

func (b *TargetBuilder) LightnessWeight(value float64) *TargetBuilder {
	b.target.weights[indexWeightLightness] = value
	return b
}

func (b *TargetBuilder) PopulationWeight(value float64) *TargetBuilder {
	b.target.weights[indexWeightPopulation] = value
	return b
}

func (b *TargetBuilder) Exclusive(exclusive bool) *TargetBuilder {
	b.target.exclusive = exclusive
	return b
}

func (b *TargetBuilder) Build() *Target {
	built := b.target
	return &built
}
