package palette

import (
	"math"
	"sort"
)

const (
	quantizeWordWidth = 5
	quantizeWordMask  = (1 << quantizeWordWidth) - 1
	quantizeShift     = 8 - quantizeWordWidth
	histogramSize     = 1 << (quantizeWordWidth * 3)
)

const (
	dimensionRed = iota
	dimensionGreen
	dimensionBlue
)

// vbox is an axis-aligned box over a contiguous range of the shared
// distinct-color array. It never owns the arrays it indexes into; all color
// and histogram storage stays with the quantizer.
type vbox struct {
	lower int
	upper int

	population int

	minRed   int
	maxRed   int
	minGreen int
	maxGreen int
	minBlue  int
	maxBlue  int
}

func newVBox(lower int, upper int, colors []int, histogram []uint32) vbox {
	box := vbox{lower: lower, upper: upper}
	box.fit(colors, histogram)
	return box
}

// fit recomputes the tight channel bounds and the population for the current
// index range.
func (v *vbox) fit(colors []int, histogram []uint32) {
	minRed, minGreen, minBlue := quantizeWordMask, quantizeWordMask, quantizeWordMask
	maxRed, maxGreen, maxBlue := 0, 0, 0
	population := 0

	for index := v.lower; index <= v.upper; index++ {
		key := colors[index]
		population += int(histogram[key])

		red := quantizedRed(key)
		green := quantizedGreen(key)
		blue := quantizedBlue(key)
		if red < minRed {
			minRed = red
		}
		if red > maxRed {
			maxRed = red
		}
		if green < minGreen {
			minGreen = green
		}
		if green > maxGreen {
			maxGreen = green
		}
		if blue < minBlue {
			minBlue = blue
		}
		if blue > maxBlue {
			maxBlue = blue
		}
	}

	v.minRed, v.maxRed = minRed, maxRed
	v.minGreen, v.maxGreen = minGreen, maxGreen
	v.minBlue, v.maxBlue = minBlue, maxBlue
	v.population = population
}

func (v *vbox) volume() int {
	return (v.maxRed - v.minRed + 1) * (v.maxGreen - v.minGreen + 1) * (v.maxBlue - v.minBlue + 1)
}

func (v *vbox) colorCount() int {
	return v.upper - v.lower + 1
}

func (v *vbox) canSplit() bool {
	return v.colorCount() > 1
}

func (v *vbox) longestDimension() int {
	redLength := v.maxRed - v.minRed
	greenLength := v.maxGreen - v.minGreen
	blueLength := v.maxBlue - v.minBlue

	if redLength >= greenLength && redLength >= blueLength {
		return dimensionRed
	}
	if greenLength >= blueLength {
		return dimensionGreen
	}
	return dimensionBlue
}

// split cuts this box at its population midpoint along the longest dimension
// and returns the two halves, both refitted.
func (v *vbox) split(colors []int, histogram []uint32) (vbox, vbox) {
	splitIndex := v.findSplitIndex(colors, histogram)

	left := newVBox(v.lower, splitIndex, colors, histogram)
	right := newVBox(splitIndex+1, v.upper, colors, histogram)
	return left, right
}

func (v *vbox) findSplitIndex(colors []int, histogram []uint32) int {
	dimension := v.longestDimension()

	// Remap so the split dimension occupies the high bits, sort the
	// sub-range on the remapped value, then remap back. The keys are
	// distinct, so ascending integer order is a stable total order.
	modifySignificantWord(colors, dimension, v.lower, v.upper)
	sort.Ints(colors[v.lower : v.upper+1])
	modifySignificantWord(colors, dimension, v.lower, v.upper)

	midPopulation := v.population / 2
	runningPopulation := 0
	for index := v.lower; index <= v.upper; index++ {
		runningPopulation += int(histogram[colors[index]])
		if runningPopulation >= midPopulation {
			return minInt(v.upper-1, index)
		}
	}

	return v.lower
}

// averageColor is the population-weighted mean of the box, upshifted back to
// eight bits per channel.
func (v *vbox) averageColor(colors []int, histogram []uint32) (Color, int) {
	redSum := 0
	greenSum := 0
	blueSum := 0
	totalPopulation := 0

	for index := v.lower; index <= v.upper; index++ {
		key := colors[index]
		count := int(histogram[key])
		totalPopulation += count
		redSum += count * quantizedRed(key)
		greenSum += count * quantizedGreen(key)
		blueSum += count * quantizedBlue(key)
	}

	if totalPopulation == 0 {
		return Color(0), 0
	}

	redMean := int(math.Round(float64(redSum) / float64(totalPopulation)))
	greenMean := int(math.Round(float64(greenSum) / float64(totalPopulation)))
	blueMean := int(math.Round(float64(blueSum) / float64(totalPopulation)))

	return approximateToRGB888(redMean, greenMean, blueMean), totalPopulation
}

// modifySignificantWord swaps channel words so that the requested dimension
// sits in the top five bits. Applying it twice restores the original keys.
func modifySignificantWord(colors []int, dimension int, lower int, upper int) {
	switch dimension {
	case dimensionRed:
		// Red already occupies the high bits.
	case dimensionGreen:
		for index := lower; index <= upper; index++ {
			key := colors[index]
			colors[index] = quantizedGreen(key)<<(quantizeWordWidth+quantizeWordWidth) |
				quantizedRed(key)<<quantizeWordWidth |
				quantizedBlue(key)
		}
	case dimensionBlue:
		for index := lower; index <= upper; index++ {
			key := colors[index]
			colors[index] = quantizedBlue(key)<<(quantizeWordWidth+quantizeWordWidth) |
				quantizedGreen(key)<<quantizeWordWidth |
				quantizedRed(key)
		}
	}
}

func quantizeColor(c Color) int {
	red := quantizeChannel(c.Red())
	green := quantizeChannel(c.Green())
	blue := quantizeChannel(c.Blue())
	return red<<(quantizeWordWidth+quantizeWordWidth) | green<<quantizeWordWidth | blue
}

func quantizeChannel(value uint8) int {
	return int(value) >> quantizeShift
}

func quantizedRed(key int) int {
	return (key >> (quantizeWordWidth + quantizeWordWidth)) & quantizeWordMask
}

func quantizedGreen(key int) int {
	return (key >> quantizeWordWidth) & quantizeWordMask
}

func quantizedBlue(key int) int {
	return key & quantizeWordMask
}

// approximateToRGB888 upshifts five-bit channels without bit replication,
// matching the quantization applied on the way in.
func approximateToRGB888(red int, green int, blue int) Color {
	return Rgb(uint8(red<<quantizeShift), uint8(green<<quantizeShift), uint8(blue<<quantizeShift))
}

func approximateKeyToRGB888(key int) Color {
	return approximateToRGB888(quantizedRed(key), quantizedGreen(key), quantizedBlue(key))
}
