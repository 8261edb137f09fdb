package palette

import "container/heap"

// quantizePixels reduces a packed pixel buffer to at most maxColors swatches
// using median-cut over a 15-bit histogram. The pixel slice is rewritten in
// place with quantized keys. Alpha is ignored; callers composite translucent
// sources beforehand.
func quantizePixels(pixels []Color, maxColors int, filters []Filter) []*Swatch {
	if len(pixels) == 0 || maxColors <= 0 {
		return nil
	}

	histogram := make([]uint32, histogramSize)
	for index, pixel := range pixels {
		key := quantizeColor(pixel)
		pixels[index] = Color(key)
		histogram[key]++
	}

	distinctCount := 0
	for key, count := range histogram {
		if count == 0 {
			continue
		}
		if len(filters) > 0 {
			rgb := approximateKeyToRGB888(key)
			hsl := RGBToHSL(rgb.Red(), rgb.Green(), rgb.Blue())
			if !allFiltersAllow(filters, rgb, hsl) {
				histogram[key] = 0
				continue
			}
		}
		distinctCount++
	}

	colors := make([]int, 0, distinctCount)
	for key, count := range histogram {
		if count > 0 {
			colors = append(colors, key)
		}
	}

	if len(colors) <= maxColors {
		swatches := make([]*Swatch, 0, len(colors))
		for _, key := range colors {
			swatches = append(swatches, NewSwatch(approximateKeyToRGB888(key), int(histogram[key])))
		}
		return swatches
	}

	return splitBoxes(colors, histogram, maxColors, filters)
}

func splitBoxes(colors []int, histogram []uint32, maxColors int, filters []Filter) []*Swatch {
	queue := &vboxQueue{}
	heap.Init(queue)
	queue.pushBox(newVBox(0, len(colors)-1, colors, histogram))

	for queue.Len() < maxColors {
		box := queue.popBox()
		if !box.canSplit() {
			queue.pushBox(box)
			break
		}

		left, right := box.split(colors, histogram)
		queue.pushBox(left)
		queue.pushBox(right)
	}

	swatches := make([]*Swatch, 0, queue.Len())
	for queue.Len() > 0 {
		box := queue.popBox()
		rgb, population := box.averageColor(colors, histogram)
		if population == 0 {
			continue
		}
		hsl := RGBToHSL(rgb.Red(), rgb.Green(), rgb.Blue())
		if !allFiltersAllow(filters, rgb, hsl) {
			continue
		}
		swatches = append(swatches, NewSwatch(rgb, population))
	}

	return swatches
}

type queuedVBox struct {
	box      vbox
	sequence int
}

// vboxQueue orders boxes by volume, largest first, breaking ties by enqueue
// order so identical inputs always split identically.
type vboxQueue struct {
	entries      []queuedVBox
	nextSequence int
}

func (q *vboxQueue) Len() int {
	return len(q.entries)
}

func (q *vboxQueue) Less(i int, j int) bool {
	leftVolume := q.entries[i].box.volume()
	rightVolume := q.entries[j].box.volume()
	if leftVolume != rightVolume {
		return leftVolume > rightVolume
	}
	return q.entries[i].sequence < q.entries[j].sequence
}

func (q *vboxQueue) Swap(i int, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *vboxQueue) Push(value any) {
	q.entries = append(q.entries, value.(queuedVBox))
}

func (q *vboxQueue) Pop() any {
	last := q.entries[len(q.entries)-1]
	q.entries = q.entries[:len(q.entries)-1]
	return last
}

func (q *vboxQueue) pushBox(box vbox) {
	heap.Push(q, queuedVBox{box: box, sequence: q.nextSequence})
	q.nextSequence++
}

func (q *vboxQueue) popBox() vbox {
	return heap.Pop(q).(queuedVBox).box
}
