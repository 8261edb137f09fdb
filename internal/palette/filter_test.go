package palette

import "testing"

func TestDefaultFilter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hsl     HSL
		allowed bool
	}{
		{"near black", HSL{Hue: 0, Saturation: 0, Lightness: 0.03}, false},
		{"black boundary", HSL{Hue: 0, Saturation: 0, Lightness: 0.05}, false},
		{"just above black", HSL{Hue: 0, Saturation: 0.5, Lightness: 0.06}, true},
		{"near white", HSL{Hue: 0, Saturation: 0, Lightness: 0.97}, false},
		{"white boundary", HSL{Hue: 0, Saturation: 0, Lightness: 0.95}, false},
		{"just below white", HSL{Hue: 300, Saturation: 0.5, Lightness: 0.94}, true},
		{"i-line band", HSL{Hue: 20, Saturation: 0.5, Lightness: 0.5}, false},
		{"i-line low hue edge", HSL{Hue: 10, Saturation: 0.82, Lightness: 0.5}, false},
		{"i-line high hue edge", HSL{Hue: 37, Saturation: 0.1, Lightness: 0.5}, false},
		{"saturated red band", HSL{Hue: 20, Saturation: 0.9, Lightness: 0.5}, true},
		{"pure red", HSL{Hue: 0, Saturation: 1, Lightness: 0.5}, true},
		{"hue past band", HSL{Hue: 38, Saturation: 0.5, Lightness: 0.5}, true},
	}

	for _, tc := range cases {
		rgb := HSLToRGB(tc.hsl)
		if got := FilterDefault.IsAllowed(rgb, tc.hsl); got != tc.allowed {
			t.Fatalf("%s: allowed = %t, want %t", tc.name, got, tc.allowed)
		}
	}
}

type rejectEverything struct{}

func (rejectEverything) IsAllowed(rgb Color, hsl HSL) bool {
	return false
}

func TestFilterChainRequiresAllFilters(t *testing.T) {
	t.Parallel()

	hsl := HSL{Hue: 200, Saturation: 0.5, Lightness: 0.5}
	rgb := HSLToRGB(hsl)

	if !allFiltersAllow([]Filter{FilterDefault}, rgb, hsl) {
		t.Fatal("default filter should allow a mid-lightness blue")
	}
	if allFiltersAllow([]Filter{FilterDefault, rejectEverything{}}, rgb, hsl) {
		t.Fatal("a single rejecting filter should veto the chain")
	}
	if !allFiltersAllow(nil, rgb, hsl) {
		t.Fatal("an empty chain allows everything")
	}
}
