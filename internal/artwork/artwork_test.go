package artwork

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPathClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path  string
		audio bool
		image bool
	}{
		{"/music/track.mp3", true, false},
		{"/music/track.FLAC", true, false},
		{"cover.jpg", false, true},
		{"cover.AVIF", false, true},
		{"notes.txt", false, false},
		{"", false, false},
	}

	for _, tc := range cases {
		if got := IsAudioPath(tc.path); got != tc.audio {
			t.Fatalf("IsAudioPath(%q) = %t, want %t", tc.path, got, tc.audio)
		}
		if got := IsImagePath(tc.path); got != tc.image {
			t.Fatalf("IsImagePath(%q) = %t, want %t", tc.path, got, tc.image)
		}
		if got := IsSupportedPath(tc.path); got != (tc.audio || tc.image) {
			t.Fatalf("IsSupportedPath(%q) = %t", tc.path, got)
		}
	}
}

func TestLoadImageFile(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 80, B: 200, A: 255})
		}
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cover.png")
	if err := os.WriteFile(path, encoded.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	decoded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 4 {
		t.Fatalf("unexpected bounds %v", decoded.Bounds())
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
