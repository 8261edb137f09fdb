package artwork

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/gen2brain/avif"
	"go.senan.xyz/taglib"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".m4b":  true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".wav":  true,
	".wv":   true,
	".aiff": true,
	".ape":  true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".avif": true,
}

func normalizedExtension(path string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSpace(path)))
}

func IsAudioPath(path string) bool {
	return audioExtensions[normalizedExtension(path)]
}

func IsImagePath(path string) bool {
	return imageExtensions[normalizedExtension(path)]
}

func IsSupportedPath(path string) bool {
	return IsAudioPath(path) || IsImagePath(path)
}

// Load decodes the image content of path. Image files are decoded directly;
// audio files yield their embedded front-cover picture.
func Load(path string) (image.Image, error) {
	if IsAudioPath(path) {
		return loadEmbeddedCover(path)
	}
	return loadImageFile(path)
}

func loadImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	return decoded, nil
}

func loadEmbeddedCover(path string) (image.Image, error) {
	imageData, err := taglib.ReadImage(path)
	if err != nil {
		return nil, fmt.Errorf("read embedded cover: %w", err)
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("no embedded cover in %s", path)
	}

	decoded, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode embedded cover %s: %w", path, err)
	}

	return decoded, nil
}
