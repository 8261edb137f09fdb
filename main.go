package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"swatch/internal/artwork"
	"swatch/internal/cache"
	"swatch/internal/config"
	"swatch/internal/palette"
)

func main() {
	configPath := flag.String("config", "", "path to a toml config file")
	maxColors := flag.Int("max-colors", 0, "maximum number of extracted colors")
	resizeArea := flag.Int("resize-area", 0, "downscale the source below this pixel count before quantization")
	maxDimension := flag.Int("max-dimension", 0, "downscale the source below this longest edge, overrides -resize-area")
	noDefaultFilter := flag.Bool("no-default-filter", false, "keep near-black, near-white and skin-tone colors")
	noCache := flag.Bool("no-cache", false, "bypass the palette cache")
	watchMode := flag.Bool("watch", false, "treat arguments as directories and re-extract on change")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: swatch [flags] <image or audio file ...>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *maxColors > 0 {
		cfg.Extract.MaxColors = *maxColors
	}
	if *resizeArea > 0 {
		cfg.Extract.ResizeArea = *resizeArea
		cfg.Extract.ResizeMaxDimension = -1
	}
	if *maxDimension > 0 {
		cfg.Extract.ResizeMaxDimension = *maxDimension
	}
	if *noDefaultFilter {
		cfg.Extract.DisableDefaultFilter = true
	}
	if *noCache {
		cfg.Cache.Disabled = true
	}

	if err := run(cfg, *watchMode, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *Config, watchMode bool, args []string) error {
	var store *cache.Store
	if !cfg.Cache.Disabled {
		paths, err := config.ResolvePaths("swatch")
		if err != nil {
			return err
		}
		store, err = cache.Open(paths.CacheDBPath, cfg.Cache.MaxEntries)
		if err != nil {
			log.Printf("palette cache disabled: %v", err)
		} else {
			defer store.Close()
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if watchMode {
		return runWatchMode(args, cfg, store, encoder)
	}

	failed := 0
	for _, path := range args {
		if err := emitPalette(path, cfg, store, encoder); err != nil {
			log.Printf("%s: %v", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d extractions failed", failed, len(args))
	}

	return nil
}

func emitPalette(path string, cfg *Config, store *cache.Store, encoder *json.Encoder) error {
	if !artwork.IsSupportedPath(path) {
		return errors.New("unsupported file type")
	}

	fingerprint := optionsFingerprint(cfg.Extract)

	contentHash := ""
	if store != nil {
		hash, err := cache.HashFile(path)
		if err != nil {
			log.Printf("cache hash failed: %v", err)
		} else {
			contentHash = hash
			payload, ok, err := store.Lookup(hash, fingerprint)
			if err != nil {
				log.Printf("cache lookup failed: %v", err)
			} else if ok {
				return encoder.Encode(json.RawMessage(payload))
			}
		}
	}

	img, err := artwork.Load(path)
	if err != nil {
		return err
	}

	builder := palette.FromImage(img).
		MaximumColorCount(cfg.Extract.MaxColors).
		ResizeBitmapArea(cfg.Extract.ResizeArea)
	if cfg.Extract.ResizeMaxDimension > 0 {
		builder.ResizeBitmapMaxDimension(cfg.Extract.ResizeMaxDimension)
	}
	if cfg.Extract.DisableDefaultFilter {
		builder.ClearFilters()
	}

	generated, err := builder.Generate()
	if err != nil {
		return fmt.Errorf("generate palette: %w", err)
	}

	payload, err := json.Marshal(buildReport(path, generated))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if store != nil && contentHash != "" {
		if err := store.Store(contentHash, fingerprint, payload); err != nil {
			log.Printf("cache store failed: %v", err)
		}
	}

	return encoder.Encode(json.RawMessage(payload))
}
