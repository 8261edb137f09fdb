package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Paths struct {
	BaseDir     string
	CacheDBPath string
}

func ResolvePaths(appSlug string) (Paths, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve user cache dir: %w", err)
	}

	baseDir := filepath.Join(cacheDir, appSlug)
	cacheDBPath := filepath.Join(baseDir, "palettes.db")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("create app cache dir: %w", err)
	}

	return Paths{
		BaseDir:     baseDir,
		CacheDBPath: cacheDBPath,
	}, nil
}
