package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"swatch/internal/artwork"
	"swatch/internal/cache"
)

// debouncer coalesces rapid event bursts into a single callback per file.
type debouncer struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	delay  time.Duration
	onFire func(path string)
}

func newDebouncer(delay time.Duration, onFire func(path string)) *debouncer {
	return &debouncer{
		timers: make(map[string]*time.Timer),
		delay:  delay,
		onFire: onFire,
	}
}

func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[path]; ok {
		t.Reset(d.delay)
		return
	}
	d.timers[path] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()
		d.onFire(path)
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, t := range d.timers {
		t.Stop()
		delete(d.timers, path)
	}
}

func runWatchMode(dirs []string, cfg *Config, store *cache.Store, encoder *json.Encoder) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	var emitMu sync.Mutex
	deb := newDebouncer(cfg.Watch.DebounceDuration(), func(path string) {
		emitMu.Lock()
		defer emitMu.Unlock()
		if err := emitPalette(path, cfg, store, encoder); err != nil {
			log.Printf("%s: %v", path, err)
		}
	})
	defer deb.stop()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		log.Printf("watching %s", dir)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if artwork.IsSupportedPath(event.Name) {
				deb.trigger(event.Name)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", watchErr)
		case <-signals:
			return nil
		}
	}
}
