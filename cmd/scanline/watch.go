package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/fsnotify/fsnotify"

	"github.com/taigrr/scanline/pkg/render"
)

// reloadEvent asks the viewer to reload the model from disk.
type reloadEvent struct{}

// fileWatcher reports changes to one file. The parent directory is watched so
// editors that replace the file by rename are still seen.
type fileWatcher struct {
	w     *fsnotify.Watcher
	path  string
	delay time.Duration
}

func newFileWatcher(path string, delay time.Duration) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &fileWatcher{w: w, path: abs, delay: delay}, nil
}

// Run forwards changes to send until ctx is done or the watcher is closed.
// Bursts of events within the delay collapse into one reloadEvent.
func (fw *fileWatcher) Run(ctx context.Context, send func(uv.Event)) {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.delay)
			} else {
				timer.Reset(fw.delay)
			}
			fire = timer.C
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			render.Logger().Warn("watch error", "path", fw.path, "err", err)
		case <-fire:
			fire = nil
			render.Logger().Info("model changed", "path", fw.path)
			send(reloadEvent{})
		}
	}
}

// Close stops watching.
func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
