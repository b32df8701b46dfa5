// Package watch reloads the project catalog when its file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc re-reads the catalog after a change.
type ReloadFunc func(ctx context.Context) error

// Watcher watches one catalog file through its parent directory, so editors
// that save by renaming a temp file over the catalog are still seen.
type Watcher struct {
	path     string
	dir      string
	debounce time.Duration
	reload   ReloadFunc
	logger   *log.Logger
}

// New builds a watcher for the catalog at path.
func New(path string, debounce time.Duration, reload ReloadFunc) (*Watcher, error) {
	if reload == nil {
		return nil, errors.New("reload func is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		reload:   reload,
		logger:   log.Default(),
	}, nil
}

// Run watches until ctx is done. Reload failures are logged and do not stop
// the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil {
		return errors.New("catalog watcher is nil")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fsw.Close()
	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Printf("catalog watch started path=%s", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Printf("catalog watch stopped path=%s", w.path)
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("catalog watch error path=%s err=%v", w.path, err)
		case <-timer.C:
			if err := w.reload(ctx); err != nil {
				w.logger.Printf("catalog reload failed path=%s err=%v", w.path, err)
				continue
			}
			w.logger.Printf("catalog reloaded path=%s", w.path)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
