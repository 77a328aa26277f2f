package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 400 * time.Millisecond

// Watcher watches the catalog file and invokes onChange after writes,
// debounced so editors and atomic-rename writers trigger one reload.
type Watcher struct {
	path     string
	onChange func()
	debounce time.Duration
	logger   *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for path. onChange runs on the watcher
// goroutine after each debounced change.
func NewWatcher(path string, onChange func(), logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: defaultDebounce,
		logger:   logger,
	}
}

// Start watches until ctx is cancelled. The parent directory is watched
// rather than the file itself so rename-over writes keep working.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return err
	}
	w.logger.Debug("catalog watcher started", zap.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("catalog change detected", zap.String("op", event.Op.String()))
			w.scheduleReload()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("catalog watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}

func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
