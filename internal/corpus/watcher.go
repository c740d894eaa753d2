package corpus

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 400 * time.Millisecond

// Watcher reloads the store when its corpus file changes on disk. Editors
// and ingestion jobs often write the file in several events, so reloads are
// debounced. The watch is placed on the containing directory because many
// writers replace the file via rename, which drops a watch on the file itself.
type Watcher struct {
	store    *Store
	logger   *zap.Logger
	debounce time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	fsw      *fsnotify.Watcher
	started  bool
	stopOnce sync.Once
	done     chan struct{}
}

// NewWatcher creates a watcher for the store's corpus file.
func NewWatcher(store *Store, logger *zap.Logger) *Watcher {
	return &Watcher{
		store:    store,
		logger:   logger,
		debounce: reloadDebounce,
		done:     make(chan struct{}),
	}
}

// Start begins watching. It runs until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	dir := filepath.Dir(w.store.Path())
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		w.mu.Unlock()
		return err
	}
	w.fsw = fsw
	w.started = true
	w.mu.Unlock()

	w.logger.Debug("corpus watcher started", zap.String("dir", dir))
	go w.run(ctx)
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	target := filepath.Clean(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.scheduleReload()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.logger.Debug("corpus watcher error", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if err := w.store.Load(); err != nil {
			w.logger.Warn("corpus reload failed", zap.Error(err))
			return
		}
		w.logger.Info("corpus reloaded after file change", zap.Int("records", w.store.Len()))
	})
}

// Stop halts the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		if w.fsw != nil {
			_ = w.fsw.Close()
		}
		w.mu.Unlock()
	})
}
