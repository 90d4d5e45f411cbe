package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/plankworks/cabd/pkg/model"
)

// DefaultDebounce coalesces editor write bursts (many editors write a config
// file several times per save) into one regeneration.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a config file and invokes a callback with the freshly
// loaded config whenever it changes on disk. Events are debounced.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64

	done chan struct{}
}

// Watch starts watching path. onChange runs on the watcher goroutine after
// each debounced change; onError receives non-fatal watch errors and may be
// nil.
func Watch(path string, debounce time.Duration, onChange func(model.ModuleConfig), onError func(error)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory, not the file: editors that rename-and-replace
	// would otherwise drop the watch on first save.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{path: path, fw: fw, debounce: debounce, done: make(chan struct{})}
	go w.run(onChange, onError)
	return w, nil
}

func (w *Watcher) run(onChange func(model.ModuleConfig), onError func(error)) {
	base := filepath.Base(w.path)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.trigger(func() {
				cfg, err := Load(w.path)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					return
				}
				onChange(cfg)
			})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		case <-w.done:
			return
		}
	}
}

// trigger schedules the callback after the debounce window, cancelling any
// previously scheduled run. Only the most recently scheduled callback fires.
func (w *Watcher) trigger(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	seq := w.seq

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		stale := seq != w.seq
		if !stale {
			w.timer = nil
		}
		w.mu.Unlock()
		if stale {
			return
		}
		callback()
	})
}

// Close stops the watcher and cancels any pending callback.
func (w *Watcher) Close() error {
	close(w.done)
	w.mu.Lock()
	w.seq++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.fw.Close()
}
