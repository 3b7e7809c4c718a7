package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file into a Store when it changes on
// disk. Each successful reload bumps the store generation, which
// makes every view recompute its column layout on the next redraw.
type Watcher struct {
	store   *Store
	path    string
	watcher *fsnotify.Watcher

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher starts watching the settings file at path. Watching the
// containing directory instead of the file itself survives the
// rename-and-replace pattern editors use when saving.
func NewWatcher(store *Store, path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		store:   store,
		path:    abs,
		watcher: fsw,
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// A failed reload keeps the previous options.
			_ = w.store.LoadFile(w.path)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
