// Package fsnotify watches the content catalog file using
// github.com/fsnotify/fsnotify and debounces rapid events (editors often
// trigger multiple writes per save). Content changes trigger a whole-index
// rebuild; the index is never patched incrementally.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces editor double-writes into one rebuild.
const debounceInterval = 200 * time.Millisecond

// Watcher monitors a single catalog file for changes.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch monitors catalogPath and invokes onChange after each settled burst
// of write/create/rename events. The parent directory is watched rather
// than the file itself, so atomic-save editors (write temp, rename over)
// do not silently drop the watch.
func (w *Watcher) Watch(catalogPath string, onChange func()) error {
	absPath, err := filepath.Abs(catalogPath)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	var dmu sync.Mutex
	var pending *time.Timer

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				dmu.Lock()
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(debounceInterval, onChange)
				dmu.Unlock()

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
