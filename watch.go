package pathkit

import (
	"context"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher watches a single directory for changes using native file
// system events and hands out single-use [ChangeToken]s.
type DirWatcher struct {
	dir     Filename
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	tokens []*CallbackChangeToken
	closed bool
}

// NewDirWatcher starts watching the directory named by dir. The
// directory must exist. Call Close to release the underlying watcher.
func NewDirWatcher(dir Filename) (*DirWatcher, error) {
	exists, err := DirExists(context.Background(), dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &PathError{
			Op:   "watch",
			Path: dir.Portable(),
			Err:  ErrNotExist,
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &PathError{
			Op:   "watch",
			Path: dir.Portable(),
			Err:  err,
		}
	}

	if err := watcher.Add(dir.Native()); err != nil {
		watcher.Close()
		return nil, &PathError{
			Op:   "watch",
			Path: dir.Portable(),
			Err:  err,
		}
	}

	w := &DirWatcher{
		dir:     dir,
		watcher: watcher,
	}

	go w.run()

	return w, nil
}

// Token returns a fresh change token that trips on the next event in
// the watched directory
func (w *DirWatcher) Token() ChangeToken {
	token := NewCallbackChangeToken()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		// A closed watcher can observe nothing further; hand back a
		// token already tripped so callers re-read state themselves.
		token.SignalChange()
		return token
	}
	w.tokens = append(w.tokens, token)
	w.mu.Unlock()

	return token
}

// Close stops the watcher and releases its OS resources
func (w *DirWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	return w.watcher.Close()
}

func (w *DirWatcher) run() {
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.signalAll()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger().Debug().
				Err(err).
				Str("path", w.dir.Portable()).
				Msg("watcher error")
		}
	}
}

func (w *DirWatcher) signalAll() {
	w.mu.Lock()
	tokens := w.tokens
	w.tokens = nil
	w.mu.Unlock()

	for _, token := range tokens {
		token.SignalChange()
	}
}
