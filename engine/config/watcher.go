package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-debugcam/engine/debugcam"
	"github.com/fsnotify/fsnotify"
)

// debounce is how long the file must stay unchanged before it is reloaded.
const debounce = 100 * time.Millisecond

// Watcher reloads an options file whenever it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(*debugcam.Options)
	onError  func(error)
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching path. Each successful reload is passed to onChange; read,
// parse and validation failures go to onError and the previous options stay in
// effect. The file's directory is watched so editors that replace the file on save
// keep working.
//
// Parameters:
//   - path: the YAML file to watch
//   - onChange: called with freshly loaded options
//   - onError: called with reload and watcher errors (may be nil)
//
// Returns:
//   - *Watcher: the running watcher
//   - error: an error if the watcher could not be started
func Watch(path string, onChange func(*debugcam.Options), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		path:     abs,
		onChange: onChange,
		onError:  onError,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	// Reload once the file has been quiet for the debounce window so a save that
	// arrives as several writes is read only after the last one.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	o, err := Load(w.path)
	if err != nil {
		w.report(err)
		return
	}
	w.onChange(o)
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
