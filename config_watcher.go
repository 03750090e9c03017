package gekko

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a config file when it changes on disk. Reloads are
// produced on a background goroutine and handed to the frame loop through
// Poll, which never blocks.
type ConfigWatcher struct {
	path    string
	log     Logger
	watcher *fsnotify.Watcher
	updates chan Config

	closeOnce sync.Once
	done      chan struct{}
}

// WatchConfig watches the directory holding path, so editors that replace
// the file through a rename are still seen.
func WatchConfig(path string, log Logger) (*ConfigWatcher, error) {
	if log == nil {
		log = NewNopLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}

	w := &ConfigWatcher{
		path:    abs,
		log:     log,
		watcher: fsWatch,
		updates: make(chan Config, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *ConfigWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("config watcher: %v", err)
		}
	}
}

func (w *ConfigWatcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		// Editors often write in several steps; keep the last good config.
		w.log.Warnf("config reload skipped: %v", err)
		return
	}
	// Keep only the newest config.
	select {
	case w.updates <- cfg:
	default:
		select {
		case <-w.updates:
		default:
		}
		w.updates <- cfg
	}
}

// Poll returns the most recent reloaded config, if any arrived since the last call.
func (w *ConfigWatcher) Poll() (Config, bool) {
	select {
	case cfg := <-w.updates:
		return cfg, true
	default:
		return Config{}, false
	}
}

func (w *ConfigWatcher) Close() error {
	err := errors.New("config watcher already closed")
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
