package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads an input config file whenever it changes on disk.
type Watcher struct {
	w    *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching path and calls onChange with the reloaded values.
// onChange runs on the watcher goroutine; callers that feed the result
// into the UI must marshal it onto their own loop.
func Watch(path string, onChange func(Input)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	// Watch the directory: editors replace files by rename, which drops
	// a watch placed on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %q: %w", path, err)
	}

	cw := &Watcher{w: fw, done: make(chan struct{})}
	name := filepath.Clean(path)
	go func() {
		defer close(cw.done)
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				in, err := Load(path)
				if err != nil {
					slog.Warn("input config reload failed", "path", path, "err", err)
					continue
				}
				onChange(in)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				slog.Warn("input config watcher error", "err", err)
			}
		}
	}()
	return cw, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (cw *Watcher) Close() error {
	err := cw.w.Close()
	<-cw.done
	return err
}
