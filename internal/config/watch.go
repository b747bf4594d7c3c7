package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single config file. The parent directory is
// watched so editors that replace the file on save are still seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan struct{}
	errs    chan error
	cancel  context.CancelFunc
}

// WatchFile starts watching path until Close is called
func WatchFile(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if info, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	} else if info.IsDir() {
		return nil, fmt.Errorf("cannot watch directory, must be a file")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    abs,
		watcher: fw,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
		cancel:  cancel,
	}
	go w.loop(ctx)
	return w, nil
}

// Path returns the watched file
func (w *Watcher) Path() string { return w.path }

// Changes delivers one value per burst of writes; pending signals coalesce
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors delivers watcher failures
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
