// Package shaderwatch reports edited shader sources so the render loop can
// rebuild its programs without restarting.
package shaderwatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
)

// Extensions of the files worth reporting.
var Extensions = map[string]bool{".vs": true, ".fs": true, ".glsl": true}

// ErrEmpty is returned by ReadSource for a file that stays empty.
var ErrEmpty = errors.New("shader source is empty")

const pendingSize = 64

// Watcher watches one directory. Editors often replace a file rather than
// write it in place, so the directory is watched and not the files.
type Watcher struct {
	fs      *fsnotify.Watcher
	changed chan string
	done    chan struct{}
}

// New starts watching dir. Call Close when done.
func New(dir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create shader watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fs,
		changed: make(chan string, pendingSize),
		done:    make(chan struct{}),
	}
	go w.run()
	slog.Info("watching shaders", "dir", dir)
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !Extensions[filepath.Ext(event.Name)] {
				continue
			}
			select {
			case w.changed <- event.Name:
			default:
				// the loop is behind; it will reload everything it has queued anyway
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("shader watcher", "error", err)
		}
	}
}

// Pending returns the files changed since the last call, each once, without
// blocking.
func (w *Watcher) Pending() []string {
	var paths []string
	seen := map[string]bool{}
	for {
		select {
		case path := <-w.changed:
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		default:
			return paths
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

// ReadSource reads a shader file, retrying for up to a second while it is
// missing or empty, as it is between an editor truncating and rewriting it.
func ReadSource(ctx context.Context, path string) (string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxElapsedTime = time.Second

	var source string
	err := backoff.Retry(func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return err
			}
			return backoff.Permanent(err)
		}
		if len(data) == 0 {
			return fmt.Errorf("%s: %w", path, ErrEmpty)
		}
		source = string(data)
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return "", fmt.Errorf("read shader source: %w", err)
	}
	return source, nil
}
