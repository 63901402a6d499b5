package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/logfields"
)

// Watcher monitors a project tree and forwards relevant source changes
// to a Debouncer. fsnotify does not recurse, so every subdirectory is
// added explicitly and newly created directories are picked up from
// create events.
type Watcher struct {
	root       string
	extensions map[string]struct{}
	watcher    *fsnotify.Watcher
	debouncer  *Debouncer
}

func NewWatcher(root string, extensions []string, debouncer *Debouncer) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("resolve project path: %w", err)
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	w := &Watcher{root: abs, extensions: allowed, watcher: fsw, debouncer: debouncer}
	if err := w.addRecursive(abs); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		switch d.Name() {
		case ".git", "node_modules", "dist", "build", ".venv", "vendor":
			if path != dir {
				return filepath.SkipDir
			}
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run forwards events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer func() { _ = w.watcher.Close() }()

	slog.Info("Watching project for changes", logfields.Path(w.root))

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
			}
			w.debouncer.Request()
			return
		}
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	if _, ok := w.extensions[strings.ToLower(filepath.Ext(event.Name))]; !ok {
		return
	}

	slog.Debug("Source change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
	w.debouncer.Request()
}
