package load

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/semlink/export"
	"github.com/c360studio/semlink/graph"
)

// Watcher reloads ontology files into the store when they change on disk.
// Each matched file is one namespace: a change purges and reloads it.
type Watcher struct {
	loader   *Loader
	patterns []string
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the given doublestar file patterns,
// e.g. "ontology/**/*.nt".
func NewWatcher(loader *Loader, patterns []string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{loader: loader, patterns: patterns, logger: logger}
}

// LoadAll loads every file currently matching the patterns. Used on
// startup before watching begins.
func (w *Watcher) LoadAll(ctx context.Context) error {
	files, err := w.matchFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := w.reload(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// Run watches the pattern roots and reloads changed files until the
// context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("load.Watcher: create watcher: %w", err)
	}
	defer fsw.Close()

	roots := make(map[string]bool)
	files, err := w.matchFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		roots[filepath.Dir(path)] = true
	}
	for _, pattern := range w.patterns {
		base, _ := doublestar.SplitPattern(pattern)
		roots[base] = true
	}
	for root := range roots {
		if err := fsw.Add(root); err != nil {
			w.logger.Warn("Failed to watch directory", slog.String("dir", root), slog.String("error", err.Error()))
		}
	}

	w.logger.Info("Watching ontology files", slog.Any("patterns", w.patterns))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			w.logger.Info("Ontology file changed", slog.String("path", event.Name))
			if err := w.reload(ctx, event.Name); err != nil {
				w.logger.Error("Reload failed", slog.String("path", event.Name), slog.String("error", err.Error()))
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", slog.String("error", err.Error()))
		}
	}
}

// reload purges the file's namespace and loads the file's records again.
func (w *Watcher) reload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load.Watcher: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := export.ParseNTriples(f)
	if err != nil {
		return fmt.Errorf("load.Watcher: parse %s: %w", path, err)
	}

	namespace := NamespaceForFile(path)
	if _, err := w.loader.Purge(ctx, namespace); err != nil && !errors.Is(err, graph.ErrUnknownNamespace) {
		return fmt.Errorf("load.Watcher: purge %s: %w", namespace, err)
	}

	result, err := w.loader.LoadRecords(ctx, namespace, records, false)
	if err != nil {
		return fmt.Errorf("load.Watcher: load %s: %w", namespace, err)
	}

	w.logger.Info("Namespace reloaded",
		slog.String("namespace", namespace),
		slog.Int("entities", result.Entities),
		slog.Int("relations", result.Relations),
		slog.Int("labels", result.Labels),
		slog.Int("rejects", len(result.Rejects)))
	return nil
}

func (w *Watcher) matchFiles() ([]string, error) {
	var out []string
	for _, pattern := range w.patterns {
		files, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("load.Watcher: pattern %q: %w", pattern, err)
		}
		out = append(out, files...)
	}
	return out, nil
}

func (w *Watcher) matches(path string) bool {
	for _, pattern := range w.patterns {
		if ok, err := doublestar.PathMatch(filepath.ToSlash(pattern), filepath.ToSlash(path)); err == nil && ok {
			return true
		}
	}
	return false
}

// NamespaceForFile derives the load namespace from a file path: the base
// name without extension.
func NamespaceForFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
