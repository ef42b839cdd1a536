// Package filewatch imports food CSV files dropped into a watched directory.
package filewatch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/macro-tracker/backend/internal/application/usecase/food"
)

// DefaultDebounce is how long a file must stay quiet before it is imported.
const DefaultDebounce = 500 * time.Millisecond

// FoodImporter adds the rows of a CSV file to the catalog.
type FoodImporter interface {
	Execute(ctx context.Context, input food.ImportFoodsInput) (*food.ImportFoodsOutput, error)
}

// Watcher monitors a directory and imports every *.csv file written to it.
type Watcher struct {
	importer FoodImporter
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
	wg      sync.WaitGroup
}

// NewWatcher starts watching dir. A non-positive debounce uses DefaultDebounce.
func NewWatcher(dir string, importer FoodImporter, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		importer: importer,
		watcher:  w,
		dir:      dir,
		debounce: debounce,
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Watch handles file events until ctx is cancelled, then releases the watcher
// and waits for running imports.
func (fw *Watcher) Watch(ctx context.Context) {
	slog.Info("Watching food import directory", "dir", fw.dir)

	defer func() {
		fw.stopPending()
		_ = fw.watcher.Close()
		fw.wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && isCSV(event.Name) {
				fw.schedule(ctx, event.Name)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Food import watcher error", "error", err)
		}
	}
}

// ImportFile imports the rows of a CSV file whose foods are not yet in the
// catalog. Saving the file again only adds the rows that are new.
func (fw *Watcher) ImportFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	output, err := fw.importer.Execute(ctx, food.ImportFoodsInput{
		Source:       path,
		Reader:       f,
		SkipExisting: true,
	})
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	for _, row := range output.Failed {
		slog.Warn("Food import row skipped",
			"file", path,
			"line", row.Line,
			"reason", row.Message,
		)
	}
	return nil
}

// schedule imports path once no further events arrive for the debounce period.
// Editors and copies emit several events per save.
func (fw *Watcher) schedule(ctx context.Context, path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}
	if timer, ok := fw.pending[path]; ok {
		timer.Reset(fw.debounce)
		return
	}

	fw.pending[path] = time.AfterFunc(fw.debounce, func() {
		fw.mu.Lock()
		delete(fw.pending, path)
		if fw.closed {
			fw.mu.Unlock()
			return
		}
		fw.wg.Add(1)
		fw.mu.Unlock()
		defer fw.wg.Done()

		if ctx.Err() != nil {
			return
		}
		if err := fw.ImportFile(ctx, path); err != nil {
			slog.Error("Food import failed", "file", path, "error", err)
		}
	})
}

func (fw *Watcher) stopPending() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.closed = true
	for path, timer := range fw.pending {
		timer.Stop()
		delete(fw.pending, path)
	}
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
