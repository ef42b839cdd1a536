package filewatch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macro-tracker/backend/internal/application/usecase/food"
	"github.com/macro-tracker/backend/internal/domain/entity"
	"github.com/macro-tracker/backend/internal/integration/blobstore"
	"github.com/macro-tracker/backend/internal/integration/persistence"
)

// recordingImporter remembers the sources it was asked to import.
type recordingImporter struct {
	mu      sync.Mutex
	sources []string
}

func (r *recordingImporter) Execute(_ context.Context, input food.ImportFoodsInput) (*food.ImportFoodsOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = append(r.sources, input.Source)
	return &food.ImportFoodsOutput{}, nil
}

func (r *recordingImporter) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sources...)
}

func TestWatcher_ImportsWrittenCSV(t *testing.T) {
	dir := t.TempDir()
	importer := &recordingImporter{}

	w, err := NewWatcher(dir, importer, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Watch(ctx)
		close(done)
	}()

	csvPath := filepath.Join(dir, "foods.csv")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(csvPath, []byte("name,protein,carbs,fats\nEgg,6,0.6,5\n"), 0o600))

	require.Eventually(t, func() bool {
		return len(importer.calls()) > 0
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	<-done

	for _, source := range importer.calls() {
		assert.Equal(t, csvPath, source)
	}
}

func TestWatcher_ImportFile(t *testing.T) {
	ctx := context.Background()
	store, err := persistence.Open(ctx, blobstore.NewMemoryStore(), entity.DefaultGoals())
	require.NoError(t, err)

	importer := food.NewImportFoodsUseCase(food.NewAddFoodUseCase(store.Foods()))

	dir := t.TempDir()
	w, err := NewWatcher(dir, importer, 0)
	require.NoError(t, err)
	defer w.watcher.Close()

	path := filepath.Join(dir, "pantry.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,protein,carbs,fats\nOats,16.9,66.3,6.9\nBad,x,1,1\n"), 0o600))

	require.NoError(t, w.ImportFile(ctx, path))

	foods, err := store.Foods().List(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Oats", foods[0].Name)

	assert.Error(t, w.ImportFile(ctx, filepath.Join(dir, "missing.csv")))
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope"), &recordingImporter{}, 0)
	assert.Error(t, err)
}

func TestIsCSV(t *testing.T) {
	assert.True(t, isCSV("/tmp/a.csv"))
	assert.True(t, isCSV("/tmp/A.CSV"))
	assert.False(t, isCSV("/tmp/a.csv.swp"))
	assert.False(t, isCSV("/tmp/a"))
}

func TestWatcher_EditedFileAddsOnlyNewRows(t *testing.T) {
	store, err := persistence.Open(context.Background(), blobstore.NewMemoryStore(), entity.DefaultGoals())
	require.NoError(t, err)

	importer := food.NewImportFoodsUseCase(food.NewAddFoodUseCase(store.Foods()))

	dir := t.TempDir()
	w, err := NewWatcher(dir, importer, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Watch(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	names := func() []string {
		foods, err := store.Foods().List(context.Background())
		require.NoError(t, err)
		out := make([]string, len(foods))
		for i, f := range foods {
			out[i] = f.Name
		}
		return out
	}

	path := filepath.Join(dir, "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,protein,carbs,fats\nEgg,6,0.6,5\n"), 0o600))
	require.Eventually(t, func() bool {
		return len(names()) == 1
	}, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("name,protein,carbs,fats\nEgg,6,0.6,5\nOats,16.9,66.3,6.9\n"), 0o600))
	require.Eventually(t, func() bool {
		return len(names()) == 2
	}, 3*time.Second, 20*time.Millisecond)

	// Give any further debounced import time to run before checking for duplicates.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{"Egg", "Oats"}, names())
}

func TestWatcher_ImportFileTwiceKeepsCatalogUnique(t *testing.T) {
	ctx := context.Background()
	store, err := persistence.Open(ctx, blobstore.NewMemoryStore(), entity.DefaultGoals())
	require.NoError(t, err)

	importer := food.NewImportFoodsUseCase(food.NewAddFoodUseCase(store.Foods()))

	dir := t.TempDir()
	w, err := NewWatcher(dir, importer, 0)
	require.NoError(t, err)
	defer w.watcher.Close()

	path := filepath.Join(dir, "pantry.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,protein,carbs,fats\nRice,2.7,28,0.3\n rice ,2.7,28,0.3\n"), 0o600))

	require.NoError(t, w.ImportFile(ctx, path))
	require.NoError(t, w.ImportFile(ctx, path))

	foods, err := store.Foods().List(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Rice", foods[0].Name)
}
