package memrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mrled/suns/symaxis/internal/model"
)

func newRecord(id string, symmetrical bool) *model.CheckRecord {
	return &model.CheckRecord{
		ID:          id,
		Points:      []model.Point{{X: 1, Y: 2}},
		Symmetrical: symmetrical,
		CheckTime:   time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
	}
}

func TestMemoryRepository_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Store(ctx, newRecord("v1:a", true)); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, err := repo.Get(ctx, "v1:a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Symmetrical || got.Rev != 1 {
		t.Errorf("Unexpected record: %+v", got)
	}

	if _, err := repo.Get(ctx, "v1:missing"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepository_StoreReplacesAndBumpsRev(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for i := 0; i < 3; i++ {
		if err := repo.Store(ctx, newRecord("v1:a", i%2 == 0)); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}

	got, err := repo.Get(ctx, "v1:a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Rev != 3 {
		t.Errorf("Expected Rev 3, got %d", got.Rev)
	}

	all, _ := repo.List(ctx)
	if len(all) != 1 {
		t.Errorf("Expected 1 record, got %d", len(all))
	}
}

func TestMemoryRepository_StoreInvalid(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.Store(ctx, nil); err == nil {
		t.Error("Expected error storing nil record")
	}
	if err := repo.Store(ctx, &model.CheckRecord{}); err == nil {
		t.Error("Expected error storing record without ID")
	}
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	_ = repo.Store(ctx, newRecord("v1:a", true))

	if err := repo.Delete(ctx, "v1:a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "v1:a"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryRepository_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "checks.json")

	repo, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	_ = repo.Store(ctx, newRecord("v1:a", true))
	_ = repo.Store(ctx, newRecord("v1:b", false))
	_ = repo.Delete(ctx, "v1:b")

	reopened, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Failed to reopen repository: %v", err)
	}
	all, _ := reopened.List(ctx)
	if len(all) != 1 || all[0].ID != "v1:a" {
		t.Errorf("Unexpected records after reload: %+v", all)
	}
	if len(all[0].Points) != 1 || all[0].Points[0] != (model.Point{X: 1, Y: 2}) {
		t.Errorf("Points not persisted: %+v", all[0].Points)
	}
}

func TestMemoryRepository_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	repo, err := NewMemoryRepositoryWithPersistence(path)
	if err != nil {
		t.Fatalf("Expected empty file to load, got: %v", err)
	}
	all, _ := repo.List(context.Background())
	if len(all) != 0 {
		t.Errorf("Expected no records, got %d", len(all))
	}
}

func TestNewMemoryRepositoryFromJsonString(t *testing.T) {
	repo, err := NewMemoryRepositoryFromJsonString(`[
		{"ID": "v1:a", "Points": [{"x": 0, "y": 0}], "Symmetrical": true, "Axis": 0, "Rev": 4},
		{"ID": "v1:a", "Points": [{"x": 1, "y": 0}], "Symmetrical": true, "Axis": 1, "Rev": 5}
	]`)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	got, err := repo.Get(context.Background(), "v1:a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Rev != 5 || got.Axis == nil || *got.Axis != 1 {
		t.Errorf("Expected last occurrence to win, got %+v", got)
	}

	if _, err := NewMemoryRepositoryFromJsonString("not json"); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestMemoryRepository_LoadRejectsNullRecord(t *testing.T) {
	if _, err := NewMemoryRepositoryFromJsonString(`[null]`); err == nil {
		t.Error("Expected error for null record")
	}

	path := filepath.Join(t.TempDir(), "checks.json")
	if err := os.WriteFile(path, []byte(`[{"ID": "v1:a"}, null]`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMemoryRepositoryWithPersistence(path); err == nil {
		t.Error("Expected error loading file with null record")
	}
}

// unwritableRepository returns a repository whose file path is a directory, so every save fails
func unwritableRepository(t *testing.T) *MemoryRepository {
	repo := NewMemoryRepository()
	repo.filePath = t.TempDir()
	return repo
}

func TestMemoryRepository_StoreRollsBackOnSaveError(t *testing.T) {
	ctx := context.Background()
	repo := unwritableRepository(t)

	record := newRecord("v1:a", true)
	if err := repo.Store(ctx, record); err == nil {
		t.Fatal("Expected save error")
	}
	if record.Rev != 0 {
		t.Errorf("Expected Rev to be restored to 0, got %d", record.Rev)
	}
	if _, err := repo.Get(ctx, "v1:a"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected record to be absent after failed store, got %v", err)
	}

	// Existing record survives a failed replacement
	original := newRecord("v1:b", true)
	original.Rev = 4
	repo.data["v1:b"] = original
	replacement := newRecord("v1:b", false)
	if err := repo.Store(ctx, replacement); err == nil {
		t.Fatal("Expected save error")
	}
	got, err := repo.Get(ctx, "v1:b")
	if err != nil {
		t.Fatal(err)
	}
	if got != original || got.Rev != 4 || replacement.Rev != 0 {
		t.Errorf("Expected original record with Rev 4, got %+v (replacement Rev %d)", got, replacement.Rev)
	}
}

func TestMemoryRepository_DeleteRollsBackOnSaveError(t *testing.T) {
	ctx := context.Background()
	repo := unwritableRepository(t)
	repo.data["v1:a"] = newRecord("v1:a", true)

	if err := repo.Delete(ctx, "v1:a"); err == nil {
		t.Fatal("Expected save error")
	}
	if _, err := repo.Get(ctx, "v1:a"); err != nil {
		t.Errorf("Expected record to remain after failed delete, got %v", err)
	}
}

func TestMemoryRepository_ConcurrentStore(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Store(ctx, newRecord(fmt.Sprintf("v1:%d", i%5), true))
		}(i)
	}
	wg.Wait()

	all, _ := repo.List(ctx)
	if len(all) != 5 {
		t.Errorf("Expected 5 records, got %d", len(all))
	}
}

func ExampleMemoryRepository() {
	tmpFile, _ := os.CreateTemp("", "example-*.json")
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	ctx := context.Background()
	repo, _ := NewMemoryRepositoryWithPersistence(tmpPath)

	axis := 2
	repo.Store(ctx, &model.CheckRecord{
		ID:          "v1:abc123",
		Label:       "column",
		Points:      []model.Point{{X: 2, Y: 0}, {X: 2, Y: 1}},
		Symmetrical: true,
		Axis:        &axis,
		CheckTime:   time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
	})

	content, _ := os.ReadFile(tmpPath)
	fmt.Println(string(content))

	// Output:
	// [
	//   {
	//     "ID": "v1:abc123",
	//     "Label": "column",
	//     "Points": [
	//       {
	//         "x": 2,
	//         "y": 0
	//       },
	//       {
	//         "x": 2,
	//         "y": 1
	//       }
	//     ],
	//     "Symmetrical": true,
	//     "Axis": 2,
	//     "CheckTime": "2025-10-17T12:00:00Z",
	//     "Rev": 1
	//   }
	// ]
}
