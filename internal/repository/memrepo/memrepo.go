package memrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mrled/suns/symaxis/internal/model"
)

// MemoryRepository is an in-memory implementation of CheckRepository optionally backed by a JSON file
type MemoryRepository struct {
	mu       sync.RWMutex
	data     map[string]*model.CheckRecord
	filePath string
}

// NewMemoryRepository creates a new in-memory repository without persistence.
// Data is stored only in memory and will be lost when the process terminates.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data: make(map[string]*model.CheckRecord),
	}
}

// NewMemoryRepositoryWithPersistence creates a new in-memory repository backed by a JSON file.
// The repository will load existing data from the file on initialization and persist
// all changes (Store, Delete) to the file automatically.
func NewMemoryRepositoryWithPersistence(filePath string) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		data:     make(map[string]*model.CheckRecord),
		filePath: filePath,
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if err := repo.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return repo, nil
}

// NewMemoryRepositoryFromJsonString creates a new in-memory repository initialized with data from a JSON string.
// The repository will not be backed by a file and will not persist changes.
// The JSON string should contain an array of CheckRecord objects.
func NewMemoryRepositoryFromJsonString(jsonString string) (*MemoryRepository, error) {
	repo := NewMemoryRepository()
	if err := repo.loadFromReader(strings.NewReader(jsonString)); err != nil {
		return nil, err
	}
	return repo, nil
}

// loadFromReader reads JSON data from a reader and populates the in-memory data
func (r *MemoryRepository) loadFromReader(reader io.Reader) error {
	var dataSlice []*model.CheckRecord
	if err := json.NewDecoder(reader).Decode(&dataSlice); err != nil {
		return err
	}

	r.data = make(map[string]*model.CheckRecord)
	for i, d := range dataSlice {
		if d == nil {
			return fmt.Errorf("null check record at index %d", i)
		}
		// Dynamo overwrites an item with the same key, so the last occurrence wins here too
		if _, exists := r.data[d.ID]; exists {
			fmt.Fprintf(os.Stderr, "Warning: duplicate entry found for ID=%s (keeping last occurrence)\n", d.ID)
		}
		r.data[d.ID] = d
	}

	return nil
}

// load reads the JSON file and populates the in-memory data
func (r *MemoryRepository) load() error {
	file, err := os.Open(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	if stat.Size() == 0 {
		return nil
	}

	return r.loadFromReader(file)
}

// save writes the in-memory data to the JSON file, sorted by ID.
// If filePath is empty, this is a no-op
func (r *MemoryRepository) save() error {
	if r.filePath == "" {
		return nil
	}

	dataSlice := make([]*model.CheckRecord, 0, len(r.data))
	for _, d := range r.data {
		dataSlice = append(dataSlice, d)
	}
	sort.Slice(dataSlice, func(i, j int) bool {
		return dataSlice[i].ID < dataSlice[j].ID
	})

	file, err := os.Create(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dataSlice)
}

// Store saves a check record, replacing any existing record with the same ID.
// The stored revision is one past the previous revision for that ID.
func (r *MemoryRepository) Store(ctx context.Context, record *model.CheckRecord) error {
	if record == nil {
		return errors.New("check record cannot be nil")
	}
	if record.ID == "" {
		return errors.New("check record ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var rev int64
	existing, hadExisting := r.data[record.ID]
	if hadExisting {
		rev = existing.Rev
	}
	prevRev := record.Rev
	record.Rev = rev + 1

	r.data[record.ID] = record
	if err := r.save(); err != nil {
		// Keep memory in line with what is on disk
		if hadExisting {
			r.data[record.ID] = existing
		} else {
			delete(r.data, record.ID)
		}
		record.Rev = prevRev
		return err
	}
	return nil
}

// Get retrieves a check record by ID
func (r *MemoryRepository) Get(ctx context.Context, id string) (*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.data[id]
	if !exists {
		return nil, model.ErrNotFound
	}

	return data, nil
}

// List retrieves all check records
func (r *MemoryRepository) List(ctx context.Context) ([]*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.CheckRecord, 0, len(r.data))
	for _, data := range r.data {
		result = append(result, data)
	}

	return result, nil
}

// Delete removes a check record by ID
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.data[id]
	if !exists {
		return model.ErrNotFound
	}

	delete(r.data, id)
	if err := r.save(); err != nil {
		r.data[id] = existing
		return err
	}
	return nil
}
