package internal

import (
	"context"
	"sync"

	"github.com/DrGermanius/Receiptmart/internal/model"
)

// MemoryRepository is the default record store, a plain id-keyed map.
// Records live for the process lifetime only.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]model.Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]model.Record)}
}

func (m *MemoryRepository) SaveRecord(_ context.Context, rec model.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ID] = rec
	return nil
}

func (m *MemoryRepository) GetRecord(_ context.Context, id string) (model.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return model.Record{}, ErrNoRecords
	}
	return rec, nil
}
