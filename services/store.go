package services

import (
	"errors"
	"sync"

	"cottage-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persisted key-value layer: one JSON blob per collection.
// Get returns (nil, nil) for a missing key so callers can default to an
// empty collection.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// DBStore persists blobs in the store_entries table.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Get(key string) ([]byte, error) {
	var entry models.StoreEntry
	err := s.db.Where("store_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *DBStore) Set(key string, value []byte) error {
	entry := models.StoreEntry{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// MemoryStore is the in-memory twin of DBStore, used in tests and when no
// database is configured. State lives only as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	return nil
}
