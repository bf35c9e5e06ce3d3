package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hospital-desk/core/models"
	"hospital-desk/internal/debuglog"
)

const (
	// StoreVersion is the version of the database file layout.
	StoreVersion = 1

	// MaxStoreFileSize is the size above which a warning is logged (4 MB).
	MaxStoreFileSize = 4 * 1024 * 1024
)

// storeFile is the on-disk envelope around the database.
type storeFile struct {
	Version   int              `json:"version"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Database  *models.Database `json:"database"`
}

// StoreService loads and saves the hospital database as a single JSON file.
// The whole database is read at startup and written back at shutdown.
type StoreService struct {
	path      string
	createdAt time.Time
}

// NewStoreService creates a store backed by path.
func NewStoreService(path string) *StoreService {
	return &StoreService{path: path}
}

// Path returns the database file.
func (s *StoreService) Path() string { return s.path }

// Load reads the database. A missing file yields a freshly seeded database.
func (s *StoreService) Load() (*models.Database, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		debuglog.InfoLog("StoreService.Load: %s not found, seeding a new database", s.path)
		return models.NewDatabase(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("Load: failed to read %s: %w", s.path, err)
	}

	if len(data) > MaxStoreFileSize {
		debuglog.WarnLog("StoreService.Load: file size (%d bytes) exceeds recommended maximum (%d bytes)", len(data), MaxStoreFileSize)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("Load: failed to unmarshal %s: %w", s.path, err)
	}
	if file.Version != StoreVersion {
		return nil, fmt.Errorf("Load: unsupported database version: %d (expected %d)", file.Version, StoreVersion)
	}
	if file.Database == nil {
		return nil, fmt.Errorf("Load: %s has no database", s.path)
	}
	file.Database.Normalize()
	s.createdAt = file.CreatedAt

	debuglog.InfoLog("StoreService.Load: loaded %d patients from %s", len(file.Database.Patients), s.path)
	return file.Database, nil
}

// Save writes db to the store file, creating its directory if needed.
func (s *StoreService) Save(db *models.Database) error {
	if db == nil {
		return fmt.Errorf("Save: database cannot be nil")
	}
	now := time.Now().UTC()
	if s.createdAt.IsZero() {
		s.createdAt = now
	}
	file := storeFile{
		Version:   StoreVersion,
		CreatedAt: s.createdAt,
		UpdatedAt: now,
		Database:  db,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("Save: failed to marshal database: %w", err)
	}
	if len(data) > MaxStoreFileSize {
		debuglog.WarnLog("StoreService.Save: file size (%d bytes) exceeds recommended maximum (%d bytes)", len(data), MaxStoreFileSize)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("Save: failed to create data directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("Save: failed to write database file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("Save: failed to replace database file: %w", err)
	}

	debuglog.InfoLog("StoreService.Save: saved database to %s", s.path)
	return nil
}
