package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hospital-desk/core/models"
)

func TestStoreService_MissingFileSeeds(t *testing.T) {
	s := NewStoreService(filepath.Join(t.TempDir(), "hospital.json"))
	db, err := s.Load()
	require.NoError(t, err)
	require.Len(t, db.Patients, 7)
	require.Contains(t, db.Users, "Triage")
}

func TestStoreService_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hospital.json")
	s := NewStoreService(path)

	db := models.NewDatabase()
	require.NoError(t, db.SetPriority(900000001, 9))
	db.CurrentRole = models.RoleDoctor
	require.NoError(t, s.Save(db))

	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temporary file should be renamed")

	loaded, err := NewStoreService(path).Load()
	require.NoError(t, err)
	require.Equal(t, models.RoleDoctor, loaded.CurrentRole)
	p, ok := loaded.Patient(900000001)
	require.True(t, ok)
	require.Equal(t, 9, p.Clinical.Priority)
	require.Equal(t, models.StateWaiting, p.General.State)
}

func TestStoreService_KeepsCreationTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospital.json")
	s := NewStoreService(path)
	require.NoError(t, s.Save(models.NewDatabase()))
	first := s.createdAt

	again := NewStoreService(path)
	_, err := again.Load()
	require.NoError(t, err)
	require.True(t, first.Equal(again.createdAt))
}

func TestStoreService_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err := NewStoreService(bad).Load()
	require.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version": 99, "database": {}}`), 0644))
	_, err = NewStoreService(old).Load()
	require.ErrorContains(t, err, "unsupported database version")

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"version": 1}`), 0644))
	_, err = NewStoreService(empty).Load()
	require.Error(t, err)

	require.Error(t, NewStoreService(filepath.Join(dir, "x.json")).Save(nil))
}
