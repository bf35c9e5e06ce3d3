package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hospital-desk/dialogkit"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(filepath.Join(dir, "missing.jsonc"), dir)
	require.NoError(t, err)
	require.Equal(t, Default(dir), c)
}

func TestLoad_TemplateMatchesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hospital-desk.jsonc")
	require.NoError(t, WriteTemplate(path))

	c, err := Load(path, dir)
	require.NoError(t, err)
	require.Equal(t, Default(dir), c)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hospital-desk.jsonc")
	content := `{
  // comments are fine
  "data_file": "/srv/hospital.json",
  "theme": "DARK",
  "layout": { "tab_header_height": 40, "button_size": { "width": 90, "height": 30 } }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("HOSPITAL_LOG_LEVEL", "verbose")
	t.Setenv("HOSPITAL_SINGLE_INSTANCE", "false")

	c, err := Load(path, dir)
	require.NoError(t, err)
	require.Equal(t, "/srv/hospital.json", c.DataFile)
	require.Equal(t, "dark", c.Theme)
	require.Equal(t, "verbose", c.LogLevel)
	require.False(t, c.SingleInstance)
	require.Equal(t, 40, c.Layout.TabHeaderHeight)
	require.Equal(t, dialogkit.NewSize(90, 30), c.Layout.ButtonSize)
	require.Equal(t, 150, c.Layout.TreePanelWidth)
}

func TestLoad_NormalizesValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hospital-desk.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_file": "db/h.json", "theme": "neon", "log_level": "loud"}`), 0644))

	c, err := Load(path, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "db", "h.json"), c.DataFile)
	require.Equal(t, "default", c.Theme)
	require.Equal(t, "info", c.LogLevel)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hospital-desk.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": `), 0644))
	_, err := Load(path, dir)
	require.Error(t, err)
}

func TestLoad_TrailingCommaRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hospital-desk.jsonc")
	require.NoError(t, os.WriteFile(path, []byte("{\n  \"theme\": \"dark\",\n}"), 0644))
	_, err := Load(path, dir)
	require.Error(t, err)
}

func TestWriteTemplate_KeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hospital-desk.jsonc")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	require.NoError(t, WriteTemplate(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
}
