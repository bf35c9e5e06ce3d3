package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFileServiceAt(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileServiceAt(dir)
	if err != nil {
		t.Fatalf("NewFileServiceAt failed: %v", err)
	}
	if fs.ConfigPath != filepath.Join(dir, "hospital-desk.jsonc") {
		t.Errorf("Expected config path in exec dir, got %q", fs.ConfigPath)
	}
	if fs.DataPath != filepath.Join(dir, "data", "hospital.json") {
		t.Errorf("Expected data path under data/, got %q", fs.DataPath)
	}
	for _, sub := range []string{"logs", "data"} {
		if info, err := os.Stat(filepath.Join(dir, sub)); err != nil || !info.IsDir() {
			t.Errorf("Expected directory %s to exist", sub)
		}
	}
}

func TestCheckAndRotateLogFile(t *testing.T) {
	dir := t.TempDir()
	fs := &FileService{ExecDir: dir}
	logPath := filepath.Join(dir, "app.log")

	small := []byte("short log\n")
	if err := os.WriteFile(logPath, small, 0644); err != nil {
		t.Fatal(err)
	}
	fs.CheckAndRotateLogFile(logPath)
	if _, err := os.Stat(logPath + ".old"); !os.IsNotExist(err) {
		t.Errorf("Expected small log not to be rotated")
	}

	big := []byte(strings.Repeat("x", maxLogFileSize+1))
	if err := os.WriteFile(logPath, big, 0644); err != nil {
		t.Fatal(err)
	}
	fs.CheckAndRotateLogFile(logPath)
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("Expected rotated log to be moved away")
	}
	info, err := os.Stat(logPath + ".old")
	if err != nil {
		t.Fatalf("Expected .old file, got %v", err)
	}
	if info.Size() != int64(len(big)) {
		t.Errorf("Expected .old size %d, got %d", len(big), info.Size())
	}
}

func TestOpenAndCloseLogFiles(t *testing.T) {
	fs, err := NewFileServiceAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := fs.OpenLogFiles(); err != nil {
		t.Fatalf("OpenLogFiles failed: %v", err)
	}
	if fs.MainLogFile == nil {
		t.Fatal("Expected main log file to be open")
	}
	f := fs.MainLogFile
	fs.CloseLogFiles()
	if fs.MainLogFile != nil {
		t.Error("Expected main log file to be cleared after close")
	}
	if _, err := f.WriteString("late\n"); err == nil {
		t.Error("Expected write to closed log file to fail")
	}
	if _, err := os.Stat(fs.MainLogPath()); err != nil {
		t.Errorf("Expected log file to exist, got %v", err)
	}
}
