package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureDirectories(dir); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, d := range []string{GetLogsDir(dir), GetDataDir(dir)} {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			t.Errorf("Expected directory %s to exist", d)
		}
	}
	if want := filepath.Join(dir, "data", "hospital.json"); GetDataPath(dir) != want {
		t.Errorf("Expected %q, got %q", want, GetDataPath(dir))
	}
	if GetProcessNameForCheck() == "" {
		t.Error("Expected a process name")
	}
}
