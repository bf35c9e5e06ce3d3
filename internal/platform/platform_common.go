package platform

import (
	"os"
	"path/filepath"

	"hospital-desk/internal/constants"
)

// GetConfigPath returns the path to hospital-desk.jsonc
func GetConfigPath(execDir string) string {
	return filepath.Join(execDir, constants.ConfigFileName)
}

// GetDataDir returns the path to the data directory
func GetDataDir(execDir string) string {
	return filepath.Join(execDir, constants.DataDirName)
}

// GetDataPath returns the default path of the hospital database file
func GetDataPath(execDir string) string {
	return filepath.Join(GetDataDir(execDir), constants.DataFileName)
}

// GetLogsDir returns the path to logs directory
func GetLogsDir(execDir string) string {
	return filepath.Join(execDir, constants.LogsDirName)
}

// EnsureDirectories creates necessary directories if they don't exist
func EnsureDirectories(execDir string) error {
	dirs := []string{
		GetLogsDir(execDir),
		GetDataDir(execDir),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}
