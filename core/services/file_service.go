package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"hospital-desk/internal/constants"
	"hospital-desk/internal/debuglog"
	"hospital-desk/internal/platform"
)

// maxLogFileSize is the size above which a log file is rotated to .old.
const maxLogFileSize = 2 * 1024 * 1024 // 2 MB

// FileService resolves the application paths and owns the log file handle.
type FileService struct {
	ExecDir    string
	ConfigPath string
	DataPath   string

	MainLogFile *os.File
}

// NewFileService resolves the paths next to the running executable.
func NewFileService() (*FileService, error) {
	ex, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("NewFileService: cannot determine executable path: %w", err)
	}
	return NewFileServiceAt(filepath.Dir(ex))
}

// NewFileServiceAt resolves the paths under execDir and creates the
// directories the application writes to.
func NewFileServiceAt(execDir string) (*FileService, error) {
	if err := platform.EnsureDirectories(execDir); err != nil {
		return nil, fmt.Errorf("NewFileService: cannot create directories: %w", err)
	}
	return &FileService{
		ExecDir:    execDir,
		ConfigPath: platform.GetConfigPath(execDir),
		DataPath:   platform.GetDataPath(execDir),
	}, nil
}

// MainLogPath is where the application log is written.
func (fs *FileService) MainLogPath() string {
	return filepath.Join(platform.GetLogsDir(fs.ExecDir), constants.MainLogFileName)
}

// OpenLogFiles redirects the standard logger to the rotated main log file.
func (fs *FileService) OpenLogFiles() error {
	logFile, err := fs.OpenLogFileWithRotation(fs.MainLogPath())
	if err != nil {
		return fmt.Errorf("OpenLogFiles: cannot open main log file: %w", err)
	}
	log.SetOutput(logFile)
	fs.MainLogFile = logFile
	return nil
}

// CloseLogFiles restores stderr logging and closes the log file.
func (fs *FileService) CloseLogFiles() {
	if fs.MainLogFile != nil {
		log.SetOutput(os.Stderr)
		debuglog.CloseWithLog("CloseLogFiles: main log", fs.MainLogFile)
		fs.MainLogFile = nil
	}
}

// OpenLogFileWithRotation opens logPath for appending, rotating it first if
// it grew past maxLogFileSize.
func (fs *FileService) OpenLogFileWithRotation(logPath string) (*os.File, error) {
	fs.CheckAndRotateLogFile(logPath)
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// CheckAndRotateLogFile renames logPath to logPath.old when it exceeds
// maxLogFileSize. Any previous .old file is dropped.
func (fs *FileService) CheckAndRotateLogFile(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil {
		return // nothing to rotate yet
	}
	if info.Size() <= maxLogFileSize {
		return
	}
	oldPath := logPath + ".old"
	_ = os.Remove(oldPath)
	if err := os.Rename(logPath, oldPath); err != nil {
		log.Printf("CheckAndRotateLogFile: Failed to rotate log file %s: %v", logPath, err)
	} else {
		log.Printf("CheckAndRotateLogFile: Rotated log file %s (size: %d bytes)", logPath, info.Size())
	}
}
