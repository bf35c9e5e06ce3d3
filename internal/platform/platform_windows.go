//go:build windows
// +build windows

package platform

import (
	"os/exec"

	"hospital-desk/internal/constants"
)

// GetProcessNameForCheck returns the executable name other instances run under
func GetProcessNameForCheck() string {
	return constants.ExecName + ".exe"
}

// OpenFolder opens a folder in Explorer
func OpenFolder(path string) error {
	return exec.Command("explorer", path).Start()
}
