//go:build darwin
// +build darwin

package platform

import (
	"os/exec"

	"hospital-desk/internal/constants"
)

// GetProcessNameForCheck returns the executable name other instances run under
func GetProcessNameForCheck() string {
	return constants.ExecName
}

// OpenFolder opens a folder in Finder
func OpenFolder(path string) error {
	return exec.Command("open", path).Start()
}
