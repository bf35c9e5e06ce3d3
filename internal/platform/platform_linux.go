//go:build linux
// +build linux

package platform

import (
	"os/exec"

	"hospital-desk/internal/constants"
)

// GetProcessNameForCheck returns the executable name other instances run under
func GetProcessNameForCheck() string {
	return constants.ExecName
}

// OpenFolder opens a folder in the default file manager
func OpenFolder(path string) error {
	return exec.Command("xdg-open", path).Start()
}
