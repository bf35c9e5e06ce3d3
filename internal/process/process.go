package process

import (
	"os"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ProcessInfo is a small struct representing a running process.
type ProcessInfo struct {
	PID  int
	Name string
}

// GetProcesses returns a list of running processes in a platform-agnostic format.
func GetProcesses() ([]ProcessInfo, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		out = append(out, ProcessInfo{PID: p.Pid(), Name: p.Executable()})
	}
	return out, nil
}

// FindOthersByName returns the processes called name (case-insensitive),
// other than the current one.
func FindOthersByName(name string) ([]ProcessInfo, error) {
	procs, err := GetProcesses()
	if err != nil {
		return nil, err
	}
	return filterByName(procs, name, os.Getpid()), nil
}

func filterByName(procs []ProcessInfo, name string, selfPID int) []ProcessInfo {
	var out []ProcessInfo
	for _, p := range procs {
		if p.PID == selfPID {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out
}
