package process

import (
	"os"
	"testing"
)

func TestFilterByName(t *testing.T) {
	procs := []ProcessInfo{
		{PID: 1, Name: "init"},
		{PID: 10, Name: "hospital-desk"},
		{PID: 11, Name: "Hospital-Desk"},
		{PID: 12, Name: "hospital-desk-helper"},
	}
	got := filterByName(procs, "hospital-desk", 10)
	if len(got) != 1 || got[0].PID != 11 {
		t.Errorf("Expected only PID 11, got %+v", got)
	}
}

func TestGetProcesses_IncludesSelf(t *testing.T) {
	procs, err := GetProcesses()
	if err != nil {
		t.Skipf("process listing unavailable: %v", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.PID == self {
			return
		}
	}
	t.Errorf("Expected PID %d in process list", self)
}
