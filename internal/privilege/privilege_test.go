package privilege

import (
	"os"
	"syscall"
	"testing"
)

func TestIsRoot(t *testing.T) {
	result := IsRoot()

	expected := os.Geteuid() == 0
	if result != expected {
		t.Errorf("IsRoot() = %v, expected %v (euid=%d)", result, expected, os.Geteuid())
	}
}

func TestLowerPriority(t *testing.T) {
	// Raising the nice value never needs privileges, so this must succeed
	// for any user. Note this permanently lowers the test process priority.
	if err := LowerPriority(); err != nil {
		t.Fatalf("LowerPriority() returned error: %v", err)
	}

	prio, err := syscall.Getpriority(syscall.PRIO_PROCESS, 0)
	if err != nil {
		t.Fatalf("Getpriority failed: %v", err)
	}

	// Getpriority returns 20-nice on Linux, so the weakest priority reads
	// back as 1.
	if prio != 20-lowestPriority {
		t.Errorf("process priority = %d, expected %d", prio, 20-lowestPriority)
	}
}
