// Package privilege provides process-level scheduling and identity helpers.
package privilege

import (
	"fmt"
	"os"
	"syscall"
)

// lowestPriority is the weakest scheduling priority (highest nice value).
const lowestPriority = 19

// LowerPriority drops the whole process to the weakest scheduling priority
// so the tool's own CPU usage does not skew the measurements it collects.
// Called once at startup; raising niceness never requires privileges.
func LowerPriority() error {
	if err := syscall.Setpriority(syscall.PRIO_PROCESS, 0, lowestPriority); err != nil {
		return fmt.Errorf("failed to lower process priority: %w", err)
	}
	return nil
}

// IsRoot checks if the current process is running with root privileges
// (euid == 0). perf typically needs elevated privileges for system-wide
// capture; callers use this to warn early.
func IsRoot() bool {
	return os.Geteuid() == 0
}
