package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCPURange expands an inclusive "<start>-<end>" CPU range into the
// explicit list of CPU indices, e.g. "0-3" -> [0 1 2 3]. The literal "all"
// is not handled here; callers decide whether a range applies at all.
func ParseCPURange(s string) ([]int, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("invalid cpu range %q: expected <start>-<end>", s)
	}

	first, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return nil, fmt.Errorf("invalid cpu range %q: start is not an integer", s)
	}
	last, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return nil, fmt.Errorf("invalid cpu range %q: end is not an integer", s)
	}

	if first < 0 {
		return nil, fmt.Errorf("invalid cpu range %q: start is negative", s)
	}
	if first > last {
		return nil, fmt.Errorf("invalid cpu range %q: start exceeds end", s)
	}

	cpus := make([]int, 0, last-first+1)
	for cpu := first; cpu <= last; cpu++ {
		cpus = append(cpus, cpu)
	}
	return cpus, nil
}

// FormatCPUList renders a CPU index list in the comma-joined form perf
// expects for its -C flag.
func FormatCPUList(cpus []int) string {
	parts := make([]string, len(cpus))
	for i, cpu := range cpus {
		parts[i] = strconv.Itoa(cpu)
	}
	return strings.Join(parts, ",")
}
