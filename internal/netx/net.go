// Package netx resolves which local processes hold a TCP port.
package netx

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// lsofOutput is a test seam around the lsof invocation.
var lsofOutput = func(ctx context.Context, port int) ([]byte, error) {
	// -t: PIDs only, one per line; exit status 1 just means no match
	out, err := exec.CommandContext(ctx, "lsof", "-t",
		fmt.Sprintf("-iTCP:%d", port), "-sTCP:LISTEN").Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 && len(out) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("lsof: %w", err)
	}
	return out, nil
}

// ListenerPIDs returns the PIDs listening on the given TCP port. An empty
// slice means the port is free.
func ListenerPIDs(ctx context.Context, port int) ([]int, error) {
	out, err := lsofOutput(ctx, port)
	if err != nil {
		return nil, err
	}
	return parsePIDs(out), nil
}

func parsePIDs(out []byte) []int {
	var pids []int
	for _, line := range strings.Fields(string(out)) {
		pid, err := strconv.Atoi(line)
		if err != nil || pid <= 0 {
			continue
		}
		pids = append(pids, pid)
	}
	return pids
}
