// Command killport frees local development ports: it finds the processes
// listening on each given TCP port, asks them to terminate and escalates
// to SIGKILL when they ignore it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/ysemenovs/deskhub/internal/netx"
)

const gracePeriod = 3 * time.Second

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <port> [port...]\n", os.Args[0])
		os.Exit(2)
	}

	ctx := context.Background()
	for _, arg := range os.Args[1:] {
		port, err := strconv.Atoi(arg)
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("invalid port %q", arg)
		}
		if err := freePort(ctx, port); err != nil {
			log.Fatalf("port %d: %v", port, err)
		}
	}
}

func freePort(ctx context.Context, port int) error {
	pids, err := netx.ListenerPIDs(ctx, port)
	if err != nil {
		return err
	}
	if len(pids) == 0 {
		fmt.Printf("port %d: nothing listening\n", port)
		return nil
	}

	for _, pid := range pids {
		fmt.Printf("port %d: terminating pid %d\n", port, pid)
		if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
			fmt.Printf("port %d: pid %d: %v\n", port, pid, err)
		}
	}

	deadline := time.Now().Add(gracePeriod)
	for time.Now().Before(deadline) {
		time.Sleep(200 * time.Millisecond)
		if pids, err = netx.ListenerPIDs(ctx, port); err != nil || len(pids) == 0 {
			return err
		}
	}

	for _, pid := range pids {
		fmt.Printf("port %d: killing pid %d\n", port, pid)
		if err := syscall.Kill(pid, syscall.SIGKILL); err != nil {
			fmt.Printf("port %d: pid %d: %v\n", port, pid, err)
		}
	}
	return nil
}
