//go:build !windows

package main

import (
	"os"
	"syscall"
)

// terminationSignals are the signals that stop the intake service
// gracefully: SIGINT for interactive runs, SIGTERM for process managers
// like systemd and kubernetes.
var terminationSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
