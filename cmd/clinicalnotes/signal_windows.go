//go:build windows

package main

import (
	"os"
)

// terminationSignals are the signals that stop the intake service
// gracefully. Windows has no SIGTERM delivery, so Ctrl+C is the only
// shutdown trigger.
var terminationSignals = []os.Signal{os.Interrupt}
