// Package core holds process-wide plumbing shared by the front ends
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal or window before a crash report is printed
// tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashScreen   Finalizer
	crashOut      io.Writer = os.Stderr
	crashExit               = os.Exit
	crashHandling bool
)

// SetCrashScreen registers the screen finalized by HandleCrash; nil clears it
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// HandleCrash restores the screen, prints the panic value and stack, and exits
// Only the first concurrent crash is reported
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	if crashHandling {
		crashMu.Unlock()
		select {} // another goroutine is already exiting
	}
	crashHandling = true
	screen := crashScreen
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	// \r\n keeps the report readable if the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash never leaves the terminal raw
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
