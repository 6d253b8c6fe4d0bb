package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

type finalizerBox struct {
	f Finalizer
}

var crashScreen atomic.Pointer[finalizerBox]

// crashExit is swapped in tests
var (
	osExit    = os.Exit
	crashExit = osExit
)

// SetCrashScreen registers the screen restored before a crash report is printed
// Passing nil clears the registration once the screen is finalized normally
func SetCrashScreen(f Finalizer) {
	if f == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&finalizerBox{f: f})
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	reportCrash(os.Stderr, r, debug.Stack())
	crashExit(1)
}

func reportCrash(w io.Writer, r any, stack []byte) {
	if box := crashScreen.Swap(nil); box != nil {
		box.f.Fini()
	}
	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash never leaves the terminal in raw mode
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
