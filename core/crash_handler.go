package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.RWMutex
	crashHandler = defaultCrashHandler
)

// SetCrashHandler replaces the handler run when a Go-launched goroutine panics
// The cmd layer installs one that restores the terminal before printing
func SetCrashHandler(fn func(r any)) {
	crashMu.Lock()
	defer crashMu.Unlock()
	if fn == nil {
		fn = defaultCrashHandler
	}
	crashHandler = fn
}

// HandleCrash dispatches a recovered panic value to the installed handler
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashMu.RLock()
	fn := crashHandler
	crashMu.RUnlock()
	fn(r)
}

func defaultCrashHandler(r any) {
	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crash still reaches the handler.
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
