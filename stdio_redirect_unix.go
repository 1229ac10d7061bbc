//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points stderr, and stdout unless it carries the image, at
// path so panics from any goroutine land in the file.
func redirectStdIO(path string, keepStdout bool) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if !keepStdout {
		if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
			return err
		}
	}
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}
