//go:build !unix

package main

import "os"

// Without dup2 only writes through os.Stdout/os.Stderr are captured; runtime
// panics still go to the original stderr.
func redirectStdIO(path string, keepStdout bool) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if !keepStdout {
		os.Stdout = f
	}
	os.Stderr = f
	return nil
}
