package system

import (
	"context"
	"fmt"
	"runtime"
)

// ViewerCommand returns the command that opens a file in the host's default
// image viewer.
func ViewerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// OpenViewer hands path to the host's default image viewer.
func OpenViewer(ctx context.Context, r Runner, path string) error {
	cmd, args := ViewerCommand(runtime.GOOS)
	_, stderr, err := r.Run(ctx, cmd, append(args, path)...)
	if err != nil {
		return fmt.Errorf("open viewer failed: %v: %s", err, stderr)
	}
	return nil
}
