//go:build !linux

package system

import "context"

// StartExitOnKeys needs evdev; elsewhere only ctx cancellation ends a display.
func StartExitOnKeys(ctx context.Context, logger logger, keys []Key, onExit func()) {
	if logger != nil {
		logger.Infof("input", "key exit unsupported on this platform")
	}
}
