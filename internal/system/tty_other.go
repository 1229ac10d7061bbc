//go:build !linux

package system

// EnterGraphics is a no-op outside Linux, where there is no VT to switch.
func EnterGraphics(l logger) (restore func()) {
	if l != nil {
		l.Infof("tty", "console mode switching unsupported on this platform")
	}
	return func() {}
}
