//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"errors"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey      = 0x01
	keyPressed = 1
	pollMillis = 250
)

// input_event is a timeval followed by u16 type, u16 code and s32 value.
var (
	timevalSize = binary.Size(unix.Timeval{})
	eventSize   = timevalSize + 8
)

type inputEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// decodeEvents splits buf into whole input_event records; a trailing
// partial record is ignored.
func decodeEvents(buf []byte) []inputEvent {
	var out []inputEvent
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off+timevalSize : off+eventSize]
		out = append(out, inputEvent{
			Type:  binary.LittleEndian.Uint16(rec[0:2]),
			Code:  binary.LittleEndian.Uint16(rec[2:4]),
			Value: int32(binary.LittleEndian.Uint32(rec[4:8])),
		})
	}
	return out
}

// StartExitOnKeys watches every evdev device under /dev/input and calls
// onExit once when any of keys goes down. Watchers stop with ctx.
//
// It is best-effort: without readable input devices it logs and returns.
func StartExitOnKeys(ctx context.Context, logger logger, keys []Key, onExit func()) {
	if onExit == nil || len(keys) == 0 {
		return
	}
	watched := make(map[uint16]Key, len(keys))
	for _, k := range keys {
		watched[k.Code] = k
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for key exit")
		}
		return
	}

	var once sync.Once
	pressed := func(k Key) {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "%s pressed: exiting", k.Name)
			}
			onExit()
		})
	}
	for _, p := range paths {
		go watchDevice(ctx, p, watched, pressed)
	}
}

func watchDevice(ctx context.Context, path string, watched map[uint16]Key, pressed func(Key)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return
	}
	defer unix.Close(fd)

	buf := make([]byte, 64*eventSize)
	for ctx.Err() == nil {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, pollMillis); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				continue
			}
			return
		}
		for _, ev := range decodeEvents(buf[:n]) {
			if k, ok := watched[ev.Code]; ok && ev.Type == evKey && ev.Value == keyPressed {
				pressed(k)
				return
			}
		}
	}
}
