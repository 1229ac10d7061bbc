//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func event(typ, code uint16, value int32) []byte {
	rec := make([]byte, eventSize)
	binary.LittleEndian.PutUint16(rec[timevalSize:], typ)
	binary.LittleEndian.PutUint16(rec[timevalSize+2:], code)
	binary.LittleEndian.PutUint32(rec[timevalSize+4:], uint32(value))
	return rec
}

func TestDecodeEvents(t *testing.T) {
	buf := append(event(evKey, KeyF4.Code, keyPressed), event(0, 0, 0)...)
	buf = append(buf, 1, 2, 3)

	got := decodeEvents(buf)
	assert.Equal(t, []inputEvent{
		{Type: evKey, Code: 62, Value: 1},
		{},
	}, got)
	assert.Empty(t, decodeEvents(buf[:eventSize-1]))
}

func TestStartExitOnKeys_noop(t *testing.T) {
	called := false
	StartExitOnKeys(context.Background(), nil, nil, func() { called = true })
	StartExitOnKeys(context.Background(), nil, ExitKeys, nil)
	assert.False(t, called)
}
