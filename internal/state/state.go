package state

import (
	"sync"
	"time"
)

type Phase int

const (
	IDLE Phase = iota
	PARSING
	RESOLVING
	DRAWING
	DONE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case IDLE:
		return "idle"
	case PARSING:
		return "parsing"
	case RESOLVING:
		return "resolving"
	case DRAWING:
		return "drawing"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// RenderInfo describes the most recent render.
type RenderInfo struct {
	Source      string
	Width       int
	Height      int
	Figures     int // figures in the document
	Drawn       int
	Diagnostics int
	Err         string
	Finished    time.Time
}

type State struct {
	Phase   Phase
	Renders int64 // completed renders, failed ones included
	Last    RenderInfo
}

// Store is shared between the render pipeline and status readers such as
// the preview server.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: IDLE}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// Finish records a completed render and moves to DONE or ERROR.
func (store *Store) Finish(info RenderInfo) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if info.Finished.IsZero() {
		info.Finished = time.Now()
	}
	store.state.Last = info
	store.state.Renders++
	if info.Err != "" {
		store.state.Phase = ERROR
	} else {
		store.state.Phase = DONE
	}
}
