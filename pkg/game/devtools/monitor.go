package devtools

import (
	"sync"

	"tilewalk/pkg/engine/world"
	"tilewalk/pkg/game/gameplay"
)

// Monitor holds the most recent frame published by the game loop so the
// HTTP inspector can read it from its own goroutines.
type Monitor struct {
	grid *world.Grid

	mu        sync.RWMutex
	frame     gameplay.FrameInfo
	published bool
}

// NewMonitor creates a monitor for a game running on grid.
func NewMonitor(grid *world.Grid) *Monitor {
	return &Monitor{grid: grid}
}

// Publish records fi as the latest frame. It is meant to be used as
// gameplay.Loop.OnFrame.
func (m *Monitor) Publish(fi gameplay.FrameInfo) {
	m.mu.Lock()
	m.frame = fi
	m.published = true
	m.mu.Unlock()
}

// Frame returns the latest frame, and false if none has been drawn yet.
func (m *Monitor) Frame() (gameplay.FrameInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frame, m.published
}

// Grid returns the map being shown. Grids are never mutated.
func (m *Monitor) Grid() *world.Grid {
	return m.grid
}
