package panel

import "sync"

// Board holds the panels on display in insertion order
type Board struct {
	mu     sync.RWMutex
	panels []*Panel
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Insert appends p to the board
func (b *Board) Insert(p *Panel) {
	if p == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.panels = append(b.panels, p)
}

// Toggle flips the details visibility of the panel with index and returns
// the new state
func (b *Board) Toggle(index int) (expanded bool, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(index)
	if i < 0 {
		return false, false
	}
	b.panels[i].Expanded = !b.panels[i].Expanded
	return b.panels[i].Expanded, true
}

// Close removes the panel with index
func (b *Board) Close(index int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.find(index)
	if i < 0 {
		return false
	}
	b.panels = append(b.panels[:i], b.panels[i+1:]...)
	return true
}

// Clear removes every panel and returns how many were removed
func (b *Board) Clear() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.panels)
	b.panels = nil
	return n
}

// Get returns a copy of the panel with index
func (b *Board) Get(index int) (Panel, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i := b.find(index)
	if i < 0 {
		return Panel{}, false
	}
	return *b.panels[i], true
}

// Panels returns copies of the displayed panels in order
func (b *Board) Panels() []Panel {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Panel, 0, len(b.panels))
	for _, p := range b.panels {
		out = append(out, *p)
	}
	return out
}

// Len returns the number of displayed panels
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.panels)
}

func (b *Board) find(index int) int {
	for i, p := range b.panels {
		if p.Index == index {
			return i
		}
	}
	return -1
}
