package progress

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/ytget/clipy/internal/model"
)

// Bar is the state of one displayed progress bar
type Bar struct {
	ID    string // sid, or url when the server sends no sid
	VID   string // video to re-inquire when the bar is clicked
	Title string // file name
	Value float64
	Max   float64
	Label string // "rate KB/s - eta sec"
	ETA   string

	seq uint64
}

// Fraction returns progress as 0.0 to 1.0
func (b Bar) Fraction() float64 {
	if b.Max <= 0 {
		return 0
	}
	f := b.Value / b.Max
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Tooltip returns the file name with human readable sizes
func (b Bar) Tooltip() string {
	size := humanize.Bytes(uint64(max(b.Value, 0)))
	if b.Max > 0 {
		size = fmt.Sprintf("%s / %s", size, humanize.Bytes(uint64(b.Max)))
	}
	if b.Title == "" {
		return size
	}
	return fmt.Sprintf("%s (%s)", b.Title, size)
}

// Listener mirrors bar changes into a view
type Listener interface {
	BarAdded(bar Bar)
	BarUpdated(bar Bar)
	BarRemoved(id string)
}

// Change summarises one reconciliation round
type Change struct {
	Added   []string
	Updated []string
	Removed []string
}

// Empty reports whether the round changed nothing
func (c Change) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}

// Tracker owns the displayed bars
type Tracker struct {
	mu       sync.Mutex
	bars     map[string]*Bar
	seq      uint64
	listener Listener
}

// NewTracker creates a tracker; listener may be nil
func NewTracker(listener Listener) *Tracker {
	return &Tracker{
		bars:     make(map[string]*Bar),
		listener: listener,
	}
}

// SetListener replaces the listener
func (t *Tracker) SetListener(listener Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listener = listener
}

// Reconcile makes the bars match actives. Downloads without an id are
// skipped; a repeated id updates the same bar.
func (t *Tracker) Reconcile(actives []model.ActiveDownload) Change {
	t.mu.Lock()

	var change Change
	var added, updated []Bar
	seen := make(map[string]bool, len(actives))
	fresh := make(map[string]bool)

	for _, a := range actives {
		id := a.Key()
		if id == "" {
			continue
		}
		seen[id] = true

		bar, ok := t.bars[id]
		if !ok {
			t.seq++
			bar = &Bar{ID: id, seq: t.seq}
			t.bars[id] = bar
			fresh[id] = true
			change.Added = append(change.Added, id)
		} else if !fresh[id] && !slices.Contains(change.Updated, id) {
			change.Updated = append(change.Updated, id)
		}
		bar.Value = a.BytesDone
		bar.Max = a.Total
		bar.Label = a.Label()
		bar.Title = a.Name
		bar.VID = a.VID
		bar.ETA = a.GetETAString()
	}

	for id := range t.bars {
		if !seen[id] {
			delete(t.bars, id)
			change.Removed = append(change.Removed, id)
		}
	}
	sort.Strings(change.Removed)

	// Snapshot after all updates so listeners see final values
	for _, id := range change.Added {
		added = append(added, *t.bars[id])
	}
	for _, id := range change.Updated {
		updated = append(updated, *t.bars[id])
	}
	listener := t.listener
	t.mu.Unlock()

	if listener != nil {
		for _, bar := range added {
			listener.BarAdded(bar)
		}
		for _, bar := range updated {
			listener.BarUpdated(bar)
		}
		for _, id := range change.Removed {
			listener.BarRemoved(id)
		}
	}
	return change
}

// Has reports whether a bar with id is displayed
func (t *Tracker) Has(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.bars[id]
	return ok
}

// Bar returns a copy of the bar with id
func (t *Tracker) Bar(id string) (Bar, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	bar, ok := t.bars[id]
	if !ok {
		return Bar{}, false
	}
	return *bar, true
}

// Bars returns copies of all bars in creation order
func (t *Tracker) Bars() []Bar {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Bar, 0, len(t.bars))
	for _, bar := range t.bars {
		out = append(out, *bar)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Len returns the number of bars
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.bars)
}
