package cache

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ytget/clipy/internal/jsonx"
)

// Size limits
const (
	DefaultSize = 256
	MinSize     = 1
	MaxSize     = 10000
)

// FirstIndex is the index given to the first stored result
const FirstIndex = 1

// PanelCache maps panel indices to inquiry results
type PanelCache struct {
	mu     sync.Mutex
	store  *lru.Cache[int, *jsonx.Object]
	next   int
	logger *log.Logger
}

// New creates a cache holding at most size results
func New(size int, logger *log.Logger) (*PanelCache, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("cache size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	if logger == nil {
		logger = log.Default()
	}
	c := &PanelCache{
		next:   FirstIndex,
		logger: logger.WithPrefix("cache"),
	}

	store, err := lru.NewWithEvict[int, *jsonx.Object](size, func(index int, obj *jsonx.Object) {
		c.logger.Debug("evicted inquiry", "index", index, "vid", obj.Text("vid"))
	})
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	c.store = store
	return c, nil
}

// Store saves obj under the next index and returns that index
func (c *PanelCache) Store(obj *jsonx.Object) int {
	c.mu.Lock()
	index := c.next
	c.next++
	c.mu.Unlock()

	c.store.Add(index, obj)
	return index
}

// Get returns the result stored under index
func (c *PanelCache) Get(index int) (*jsonx.Object, bool) {
	return c.store.Get(index)
}

// Len returns the number of cached results
func (c *PanelCache) Len() int {
	return c.store.Len()
}

// Remove drops the result stored under index and reports whether it was
// still cached
func (c *PanelCache) Remove(index int) bool {
	return c.store.Remove(index)
}

// Purge drops every cached result. Indices keep counting up.
func (c *PanelCache) Purge() {
	c.store.Purge()
}
