package panel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newPanel(index int, vid string) *Panel {
	return &Panel{Index: index, VID: vid, Title: "title " + vid}
}

func TestBoard_InsertKeepsOrder(t *testing.T) {
	b := NewBoard()
	b.Insert(newPanel(1, "a"))
	b.Insert(newPanel(2, "b"))
	b.Insert(nil)

	panels := b.Panels()
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "a", panels[0].VID)
	assert.Equal(t, "b", panels[1].VID)
}

func TestBoard_Toggle(t *testing.T) {
	b := NewBoard()
	b.Insert(newPanel(1, "a"))

	expanded, ok := b.Toggle(1)
	assert.True(t, ok)
	assert.True(t, expanded)

	expanded, ok = b.Toggle(1)
	assert.True(t, ok)
	assert.False(t, expanded)

	_, ok = b.Toggle(99)
	assert.False(t, ok)
}

func TestBoard_CloseAndClear(t *testing.T) {
	b := NewBoard()
	b.Insert(newPanel(1, "a"))
	b.Insert(newPanel(2, "b"))
	b.Insert(newPanel(3, "c"))

	assert.True(t, b.Close(2))
	assert.False(t, b.Close(2))

	_, ok := b.Get(2)
	assert.False(t, ok)
	p, ok := b.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "c", p.VID)

	assert.Equal(t, 2, b.Clear())
	assert.Equal(t, 0, b.Len())
}

func TestBoard_PanelsReturnsCopies(t *testing.T) {
	b := NewBoard()
	b.Insert(newPanel(1, "a"))

	panels := b.Panels()
	panels[0].Expanded = true

	p, _ := b.Get(1)
	assert.False(t, p.Expanded)
}

func TestBoard_Concurrent(t *testing.T) {
	b := NewBoard()
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.Insert(newPanel(i, "v"))
			b.Toggle(i)
			_ = b.Panels()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, b.Len())
}
