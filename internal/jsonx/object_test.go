package jsonx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObject_EntriesOrder(t *testing.T) {
	obj := Decode(`{"title":"T","10":"ten","vid":"abc","2":"two","07":"padded","0":"zero"}`).(*Object)

	var keys []string
	for _, e := range obj.Entries() {
		keys = append(keys, e.Key)
	}

	assert.Equal(t, []string{"0", "2", "10", "title", "vid", "07"}, keys)
}

func TestObject_NilSafe(t *testing.T) {
	var obj *Object

	assert.Equal(t, 0, obj.Len())
	assert.False(t, obj.Has("x"))
	assert.Nil(t, obj.Entries())
	assert.Nil(t, obj.Keys())
	assert.Equal(t, "", obj.Text("x"))
}

func TestObject_Float(t *testing.T) {
	obj := NewObject()
	obj.Set("rate", 12.5)
	obj.Set("eta", "soon")
	obj.Set("count", 3)

	rate, ok := obj.Float("rate")
	assert.True(t, ok)
	assert.Equal(t, 12.5, rate)

	_, ok = obj.Float("eta")
	assert.False(t, ok)

	count, ok := obj.Float("count")
	assert.True(t, ok)
	assert.Equal(t, 3.0, count)

	_, ok = obj.Float("missing")
	assert.False(t, ok)
}
