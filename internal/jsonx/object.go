package jsonx

import (
	"sort"
	"strconv"
)

// maxIndexKey is the largest key treated as an array index when ordering
const maxIndexKey = 1<<32 - 2

// Entry is a single key/value pair of an Object
type Entry struct {
	Key   string
	Value any
}

// Object is a JSON object that remembers the order of its members
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject creates an empty object
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores value under key. A repeated key keeps its original position.
func (o *Object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of members
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member names in insertion order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Text returns the display text of key, or "" when it is absent
func (o *Object) Text(key string) string {
	v, ok := o.Get(key)
	if !ok {
		return ""
	}
	return String(v)
}

// Float returns key as a number
func (o *Object) Float(key string) (float64, bool) {
	v, ok := o.Get(key)
	if !ok || !IsNumber(v) {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Array returns key as an array
func (o *Object) Array(key string) ([]any, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}

// Entries returns the members in display order: integer-like keys first in
// ascending numeric order, then the remaining keys in insertion order.
func (o *Object) Entries() []Entry {
	if o == nil {
		return nil
	}

	var indexKeys, namedKeys []string
	for _, k := range o.keys {
		if _, ok := indexKey(k); ok {
			indexKeys = append(indexKeys, k)
		} else {
			namedKeys = append(namedKeys, k)
		}
	}
	sort.SliceStable(indexKeys, func(i, j int) bool {
		a, _ := indexKey(indexKeys[i])
		b, _ := indexKey(indexKeys[j])
		return a < b
	})

	entries := make([]Entry, 0, len(o.keys))
	for _, k := range indexKeys {
		entries = append(entries, Entry{Key: k, Value: o.values[k]})
	}
	for _, k := range namedKeys {
		entries = append(entries, Entry{Key: k, Value: o.values[k]})
	}
	return entries
}

// indexKey parses k as a canonical array index ("0", "7", "42" but not "07")
func indexKey(k string) (uint64, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(k, 10, 64)
	if err != nil || n > maxIndexKey {
		return 0, false
	}
	return n, true
}
