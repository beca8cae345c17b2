package types

import (
	"bytes"
	"encoding/json"
)

// Ordered is a string-keyed map that remembers insertion order. It
// serializes to a JSON object whose keys appear in that order. The zero
// value is ready to use.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrdered returns an empty Ordered map.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{values: make(map[string]V)}
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (o *Ordered[V]) Set(key string, v V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Ordered[V]) Get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len reports the number of keys.
func (o *Ordered[V]) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order.
func (o *Ordered[V]) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Values returns the values in insertion order.
func (o *Ordered[V]) Values() []V {
	out := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.values[k])
	}
	return out
}

// MarshalJSON encodes the map as an object in insertion order.
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
