package types

import (
	"maps"
	"strings"
)

// Record is a loosely typed source row: a CSV row keyed by header, a JSON
// object from a supplement file, or a SWAPI resource body.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Merge returns a copy of r overlaid with every key of src except those
// listed in skip. Neither input is modified.
func (r Record) Merge(src Record, skip ...string) Record {
	out := make(Record, len(r)+len(src))
	maps.Copy(out, r)
	for k, v := range src {
		if containsKey(skip, k) {
			continue
		}
		out[k] = v
	}
	return out
}

// Text returns the value stored under key when it is a string.
func (r Record) Text(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

func containsKey(keys []string, k string) bool {
	for _, s := range keys {
		if strings.EqualFold(s, k) {
			return true
		}
	}
	return false
}

// Member is a person or droid that can serve on a crew or travel as a
// passenger. The string form is the member's name.
type Member interface {
	String() string
	isMember()
}
