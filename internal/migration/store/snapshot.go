// Package store provides realtime document store clients.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when decoding a snapshot without a value.
	ErrNotFound = errors.New("store: value does not exist")
	// ErrNotCollection is returned when listing children of a scalar value.
	ErrNotCollection = errors.New("store: value is not a collection")
)

// Snapshot is the value at a path at one point in time.
type Snapshot struct {
	Path string
	Raw  json.RawMessage
}

// Child is one entry of a collection snapshot.
type Child struct {
	Key   string
	Value Snapshot
}

// Exists reports whether the path holds a value.
func (s Snapshot) Exists() bool {
	raw := bytes.TrimSpace(s.Raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// Decode unmarshals the value into v.
func (s Snapshot) Decode(v any) error {
	if !s.Exists() {
		return ErrNotFound
	}
	if err := json.Unmarshal(s.Raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return nil
}

// Children lists the non-null entries of an object or array value in store
// key order: keys that are 32-bit integers come first in numeric order, the
// rest follow in lexicographic order. A missing value has no children.
func (s Snapshot) Children() ([]Child, error) {
	if !s.Exists() {
		return nil, nil
	}
	raw := bytes.TrimSpace(s.Raw)
	switch raw[0] {
	case '{':
		var object map[string]json.RawMessage
		if err := json.Unmarshal(raw, &object); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.Path, err)
		}
		children := make([]Child, 0, len(object))
		for key, value := range object {
			child := s.child(key, value)
			if child.Value.Exists() {
				children = append(children, child)
			}
		}
		sort.Slice(children, func(i, j int) bool {
			return keyLess(children[i].Key, children[j].Key)
		})
		return children, nil
	case '[':
		var array []json.RawMessage
		if err := json.Unmarshal(raw, &array); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.Path, err)
		}
		children := make([]Child, 0, len(array))
		for i, value := range array {
			child := s.child(strconv.Itoa(i), value)
			if child.Value.Exists() {
				children = append(children, child)
			}
		}
		return children, nil
	default:
		return nil, fmt.Errorf("%s: %w", s.Path, ErrNotCollection)
	}
}

func (s Snapshot) child(key string, raw json.RawMessage) Child {
	return Child{
		Key: key,
		Value: Snapshot{
			Path: joinPath(s.Path, key),
			Raw:  raw,
		},
	}
}

func keyLess(a, b string) bool {
	ai, aInt := intKey(a)
	bi, bInt := intKey(b)
	switch {
	case aInt && bInt:
		return ai < bi
	case aInt:
		return true
	case bInt:
		return false
	default:
		return a < b
	}
}

// intKey reports whether key is the canonical decimal form of a 32-bit integer.
func intKey(key string) (int64, bool) {
	v, err := strconv.ParseInt(key, 10, 32)
	if err != nil || strconv.FormatInt(v, 10) != key {
		return 0, false
	}
	return v, true
}

func joinPath(base, key string) string {
	base = strings.Trim(base, "/")
	if base == "" {
		return key
	}
	return base + "/" + key
}

func splitPath(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
