package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// tree is the local copy of the value under a streamed location.
type tree struct {
	root any
}

type treeEvent struct {
	Path string          `json:"path"`
	Data json.RawMessage `json:"data"`
}

func decodeValue(raw json.RawMessage) (any, error) {
	v, err := decodeRaw(raw)
	if err != nil {
		return nil, err
	}
	return normalize(v), nil
}

// decodeRaw keeps null members, which patch events use to delete children.
func decodeRaw(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// put replaces the value at the event path.
func (t *tree) put(data []byte) error {
	var ev treeEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("decode put event: %w", err)
	}
	value, err := decodeValue(ev.Data)
	if err != nil {
		return fmt.Errorf("decode put data: %w", err)
	}
	t.root = setAt(t.root, splitPath(ev.Path), value)
	return nil
}

// patch replaces each listed child of the event path.
func (t *tree) patch(data []byte) error {
	var ev treeEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("decode patch event: %w", err)
	}
	value, err := decodeRaw(ev.Data)
	if err != nil {
		return fmt.Errorf("decode patch data: %w", err)
	}
	children, ok := value.(map[string]any)
	if !ok {
		if value == nil {
			return nil
		}
		return fmt.Errorf("patch %s: data is not an object", ev.Path)
	}
	base := splitPath(ev.Path)
	for key, child := range children {
		t.root = setAt(t.root, append(base[:len(base):len(base)], splitPath(key)...), normalize(child))
	}
	return nil
}

func (t *tree) snapshot(path string) (Snapshot, error) {
	raw, err := json.Marshal(t.root)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode %s: %w", path, err)
	}
	return Snapshot{Path: path, Raw: raw}, nil
}

func setAt(node any, segments []string, value any) any {
	if len(segments) == 0 {
		return value
	}
	var object map[string]any
	switch n := node.(type) {
	case map[string]any:
		object = n
	case []any:
		object = arrayToObject(n)
	default:
		object = map[string]any{}
	}
	key := segments[0]
	child := setAt(object[key], segments[1:], value)
	if child == nil {
		delete(object, key)
	} else {
		object[key] = child
	}
	if len(object) == 0 {
		return nil
	}
	return object
}

func arrayToObject(array []any) map[string]any {
	object := make(map[string]any, len(array))
	for i, v := range array {
		if v != nil {
			object[strconv.Itoa(i)] = v
		}
	}
	return object
}

// normalize drops null members and empty containers, which the store treats
// as absent.
func normalize(v any) any {
	switch n := v.(type) {
	case map[string]any:
		for key, child := range n {
			if c := normalize(child); c == nil {
				delete(n, key)
			} else {
				n[key] = c
			}
		}
		if len(n) == 0 {
			return nil
		}
		return n
	case []any:
		empty := true
		for i, child := range n {
			n[i] = normalize(child)
			if n[i] != nil {
				empty = false
			}
		}
		if empty {
			return nil
		}
		return n
	default:
		return v
	}
}
