package scriptable

import (
	"bytes"
	"fmt"
	"math"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"

	"github.com/goccy/go-json"
)

// entry is one {t, v} pair of the JSON form. The kind is a plain int so
// it does not pick up Kind's text marshaling.
type entry struct {
	T int `json:"t"`
	V any `json:"v"`
}

// ToJSON encodes c as a JSON array (list) or object (compound) of
// {"t": kind, "v": value} entries. Nested containers are encoded in
// place; scalars carry their own value. Holes encode as {"t":0,"v":null}
// and absent children as a null v.
//
// Borrowed containers are walked element by element and are not
// converted to owned mode. An absent c encodes as [] or {}. Non-finite
// floats cannot be encoded and make ToJSON fail with ErrNotFinite.
func ToJSON(c Container) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil", ErrNotContainer)
	}
	tree, err := jsonTree(c)
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encoding nbt json: %w", err)
	}
	return d, nil
}

// MarshalEntry encodes v alone as one {t, v} entry. A nil v encodes as a
// hole.
func MarshalEntry(v Value) ([]byte, error) {
	e, err := jsonEntry(v)
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding nbt json: %w", err)
	}
	return d, nil
}

func jsonTree(c Container) (any, error) {
	switch x := c.(type) {
	case *List:
		n := x.Len()
		items := make([]entry, 0, n)
		for i := 0; i < n; i++ {
			e, err := jsonEntry(x.Get(i))
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, e)
		}
		return items, nil
	case *Compound:
		m := make(map[string]entry)
		for _, key := range x.Keys() {
			v := x.Get(key)
			if v == nil {
				continue
			}
			e, err := jsonEntry(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			m[key] = e
		}
		return m, nil
	}
	return nil, nil
}

func jsonEntry(v Value) (entry, error) {
	if v == nil {
		return entry{T: int(nbt.EndKind)}, nil
	}
	e := entry{T: int(v.Kind())}
	var err error
	switch x := v.(type) {
	case *List:
		if !x.IsNull() {
			e.V, err = jsonTree(x)
		}
	case *Compound:
		if !x.IsNull() {
			e.V, err = jsonTree(x)
		}
	case *Float:
		if f, ok := x.Get(); ok {
			err = checkFinite(float64(f))
			e.V = f
		}
	case *Double:
		if f, ok := x.Get(); ok {
			err = checkFinite(f)
			e.V = f
		}
	default:
		e.V = v.Any()
	}
	return e, err
}

// checkFinite fails on values JSON has no number for.
func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v is not a json number", ErrNotFinite, f)
	}
	return nil
}

// ParseJSON decodes a document written by ToJSON into owned wrappers.
// Numbers are read exactly, so int64 values survive at both ends of
// their range. Entries of a kind without a wrapper decode to holes in a
// list and are dropped from a compound. Scalar values are coerced by the
// kind as Set does.
func ParseJSON(data []byte) (Container, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadJSON, err)
	}
	return parseContainer(raw)
}

func parseContainer(raw any) (Container, error) {
	switch x := raw.(type) {
	case []any:
		items := make([]Value, len(x))
		for i, e := range x {
			v, err := parseEntry(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = v
		}
		return NewList(items), nil
	case map[string]any:
		m := make(map[string]Value, len(x))
		for key, e := range x {
			v, err := parseEntry(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			if v != nil {
				m[key] = v
			}
		}
		return NewCompound(m), nil
	}
	return nil, fmt.Errorf("%w: %w: got %T", ErrBadJSON, ErrNotContainer, raw)
}

func parseEntry(raw any) (Value, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: entry is %T, not an object", ErrBadJSON, raw)
	}
	num, ok := obj["t"].(json.Number)
	if !ok {
		return nil, fmt.Errorf("%w: entry has no numeric t", ErrBadJSON)
	}
	t, err := num.Int64()
	if err != nil {
		return nil, fmt.Errorf("%w: kind %s: %w", ErrBadJSON, num, err)
	}
	k := nbt.Kind(t)
	v := obj["v"]
	if !k.IsContainer() {
		return New(k, v), nil
	}
	if v == nil {
		return New(k, nil), nil
	}
	c, err := parseContainer(v)
	if err != nil {
		return nil, err
	}
	if c.Kind() != k {
		return nil, fmt.Errorf("%w: kind %s holds a %s", ErrBadJSON, k, c.Kind())
	}
	return c, nil
}
