package scriptable

import (
	"maps"
	"slices"

	"github.com/CuiZhenhang/scriptable-nbt/debug"
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

// compoundStore is compoundRef, compoundOwned, or nil when absent.
type compoundStore interface {
	isCompoundStore()
}

type compoundRef struct {
	node *nbt.Node
}

type compoundOwned map[string]Value

func (compoundRef) isCompoundStore()   {}
func (compoundOwned) isCompoundStore() {}

// Compound is a compound tag. It borrows or owns its children the same way
// List does; see List for the rules. In addition, RefCompoundTag exposes
// the borrowed node for in-place edits of the original tree.
type Compound struct {
	store compoundStore
}

// NewCompound returns a Compound set from v: nil, a compound *nbt.Node or a
// map[string]Value.
func NewCompound(v any) *Compound {
	c := &Compound{}
	c.Set(v)
	return c
}

func (*Compound) Kind() nbt.Kind { return nbt.CompoundKind }
func (*Compound) isValue()       {}
func (*Compound) isContainer()   {}

func (c *Compound) Set(v any) bool {
	switch x := v.(type) {
	case nil:
		c.store = nil
	case *nbt.Node:
		if x == nil {
			c.store = nil
			return true
		}
		if x.Kind != nbt.CompoundKind {
			return false
		}
		c.store = compoundRef{node: x}
	case map[string]Value:
		if x == nil {
			x = map[string]Value{}
		}
		c.store = compoundOwned(x)
	default:
		return false
	}
	return true
}

// IsRef reports whether c borrows a compound node.
func (c *Compound) IsRef() bool {
	_, ok := c.store.(compoundRef)
	return ok
}

func (c *Compound) IsNull() bool {
	return c.store == nil
}

// Any returns the same as Values, typed as any.
func (c *Compound) Any() any {
	if c.store == nil {
		return nil
	}
	return c.Values()
}

// Values returns the children by key, or nil when c is absent. Children of
// unknown kind are left out. The map is live: changes to it change c.
//
// On a borrowed compound this wraps the whole subtree and switches c to
// owned mode. Use Get for single children.
func (c *Compound) Values() map[string]Value {
	switch s := c.store.(type) {
	case compoundOwned:
		return s
	case compoundRef:
		m := materializeCompound(s.node)
		c.store = compoundOwned(m)
		return m
	}
	return nil
}

func materializeCompound(node *nbt.Node) map[string]Value {
	if debug.Materialize() {
		debug.Logf("materialize compound %v\n", node)
	}
	keys := node.AllKeys()
	m := make(map[string]Value, len(keys))
	for _, key := range keys {
		k := node.KindOf(key)
		v := New(k, nil)
		if v == nil {
			warnUnknown(k, nbt.CompoundKind)
			continue
		}
		v.FromCompound(node, key)
		m[key] = v
	}
	return m
}

// Keys returns the keys of c without converting it. Borrowed compounds
// list keys in tree order, owned ones in sorted order.
func (c *Compound) Keys() []string {
	switch s := c.store.(type) {
	case compoundOwned:
		return slices.Sorted(maps.Keys(s))
	case compoundRef:
		return s.node.AllKeys()
	}
	return nil
}

// Get returns the child at key, or nil when there is none. On a borrowed
// compound each call wraps the child afresh.
func (c *Compound) Get(key string) Value {
	switch s := c.store.(type) {
	case compoundOwned:
		v, ok := s[key]
		if !ok {
			return nil
		}
		return v
	case compoundRef:
		return FromCompoundKey(s.node, key)
	}
	return nil
}

// CompoundTag returns c as a new compound node, or nil when c is absent.
// Owned children are written in sorted key order; absent ones are skipped.
func (c *Compound) CompoundTag() *nbt.Node {
	switch s := c.store.(type) {
	case compoundRef:
		return s.node.Clone()
	case compoundOwned:
		res := nbt.NewCompound()
		for _, key := range slices.Sorted(maps.Keys(s)) {
			if v := s[key]; v != nil {
				v.ApplyToCompound(res, key)
			}
		}
		return res
	}
	return nil
}

// RefCompoundTag returns the borrowed node itself, or nil unless c is in
// reference mode. Call it before Values, which ends reference mode.
func (c *Compound) RefCompoundTag() *nbt.Node {
	if s, ok := c.store.(compoundRef); ok {
		return s.node
	}
	return nil
}

func (c *Compound) FromCompound(src *nbt.Node, key string) {
	if !src.ContainsOfKind(key, nbt.CompoundKind) {
		c.store = nil
		return
	}
	c.store = compoundRef{node: src.Get(key)}
}

func (c *Compound) ApplyToCompound(dst *nbt.Node, key string) {
	t := c.CompoundTag()
	if t == nil {
		dst.Remove(key)
		return
	}
	dst.Put(key, t)
}

func (c *Compound) FromList(src *nbt.Node, index int) {
	if !inList(src, index) || src.KindAt(index) != nbt.CompoundKind {
		c.store = nil
		return
	}
	c.store = compoundRef{node: src.At(index)}
}

func (c *Compound) ApplyToList(dst *nbt.Node, index int) {
	if index < 0 {
		return
	}
	t := c.CompoundTag()
	if t == nil {
		return
	}
	dst.Set(index, t)
}
