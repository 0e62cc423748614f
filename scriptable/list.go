package scriptable

import (
	"slices"

	"github.com/CuiZhenhang/scriptable-nbt/debug"
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

// listStore is listRef, listOwned, or nil when the list is absent.
type listStore interface {
	isListStore()
}

// listRef borrows a list node from a tag tree.
type listRef struct {
	node *nbt.Node
}

// listOwned holds wrapped elements; a nil element is a hole.
type listOwned []Value

func (listRef) isListStore()   {}
func (listOwned) isListStore() {}

// List is a list tag.
//
// A List either borrows a list node (reference mode) or owns a slice of
// Values (owned mode). FromCompound, FromList and Set with a *nbt.Node
// borrow; Set with a []Value owns. Values converts a borrowed list to an
// owned one, once and for good; after that the borrowed node is no longer
// consulted. Get and Len never convert.
type List struct {
	store listStore
}

// NewList returns a List set from v: nil, a list *nbt.Node or a []Value.
func NewList(v any) *List {
	l := &List{}
	l.Set(v)
	return l
}

func (*List) Kind() nbt.Kind { return nbt.ListKind }
func (*List) isValue()       {}
func (*List) isContainer()   {}

func (l *List) Set(v any) bool {
	switch x := v.(type) {
	case nil:
		l.store = nil
	case *nbt.Node:
		if x == nil {
			l.store = nil
			return true
		}
		if x.Kind != nbt.ListKind {
			return false
		}
		l.store = listRef{node: x}
	case []Value:
		l.store = listOwned(x)
	default:
		return false
	}
	return true
}

// IsRef reports whether l borrows a list node.
func (l *List) IsRef() bool {
	_, ok := l.store.(listRef)
	return ok
}

func (l *List) IsNull() bool {
	return l.store == nil
}

// Any returns the same as Values, typed as any.
func (l *List) Any() any {
	if l.store == nil {
		return nil
	}
	return l.Values()
}

// Values returns every element, or nil when l is absent. Elements of
// unknown kind are holes.
//
// On a borrowed list this wraps the whole subtree and switches l to owned
// mode. Use Get for single elements.
func (l *List) Values() []Value {
	switch s := l.store.(type) {
	case listOwned:
		return s
	case listRef:
		items := materializeList(s.node)
		l.store = listOwned(items)
		return items
	}
	return nil
}

func materializeList(node *nbt.Node) []Value {
	if debug.Materialize() {
		debug.Logf("materialize list %v\n", node)
	}
	n := node.Len()
	items := make([]Value, n)
	for i := 0; i < n; i++ {
		k := node.KindAt(i)
		v := New(k, nil)
		if v == nil {
			warnUnknown(k, nbt.ListKind)
			continue
		}
		v.FromList(node, i)
		items[i] = v
	}
	return items
}

// Append adds v at the end, converting l to owned mode first. A slice
// given to Set or NewList is never written past its length.
func (l *List) Append(v Value) {
	l.store = listOwned(append(slices.Clip(l.Values()), v))
}

// Len returns the number of elements, holes included.
func (l *List) Len() int {
	switch s := l.store.(type) {
	case listOwned:
		return len(s)
	case listRef:
		return s.node.Len()
	}
	return 0
}

// Get returns the element at index, or nil when there is none. On a
// borrowed list each call wraps the element afresh; nested lists and
// compounds borrow from the same tree.
func (l *List) Get(index int) Value {
	if index < 0 {
		return nil
	}
	switch s := l.store.(type) {
	case listOwned:
		if index >= len(s) {
			return nil
		}
		return s[index]
	case listRef:
		return FromListIndex(s.node, index)
	}
	return nil
}

// ListTag returns l as a new list node, or nil when l is absent. Holes and
// absent elements are skipped, so later elements move down.
func (l *List) ListTag() *nbt.Node {
	switch s := l.store.(type) {
	case listRef:
		return s.node.Clone()
	case listOwned:
		res := nbt.NewList()
		for i, v := range s {
			if v != nil {
				v.ApplyToList(res, i)
			}
		}
		return res
	}
	return nil
}

func (l *List) FromCompound(c *nbt.Node, key string) {
	if !c.ContainsOfKind(key, nbt.ListKind) {
		l.store = nil
		return
	}
	l.store = listRef{node: c.Get(key)}
}

func (l *List) ApplyToCompound(c *nbt.Node, key string) {
	t := l.ListTag()
	if t == nil {
		c.Remove(key)
		return
	}
	c.Put(key, t)
}

func (l *List) FromList(src *nbt.Node, index int) {
	if !inList(src, index) || src.KindAt(index) != nbt.ListKind {
		l.store = nil
		return
	}
	l.store = listRef{node: src.At(index)}
}

func (l *List) ApplyToList(dst *nbt.Node, index int) {
	if index < 0 {
		return
	}
	t := l.ListTag()
	if t == nil {
		return
	}
	dst.Set(index, t)
}
