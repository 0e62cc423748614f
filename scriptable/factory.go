package scriptable

import (
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

// New returns an empty wrapper of kind k set from raw, or nil when k has
// no wrapper. A raw value the kind rejects leaves the wrapper absent.
func New(k nbt.Kind, raw any) Value {
	var v Value
	switch k {
	case nbt.ByteKind:
		v = &Byte{}
	case nbt.ShortKind:
		v = &Short{}
	case nbt.IntKind:
		v = &Int{}
	case nbt.Int64Kind:
		v = &Int64{}
	case nbt.FloatKind:
		v = &Float{}
	case nbt.DoubleKind:
		v = &Double{}
	case nbt.StringKind:
		v = &String{}
	case nbt.ListKind:
		v = &List{}
	case nbt.CompoundKind:
		v = &Compound{}
	default:
		return nil
	}
	if raw != nil {
		v.Set(raw)
	}
	return v
}

// FromCompoundKey wraps the child of c at key. It returns nil when key is
// missing or holds a kind without a wrapper; the latter is logged.
func FromCompoundKey(c *nbt.Node, key string) Value {
	if !c.Contains(key) {
		return nil
	}
	k := c.KindOf(key)
	v := New(k, nil)
	if v == nil {
		warnUnknown(k, nbt.CompoundKind)
		return nil
	}
	v.FromCompound(c, key)
	return v
}

// FromListIndex wraps the element of l at index. It returns nil when index
// is out of range or holds a kind without a wrapper; the latter is logged.
func FromListIndex(l *nbt.Node, index int) Value {
	if !inList(l, index) {
		return nil
	}
	k := l.KindAt(index)
	v := New(k, nil)
	if v == nil {
		warnUnknown(k, nbt.ListKind)
		return nil
	}
	v.FromList(l, index)
	return v
}

// FromNode wraps a detached node of any wrapped kind. Lists and compounds
// borrow n.
func FromNode(n *nbt.Node) Value {
	if n == nil {
		return nil
	}
	holder := nbt.NewList()
	holder.Values = []*nbt.Node{n}
	return FromListIndex(holder, 0)
}

// ToNode returns v as a detached node, or nil when v is absent. It is the
// inverse of FromNode; containers are copied.
func ToNode(v Value) *nbt.Node {
	if v == nil {
		return nil
	}
	holder := nbt.NewList()
	v.ApplyToList(holder, 0)
	return holder.At(0)
}
