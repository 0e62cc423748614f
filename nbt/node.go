package nbt

import (
	"maps"
	"slices"
)

// Node is a single tag. Which fields are meaningful depends on Kind.
type Node struct {
	Kind Kind

	// Keys[i] names Values[i] for CompoundKind; ListKind uses Values only.
	Keys   []string
	Values []*Node

	Int    int64
	Float  float64
	String string
	Bytes  []byte
	Ints   []int32
	Longs  []int64
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Kind:   n.Kind,
		Int:    n.Int,
		Float:  n.Float,
		String: n.String,
	}
	if n.Keys != nil {
		res.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	if n.Bytes != nil {
		res.Bytes = slices.Clone(n.Bytes)
	}
	if n.Ints != nil {
		res.Ints = slices.Clone(n.Ints)
	}
	if n.Longs != nil {
		res.Longs = slices.Clone(n.Longs)
	}
	return res
}

func NewCompound() *Node {
	return &Node{Kind: CompoundKind}
}

func NewList() *Node {
	return &Node{Kind: ListKind}
}

func FromByte(v int8) *Node {
	return &Node{Kind: ByteKind, Int: int64(v)}
}

func FromShort(v int16) *Node {
	return &Node{Kind: ShortKind, Int: int64(v)}
}

func FromInt(v int32) *Node {
	return &Node{Kind: IntKind, Int: int64(v)}
}

func FromInt64(v int64) *Node {
	return &Node{Kind: Int64Kind, Int: v}
}

func FromFloat(v float32) *Node {
	return &Node{Kind: FloatKind, Float: float64(v)}
}

func FromDouble(v float64) *Node {
	return &Node{Kind: DoubleKind, Float: v}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

func FromByteArray(v []byte) *Node {
	return &Node{Kind: ByteArrayKind, Bytes: v}
}

func FromIntArray(v []int32) *Node {
	return &Node{Kind: IntArrayKind, Ints: v}
}

func FromInt64Array(v []int64) *Node {
	return &Node{Kind: Int64ArrayKind, Longs: v}
}

func FromSlice(vs []*Node) *Node {
	res := NewList()
	for _, v := range vs {
		res.Set(len(res.Values), v)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a compound keeping the order of kvs. A repeated key
// replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewCompound()
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds a compound with sorted keys.
func FromMap(m map[string]*Node) *Node {
	res := NewCompound()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Put(key, m[key])
	}
	return res
}

func (n *Node) AsByte() int8 {
	if n == nil {
		return 0
	}
	return int8(n.Int)
}

func (n *Node) AsShort() int16 {
	if n == nil {
		return 0
	}
	return int16(n.Int)
}

func (n *Node) AsInt() int32 {
	if n == nil {
		return 0
	}
	return int32(n.Int)
}

func (n *Node) AsInt64() int64 {
	if n == nil {
		return 0
	}
	return n.Int
}

func (n *Node) AsFloat() float32 {
	if n == nil {
		return 0
	}
	return float32(n.Float)
}

func (n *Node) AsDouble() float64 {
	if n == nil {
		return 0
	}
	return n.Float
}

func (n *Node) AsString() string {
	if n == nil {
		return ""
	}
	return n.String
}
