// Package nbt provides the tag tree that scriptable values read from and
// write to.
//
// # Overview
//
// A tree is made of *Node values. Every node carries a Kind, the NBT tag
// id, and the field holding its payload depends on that kind:
//
//   - ByteKind, ShortKind, IntKind, Int64Kind: Int
//   - FloatKind, DoubleKind: Float (float kinds are rounded to float32 on construction)
//   - StringKind: String
//   - ByteArrayKind, IntArrayKind, Int64ArrayKind: Bytes, Ints, Longs
//   - ListKind: Values
//   - CompoundKind: Keys and Values, where Keys[i] names Values[i]
//
// # Creating Nodes
//
//	c := nbt.NewCompound()
//	c.Put("burn", nbt.FromShort(200))
//	c.Put("items", nbt.FromSlice([]*nbt.Node{nbt.FromString("coal")}))
//
// # Access
//
// Get and At return children without copying them; mutating the result
// mutates the tree. Use Clone for a detached copy.
//
// Compound keys are unique and keep insertion order. Put replaces the value
// and kind at an existing key in place.
//
// List elements may be of mixed kinds. Set at an index at or past the end
// appends, so a list never contains holes.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use.
package nbt
