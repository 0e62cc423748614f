package nbt

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes of different kinds order by kind id. Compounds compare by
// sorted keys, so insertion order does not affect equality.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case ByteKind, ShortKind, IntKind, Int64Kind:
		return cmp.Compare(a.Int, b.Int)
	case FloatKind, DoubleKind:
		return cmp.Compare(a.Float, b.Float)
	case StringKind:
		return strings.Compare(a.String, b.String)
	case ByteArrayKind:
		return slices.Compare(a.Bytes, b.Bytes)
	case IntArrayKind:
		return slices.Compare(a.Ints, b.Ints)
	case Int64ArrayKind:
		return slices.Compare(a.Longs, b.Longs)
	case ListKind:
		return compareLists(a, b)
	case CompoundKind:
		return compareCompounds(a, b)
	}
	return 0
}

func compareLists(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareCompounds(a, b *Node) int {
	keysA := slices.Sorted(slices.Values(a.Keys))
	keysB := slices.Sorted(slices.Values(b.Keys))
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(keysA[i]), b.Get(keysB[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
