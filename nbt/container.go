package nbt

import "slices"

func (n *Node) keyIndex(key string) int {
	if n == nil || n.Kind != CompoundKind {
		return -1
	}
	return slices.Index(n.Keys, key)
}

// Contains reports whether the compound has key.
func (n *Node) Contains(key string) bool {
	return n.keyIndex(key) != -1
}

// KindOf returns the kind stored at key, or EndKind if key is absent.
func (n *Node) KindOf(key string) Kind {
	i := n.keyIndex(key)
	if i == -1 {
		return EndKind
	}
	return n.Values[i].Kind
}

func (n *Node) ContainsOfKind(key string, k Kind) bool {
	i := n.keyIndex(key)
	return i != -1 && n.Values[i].Kind == k
}

// Get returns the child at key without copying it.
func (n *Node) Get(key string) *Node {
	i := n.keyIndex(key)
	if i == -1 {
		return nil
	}
	return n.Values[i]
}

// Put stores v at key, replacing any prior value and kind in place.
// New keys are appended.
func (n *Node) Put(key string, v *Node) {
	if n == nil || n.Kind != CompoundKind || v == nil {
		return
	}
	if i := n.keyIndex(key); i != -1 {
		n.Values[i] = v
		return
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
}

func (n *Node) Remove(key string) {
	i := n.keyIndex(key)
	if i == -1 {
		return
	}
	n.Keys = slices.Delete(n.Keys, i, i+1)
	n.Values = slices.Delete(n.Values, i, i+1)
}

// AllKeys returns the compound keys in insertion order.
func (n *Node) AllKeys() []string {
	if n == nil || n.Kind != CompoundKind {
		return nil
	}
	return slices.Clone(n.Keys)
}

// Len returns the number of list elements.
func (n *Node) Len() int {
	if n == nil || n.Kind != ListKind {
		return 0
	}
	return len(n.Values)
}

// KindAt returns the kind at index, or EndKind if index is out of range.
func (n *Node) KindAt(index int) Kind {
	if index < 0 || index >= n.Len() {
		return EndKind
	}
	return n.Values[index].Kind
}

// At returns the list element at index without copying it.
func (n *Node) At(index int) *Node {
	if index < 0 || index >= n.Len() {
		return nil
	}
	return n.Values[index]
}

// Set stores v at index. An index at or past the end appends, so lists
// never contain holes; negative indexes are ignored.
func (n *Node) Set(index int, v *Node) {
	if n == nil || n.Kind != ListKind || v == nil || index < 0 {
		return
	}
	if index < len(n.Values) {
		n.Values[index] = v
		return
	}
	n.Values = append(n.Values, v)
}
