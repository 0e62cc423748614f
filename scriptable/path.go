package scriptable

import (
	"github.com/CuiZhenhang/scriptable-nbt/debug"
	"github.com/CuiZhenhang/scriptable-nbt/kpath"
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

// Navigate follows path from root and returns the list or compound it
// leads to, or nil. Every step must land on a list or compound; the result
// is a node of the original tree, not a copy. The empty path returns root.
func Navigate(root *nbt.Node, path *kpath.KPath) *nbt.Node {
	node := root
	for p := path; p != nil; p = p.Next {
		var (
			next *nbt.Node
			k    nbt.Kind
		)
		switch {
		case p.Field != nil:
			if k = node.KindOf(*p.Field); k.IsContainer() {
				next = node.Get(*p.Field)
			}
		case p.Index != nil:
			if k = node.KindAt(*p.Index); k.IsContainer() {
				next = node.At(*p.Index)
			}
		}
		if next == nil {
			if k != nbt.EndKind && New(k, nil) == nil {
				warnUnknown(k, node.Kind)
			}
			if debug.Path() {
				debug.Logf("navigate: no container at %s in %v\n", p.SegmentString(), node)
			}
			return nil
		}
		node = next
	}
	return node
}

// GetByPath returns the value path addresses below root, or nil. The empty
// path addresses nothing.
func GetByPath(root *nbt.Node, path *kpath.KPath) Value {
	parent, last := path.Split()
	if last == nil {
		return nil
	}
	node := Navigate(root, parent)
	if node == nil {
		return nil
	}
	switch {
	case last.Field != nil:
		return FromCompoundKey(node, *last.Field)
	case last.Index != nil:
		return FromListIndex(node, *last.Index)
	}
	return nil
}

// SetByPath writes v at the location path addresses below root. It reports
// whether the location exists, that is, whether the parent container was
// found; v itself may still decline the write, as with an absent value in
// a list. The empty path addresses nothing.
func SetByPath(root *nbt.Node, v Value, path *kpath.KPath) bool {
	parent, last := path.Split()
	if last == nil || v == nil {
		return false
	}
	node := Navigate(root, parent)
	if node == nil {
		return false
	}
	switch {
	case last.Field != nil && node.Kind == nbt.CompoundKind:
		v.ApplyToCompound(node, *last.Field)
		return true
	case last.Index != nil && node.Kind == nbt.ListKind:
		v.ApplyToList(node, *last.Index)
		return true
	}
	return false
}

// GetByKPath is GetByPath with the path given as a string such as
// "a.b[0]".
func GetByKPath(root *nbt.Node, path string) (Value, error) {
	p, err := kpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return GetByPath(root, p), nil
}

// SetByKPath is SetByPath with the path given as a string.
func SetByKPath(root *nbt.Node, v Value, path string) (bool, error) {
	p, err := kpath.Parse(path)
	if err != nil {
		return false, err
	}
	return SetByPath(root, v, p), nil
}
