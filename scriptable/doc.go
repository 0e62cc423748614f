// Package scriptable provides typed wrappers over nbt tag trees.
//
// Each recognized tag kind has a wrapper type implementing [Value]: Byte,
// Short, Int, Int64, Float, Double and String hold one scalar, while List
// and Compound hold children. A wrapper reads itself from a compound key
// or list index with FromCompound and FromList, and writes itself back
// with ApplyToCompound and ApplyToList. Set coerces its input to the kind:
// integers are floored and clamped, and input of the wrong type is
// refused.
//
// # Borrowed and owned containers
//
// A List or Compound read from a tree borrows the tree's node. Get reads
// single children from it without copying. Values instead wraps every
// child, after which the container owns its children and the tree is no
// longer consulted. Writing a container back always writes a copy.
// Compound.RefCompoundTag gives access to the borrowed node for in-place
// edits.
//
// # JSON
//
// ToJSON and ParseJSON convert a container to and from a document of
// {"t": kind, "v": value} entries, for example
//
//	{"n": {"t": 3, "v": 5}, "l": {"t": 9, "v": [{"t": 8, "v": "hi"}]}}
//
// ToYAML and ParseYAML carry the same document as YAML.
//
// Tags of a kind without a wrapper are treated as absent and reported
// through the logger set with [SetLogger].
package scriptable
