package scriptable

import (
	"log/slog"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

// Value is a typed view of one tag. It is implemented by *Byte, *Short,
// *Int, *Int64, *Float, *Double, *String, *List and *Compound, and by
// nothing else.
type Value interface {
	// Kind returns the tag kind this value reads and writes.
	Kind() nbt.Kind
	// Any returns the current value, or nil when absent.
	Any() any
	// Set replaces the value, coercing it to the kind. It reports whether
	// v was accepted; a rejected v leaves the value unchanged. A nil v is
	// always accepted and makes the value absent.
	Set(v any) bool

	// FromCompound reads the value at key. A missing key, or a key of a
	// different kind, makes the value absent. Lists and compounds keep a
	// reference to the child instead of copying it.
	FromCompound(c *nbt.Node, key string)
	// ApplyToCompound writes the value at key, or removes key when the
	// value is absent.
	ApplyToCompound(c *nbt.Node, key string)
	// FromList is FromCompound for a list element.
	FromList(l *nbt.Node, index int)
	// ApplyToList writes the value at index. An absent value or a
	// negative index leaves l untouched.
	ApplyToList(l *nbt.Node, index int)

	isValue()
}

// Container is a Value holding children: *List or *Compound.
type Container interface {
	Value
	isContainer()
}

var logger *slog.Logger

// SetLogger sets the logger receiving unknown kind warnings. A nil logger
// restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger = l
}

func log() *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

// warnUnknown reports a tag of kind k found while reading a container.
// EndKind marks an empty slot and is not reported.
func warnUnknown(k nbt.Kind, in nbt.Kind) {
	if k == nbt.EndKind {
		return
	}
	log().Warn("unknown nbt kind", "kind", int(k), "in", in.String())
}

func inList(l *nbt.Node, index int) bool {
	return index >= 0 && index < l.Len()
}
