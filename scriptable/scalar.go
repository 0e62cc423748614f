package scriptable

import (
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

type scalarType interface {
	int8 | int16 | int32 | int64 | float32 | float64 | string
}

// scalar holds one nullable value of a scalar kind.
type scalar[T scalarType] struct {
	value *T
}

// Get returns the value and whether it is present.
func (s *scalar[T]) Get() (T, bool) {
	if s.value == nil {
		var zero T
		return zero, false
	}
	return *s.value, true
}

func (s *scalar[T]) Any() any {
	if s.value == nil {
		return nil
	}
	return *s.value
}

func (s *scalar[T]) IsNull() bool {
	return s.value == nil
}

func (s *scalar[T]) store(v T) {
	s.value = &v
}

func (*scalar[T]) isValue() {}

// tagCodec ties a scalar type to the tag kind it reads and writes.
type tagCodec[T scalarType] struct {
	kind  nbt.Kind
	read  func(*nbt.Node) T
	write func(T) *nbt.Node
}

func (s *scalar[T]) fromCompound(tc tagCodec[T], c *nbt.Node, key string) {
	if !c.ContainsOfKind(key, tc.kind) {
		s.value = nil
		return
	}
	s.store(tc.read(c.Get(key)))
}

func (s *scalar[T]) applyToCompound(tc tagCodec[T], c *nbt.Node, key string) {
	if s.value == nil {
		c.Remove(key)
		return
	}
	c.Put(key, tc.write(*s.value))
}

func (s *scalar[T]) fromList(tc tagCodec[T], l *nbt.Node, index int) {
	if !inList(l, index) || l.KindAt(index) != tc.kind {
		s.value = nil
		return
	}
	s.store(tc.read(l.At(index)))
}

func (s *scalar[T]) applyToList(tc tagCodec[T], l *nbt.Node, index int) {
	if index < 0 || s.value == nil {
		return
	}
	l.Set(index, tc.write(*s.value))
}
