package scriptable

import (
	"math"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

var (
	byteCodec  = tagCodec[int8]{kind: nbt.ByteKind, read: (*nbt.Node).AsByte, write: nbt.FromByte}
	shortCodec = tagCodec[int16]{kind: nbt.ShortKind, read: (*nbt.Node).AsShort, write: nbt.FromShort}
	intCodec   = tagCodec[int32]{kind: nbt.IntKind, read: (*nbt.Node).AsInt, write: nbt.FromInt}
)

// Byte is a byte tag. Set floors fractional input, clamps to
// [-128, 127] and maps bools to 0 and 1.
type Byte struct {
	scalar[int8]
}

func NewByte(v any) *Byte {
	b := &Byte{}
	b.Set(v)
	return b
}

func (*Byte) Kind() nbt.Kind { return nbt.ByteKind }

func (b *Byte) Set(v any) bool {
	if v == nil {
		b.value = nil
		return true
	}
	if x, ok := v.(bool); ok {
		v = 0
		if x {
			v = 1
		}
	}
	i, ok := toInt(v, math.MinInt8, math.MaxInt8)
	if !ok {
		return false
	}
	b.store(int8(i))
	return true
}

func (b *Byte) FromCompound(c *nbt.Node, key string)    { b.fromCompound(byteCodec, c, key) }
func (b *Byte) ApplyToCompound(c *nbt.Node, key string) { b.applyToCompound(byteCodec, c, key) }
func (b *Byte) FromList(l *nbt.Node, index int)         { b.fromList(byteCodec, l, index) }
func (b *Byte) ApplyToList(l *nbt.Node, index int)      { b.applyToList(byteCodec, l, index) }

// Short is a short tag. Set floors fractional input and clamps to
// [-32768, 32767].
type Short struct {
	scalar[int16]
}

func NewShort(v any) *Short {
	s := &Short{}
	s.Set(v)
	return s
}

func (*Short) Kind() nbt.Kind { return nbt.ShortKind }

func (s *Short) Set(v any) bool {
	if v == nil {
		s.value = nil
		return true
	}
	i, ok := toInt(v, math.MinInt16, math.MaxInt16)
	if !ok {
		return false
	}
	s.store(int16(i))
	return true
}

func (s *Short) FromCompound(c *nbt.Node, key string)    { s.fromCompound(shortCodec, c, key) }
func (s *Short) ApplyToCompound(c *nbt.Node, key string) { s.applyToCompound(shortCodec, c, key) }
func (s *Short) FromList(l *nbt.Node, index int)         { s.fromList(shortCodec, l, index) }
func (s *Short) ApplyToList(l *nbt.Node, index int)      { s.applyToList(shortCodec, l, index) }

// Int is an int tag. Set floors fractional input and clamps to the int32
// range.
type Int struct {
	scalar[int32]
}

func NewInt(v any) *Int {
	i := &Int{}
	i.Set(v)
	return i
}

func (*Int) Kind() nbt.Kind { return nbt.IntKind }

func (i *Int) Set(v any) bool {
	if v == nil {
		i.value = nil
		return true
	}
	n, ok := toInt(v, math.MinInt32, math.MaxInt32)
	if !ok {
		return false
	}
	i.store(int32(n))
	return true
}

func (i *Int) FromCompound(c *nbt.Node, key string)    { i.fromCompound(intCodec, c, key) }
func (i *Int) ApplyToCompound(c *nbt.Node, key string) { i.applyToCompound(intCodec, c, key) }
func (i *Int) FromList(l *nbt.Node, index int)         { i.fromList(intCodec, l, index) }
func (i *Int) ApplyToList(l *nbt.Node, index int)      { i.applyToList(intCodec, l, index) }
