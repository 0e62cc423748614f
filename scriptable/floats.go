package scriptable

import (
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

var (
	floatCodec  = tagCodec[float32]{kind: nbt.FloatKind, read: (*nbt.Node).AsFloat, write: nbt.FromFloat}
	doubleCodec = tagCodec[float64]{kind: nbt.DoubleKind, read: (*nbt.Node).AsDouble, write: nbt.FromDouble}
)

// Float is a float tag. Any numeric input is accepted, NaN and infinities
// included, and stored with float32 precision.
type Float struct {
	scalar[float32]
}

func NewFloat(v any) *Float {
	f := &Float{}
	f.Set(v)
	return f
}

func (*Float) Kind() nbt.Kind { return nbt.FloatKind }

func (f *Float) Set(v any) bool {
	if v == nil {
		f.value = nil
		return true
	}
	x, ok := toFloat(v)
	if !ok {
		return false
	}
	f.store(float32(x))
	return true
}

func (f *Float) FromCompound(c *nbt.Node, key string)    { f.fromCompound(floatCodec, c, key) }
func (f *Float) ApplyToCompound(c *nbt.Node, key string) { f.applyToCompound(floatCodec, c, key) }
func (f *Float) FromList(l *nbt.Node, index int)         { f.fromList(floatCodec, l, index) }
func (f *Float) ApplyToList(l *nbt.Node, index int)      { f.applyToList(floatCodec, l, index) }

// Double is a double tag. Any numeric input is accepted as is.
type Double struct {
	scalar[float64]
}

func NewDouble(v any) *Double {
	d := &Double{}
	d.Set(v)
	return d
}

func (*Double) Kind() nbt.Kind { return nbt.DoubleKind }

func (d *Double) Set(v any) bool {
	if v == nil {
		d.value = nil
		return true
	}
	x, ok := toFloat(v)
	if !ok {
		return false
	}
	d.store(x)
	return true
}

func (d *Double) FromCompound(c *nbt.Node, key string)    { d.fromCompound(doubleCodec, c, key) }
func (d *Double) ApplyToCompound(c *nbt.Node, key string) { d.applyToCompound(doubleCodec, c, key) }
func (d *Double) FromList(l *nbt.Node, index int)         { d.fromList(doubleCodec, l, index) }
func (d *Double) ApplyToList(l *nbt.Node, index int)      { d.applyToList(doubleCodec, l, index) }
