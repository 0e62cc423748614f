package scriptable

import (
	"math"
	"math/big"
	"testing"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerSet(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		in   any
		want any
	}{
		{name: "byte in range", v: &Byte{}, in: 12, want: int8(12)},
		{name: "byte floor", v: &Byte{}, in: -3.5, want: int8(-4)},
		{name: "byte clamp high", v: &Byte{}, in: 300, want: int8(127)},
		{name: "byte clamp low", v: &Byte{}, in: int64(-1000), want: int8(-128)},
		{name: "byte true", v: &Byte{}, in: true, want: int8(1)},
		{name: "byte false", v: &Byte{}, in: false, want: int8(0)},
		{name: "short clamp", v: &Short{}, in: 40000, want: int16(32767)},
		{name: "short floor", v: &Short{}, in: float32(7.9), want: int16(7)},
		{name: "int clamp float", v: &Int{}, in: 1e12, want: int32(math.MaxInt32)},
		{name: "int neg inf", v: &Int{}, in: math.Inf(-1), want: int32(math.MinInt32)},
		{name: "int uint", v: &Int{}, in: uint16(65535), want: int32(65535)},
		{name: "int64 big clamp", v: &Int64{}, in: new(big.Int).Lsh(big.NewInt(1), 70), want: int64(math.MaxInt64)},
		{name: "int64 uint64 max", v: &Int64{}, in: uint64(math.MaxUint64), want: int64(math.MaxInt64)},
		{name: "int64 json number", v: &Int64{}, in: json.Number("-9223372036854775808"), want: int64(math.MinInt64)},
		{name: "int64 json number fraction", v: &Int64{}, in: json.Number("2.5"), want: int64(2)},
		{name: "int64 float clamp", v: &Int64{}, in: 1e300, want: int64(math.MaxInt64)},
		{name: "byte json number", v: &Byte{}, in: json.Number("-129"), want: int8(-128)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.v.Set(tt.in))
			assert.Equal(t, tt.want, tt.v.Any())
		})
	}
}

func TestSetRejects(t *testing.T) {
	vals := []Value{NewByte(1), NewShort(1), NewInt(1), NewInt64(1), NewFloat(1), NewDouble(1)}
	for _, v := range vals {
		t.Run(v.Kind().String(), func(t *testing.T) {
			prev := v.Any()
			assert.False(t, v.Set("12"))
			assert.False(t, v.Set([]int{1}))
			assert.Equal(t, prev, v.Any())
			if v.Kind() != nbt.ByteKind {
				assert.False(t, v.Set(true))
				assert.Equal(t, prev, v.Any())
			}
			assert.True(t, v.Set(nil))
			assert.Nil(t, v.Any())
		})
	}
}

func TestIntegerNaN(t *testing.T) {
	i := NewInt(3)
	assert.False(t, i.Set(math.NaN()))
	got, ok := i.Get()
	assert.True(t, ok)
	assert.Equal(t, int32(3), got)
}

func TestFloats(t *testing.T) {
	f := NewFloat(0.1)
	got, ok := f.Get()
	require.True(t, ok)
	assert.Equal(t, float32(0.1), got)

	d := NewDouble(math.NaN())
	x, ok := d.Get()
	require.True(t, ok)
	assert.True(t, math.IsNaN(x))

	require.True(t, d.Set(math.Inf(1)))
	assert.Equal(t, math.Inf(1), d.Any())

	require.True(t, d.Set(int64(1)<<60))
	assert.Equal(t, float64(int64(1)<<60), d.Any())
}

func TestString(t *testing.T) {
	s := NewString(12)
	assert.Equal(t, "12", s.Any())
	assert.True(t, s.Set(big.NewInt(-7)))
	assert.Equal(t, "-7", s.Any())
	assert.True(t, s.Set(nil))
	assert.True(t, s.IsNull())
}

func TestInt64Big(t *testing.T) {
	i := NewInt64(nil)
	assert.Nil(t, i.Big())
	i.Set(int64(math.MaxInt64))
	assert.Equal(t, "9223372036854775807", i.Big().String())
}

func TestCompoundRoundTrip(t *testing.T) {
	vals := []Value{
		NewByte(-5),
		NewShort(1234),
		NewInt(-70000),
		NewInt64(int64(math.MinInt64)),
		NewFloat(1.5),
		NewDouble(-2.25),
		NewString("hello"),
	}
	for _, v := range vals {
		t.Run(v.Kind().String(), func(t *testing.T) {
			c := nbt.NewCompound()
			v.ApplyToCompound(c, "k")
			require.Equal(t, v.Kind(), c.KindOf("k"))

			back := New(v.Kind(), nil)
			back.FromCompound(c, "k")
			assert.Equal(t, v.Any(), back.Any())

			other := New(nbt.StringKind, "stale")
			if v.Kind() == nbt.StringKind {
				other = New(nbt.IntKind, 1)
			}
			other.FromCompound(c, "k")
			assert.Nil(t, other.Any())

			missing := New(v.Kind(), 1)
			missing.FromCompound(c, "nope")
			assert.Nil(t, missing.Any())
		})
	}
}

func TestApplyNullRemovesKey(t *testing.T) {
	c := nbt.FromMap(map[string]*nbt.Node{"a": nbt.FromInt(1)})
	i := NewInt(nil)
	i.ApplyToCompound(c, "a")
	assert.False(t, c.Contains("a"))
	i.ApplyToCompound(c, "a")
	assert.False(t, c.Contains("a"))
}

func TestListIndexes(t *testing.T) {
	l := nbt.FromSlice([]*nbt.Node{nbt.FromInt(10), nbt.FromInt(20)})

	for _, index := range []int{-1, 2, 100} {
		i := NewInt(5)
		i.FromList(l, index)
		assert.True(t, i.IsNull(), "index %d", index)

		NewInt(9).ApplyToList(l, -1)
		NewInt(nil).ApplyToList(l, index)
		assert.Equal(t, 2, l.Len())
	}

	i := NewInt(nil)
	i.FromList(l, 1)
	assert.Equal(t, int32(20), i.Any())

	NewInt(21).ApplyToList(l, 1)
	assert.Equal(t, int32(21), l.At(1).AsInt())

	s := NewString(nil)
	s.FromList(l, 0)
	assert.True(t, s.IsNull())
}
