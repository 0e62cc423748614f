package scriptable

import (
	"math"
	"testing"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	c := NewCompound(map[string]Value{
		"n": NewInt(5),
		"s": NewString("hi"),
		"l": NewList([]Value{NewInt(1), NewInt(2)}),
	})
	d, err := ToJSON(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"n": {"t": 3, "v": 5},
		"s": {"t": 8, "v": "hi"},
		"l": {"t": 9, "v": [{"t": 3, "v": 1}, {"t": 3, "v": 2}]}
	}`, string(d))

	back, err := ParseJSON(d)
	require.NoError(t, err)
	bc, ok := back.(*Compound)
	require.True(t, ok)
	assert.False(t, bc.IsRef())
	assert.Equal(t, int32(5), bc.Get("n").Any())
	assert.Equal(t, "hi", bc.Get("s").Any())
	bl, ok := bc.Get("l").(*List)
	require.True(t, ok)
	assert.False(t, bl.IsRef())
	assert.Equal(t, 0, nbt.Compare(c.CompoundTag(), bc.CompoundTag()))
}

func TestJSONRoundTripTree(t *testing.T) {
	root := nbt.FromMap(map[string]*nbt.Node{
		"b":   nbt.FromByte(-1),
		"s":   nbt.FromShort(300),
		"min": nbt.FromInt64(math.MinInt64),
		"max": nbt.FromInt64(math.MaxInt64),
		"f":   nbt.FromFloat(0.1),
		"d":   nbt.FromDouble(1e-300),
		"str": nbt.FromString("q\"uote"),
		"nested": nbt.FromSlice([]*nbt.Node{
			nbt.FromMap(map[string]*nbt.Node{"x": nbt.FromByte(1)}),
			nbt.NewList(),
		}),
	})
	c := NewCompound(root)
	d, err := ToJSON(c)
	require.NoError(t, err)
	assert.True(t, c.IsRef())

	back, err := ParseJSON(d)
	require.NoError(t, err)
	assert.Equal(t, 0, nbt.Compare(root, back.(*Compound).CompoundTag()))

	again, err := ToJSON(back)
	require.NoError(t, err)
	assert.JSONEq(t, string(d), string(again))
}

func TestJSONHolesAndAbsent(t *testing.T) {
	l := NewList([]Value{NewInt(1), nil, NewList(nil), NewInt(3)})
	d, err := ToJSON(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"t": 3, "v": 1},
		{"t": 0, "v": null},
		{"t": 9, "v": null},
		{"t": 3, "v": 3}
	]`, string(d))

	back, err := ParseJSON(d)
	require.NoError(t, err)
	bl := back.(*List)
	require.Equal(t, 4, bl.Len())
	assert.Nil(t, bl.Get(1))
	inner, ok := bl.Get(2).(*List)
	require.True(t, ok)
	assert.True(t, inner.IsNull())

	d, err = ToJSON(NewList(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(d))
	d, err = ToJSON(NewCompound(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(d))
}

func TestParseJSONUnknownKinds(t *testing.T) {
	w := captureWarnings(t)
	back, err := ParseJSON([]byte(`[{"t": 11, "v": [1, 2]}, {"t": 1, "v": true}]`))
	require.NoError(t, err)
	l := back.(*List)
	require.Equal(t, 2, l.Len())
	assert.Nil(t, l.Get(0))
	assert.Equal(t, int8(1), l.Get(1).Any())

	back, err = ParseJSON([]byte(`{"a": {"t": 7, "v": "x"}, "b": {"t": 2, "v": 70000}}`))
	require.NoError(t, err)
	c := back.(*Compound)
	assert.Equal(t, []string{"b"}, c.Keys())
	assert.Equal(t, int16(32767), c.Get("b").Any())
	assert.Equal(t, 0, w.count())
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		also error
	}{
		{name: "syntax", in: `[{"t": 3,`},
		{name: "scalar root", in: `"str"`, also: ErrNotContainer},
		{name: "entry not object", in: `[1]`},
		{name: "missing kind", in: `[{"v": 1}]`},
		{name: "fractional kind", in: `[{"t": 1.5, "v": 1}]`},
		{name: "list holding object", in: `{"a": {"t": 9, "v": {}}}`},
		{name: "compound holding array", in: `[{"t": 10, "v": []}]`},
		{name: "container holding scalar", in: `[{"t": 10, "v": 3}]`, also: ErrNotContainer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.in))
			require.ErrorIs(t, err, ErrBadJSON)
			if tt.also != nil {
				assert.ErrorIs(t, err, tt.also)
			}
		})
	}
}

func TestToJSONErrors(t *testing.T) {
	_, err := ToJSON(nil)
	assert.ErrorIs(t, err, ErrNotContainer)

	tests := []struct {
		name string
		c    Container
	}{
		{name: "double nan", c: NewList([]Value{NewDouble(math.NaN())})},
		{name: "double inf", c: NewList([]Value{NewDouble(math.Inf(-1))})},
		{name: "float inf", c: NewList([]Value{NewFloat(math.Inf(1))})},
		{name: "float nan", c: NewList([]Value{NewFloat(math.NaN())})},
		{name: "float overflow", c: NewList([]Value{NewFloat(1e39)})},
		{name: "nested in compound", c: NewCompound(map[string]Value{
			"l": NewList([]Value{NewInt(1), NewFloat(math.Inf(-1))}),
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ToJSON(tt.c)
			assert.ErrorIs(t, err, ErrNotFinite)
			assert.Nil(t, d)
		})
	}

	_, err = MarshalEntry(NewFloat(math.NaN()))
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestJSONNegativeZero(t *testing.T) {
	l := NewList([]Value{NewDouble(math.Copysign(0, -1)), NewFloat(math.Copysign(0, -1))})
	d, err := ToJSON(l)
	require.NoError(t, err)

	back, err := ParseJSON(d)
	require.NoError(t, err)
	bl := back.(*List)

	dv, ok := bl.Get(0).(*Double).Get()
	require.True(t, ok)
	assert.True(t, math.Signbit(dv))

	fv, ok := bl.Get(1).(*Float).Get()
	require.True(t, ok)
	assert.True(t, math.Signbit(float64(fv)))
}

func TestYAMLRoundTrip(t *testing.T) {
	c := NewCompound(map[string]Value{
		"n": NewInt64(int64(math.MaxInt64)),
		"l": NewList([]Value{NewString("a"), NewByte(true)}),
	})
	y, err := ToYAML(c)
	require.NoError(t, err)

	back, err := ParseYAML(y)
	require.NoError(t, err)
	assert.Equal(t, 0, nbt.Compare(c.CompoundTag(), back.(*Compound).CompoundTag()))
}

func TestMarshalEntry(t *testing.T) {
	d, err := MarshalEntry(NewShort(-2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"t": 2, "v": -2}`, string(d))

	d, err = MarshalEntry(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"t": 0, "v": null}`, string(d))

	d, err = MarshalEntry(NewCompound(map[string]Value{"a": NewInt64(int64(math.MinInt64))}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"t": 10, "v": {"a": {"t": 4, "v": -9223372036854775808}}}`, string(d))
}
