package scriptable

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// warnings records log records instead of printing them.
type warnings struct {
	mu      sync.Mutex
	records []slog.Record
}

func (w *warnings) Enabled(context.Context, slog.Level) bool { return true }

func (w *warnings) Handle(_ context.Context, r slog.Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.records = append(w.records, r)
	return nil
}

func (w *warnings) WithAttrs([]slog.Attr) slog.Handler { return w }
func (w *warnings) WithGroup(string) slog.Handler      { return w }

func (w *warnings) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.records)
}

func captureWarnings(t *testing.T) *warnings {
	t.Helper()
	w := &warnings{}
	SetLogger(slog.New(w))
	t.Cleanup(func() { SetLogger(nil) })
	return w
}

func sample() *nbt.Node {
	return nbt.FromKeyVals([]nbt.KeyVal{
		{Key: "a", Val: nbt.FromInt(1)},
		{Key: "b", Val: nbt.FromString("x")},
	})
}

func TestCompoundGetKeepsReference(t *testing.T) {
	root := sample()
	c := NewCompound(nil)
	holder := nbt.FromMap(map[string]*nbt.Node{"c": root})
	c.FromCompound(holder, "c")
	require.True(t, c.IsRef())
	require.Same(t, root, c.RefCompoundTag())

	first := c.Get("a")
	second := c.Get("a")
	require.NotNil(t, first)
	assert.NotSame(t, first, second)
	assert.Equal(t, int32(1), first.Any())
	assert.Equal(t, int32(1), second.Any())
	assert.True(t, c.IsRef())
	assert.Nil(t, c.Get("missing"))

	root.Put("a", nbt.FromInt(2))
	assert.Equal(t, int32(2), c.Get("a").Any())
	assert.Equal(t, []string{"a", "b"}, c.Keys())
}

func TestCompoundValuesMaterializes(t *testing.T) {
	root := sample()
	c := NewCompound(root)
	require.True(t, c.IsRef())

	vals := c.Values()
	require.Len(t, vals, 2)
	assert.False(t, c.IsRef())
	assert.Nil(t, c.RefCompoundTag())

	root.Put("a", nbt.FromInt(99))
	root.Put("z", nbt.FromInt(1))
	assert.Equal(t, int32(1), c.Get("a").Any())
	assert.Nil(t, c.Get("z"))

	vals["n"] = NewShort(4)
	assert.Equal(t, []string{"a", "b", "n"}, c.Keys())
}

func TestCompoundTagClones(t *testing.T) {
	root := sample()
	c := NewCompound(root)
	out := c.CompoundTag()
	require.NotSame(t, root, out)
	assert.Equal(t, 0, nbt.Compare(root, out))

	dst := nbt.NewCompound()
	c.ApplyToCompound(dst, "k")
	assert.NotSame(t, root, dst.Get("k"))
	dst.Get("k").Put("a", nbt.FromInt(5))
	assert.Equal(t, int32(1), root.Get("a").AsInt())
}

func TestOwnedCompoundWriteBack(t *testing.T) {
	c := NewCompound(map[string]Value{
		"z":    NewInt(1),
		"a":    NewString("s"),
		"gone": NewByte(nil),
		"nil":  nil,
		"l":    NewList([]Value{NewInt(1), nil, NewInt(3)}),
	})
	out := c.CompoundTag()
	assert.Equal(t, []string{"a", "l", "z"}, out.AllKeys())
	assert.Equal(t, 2, out.Get("l").Len())
	assert.Equal(t, int32(3), out.Get("l").At(1).AsInt())
}

func TestCompoundAbsent(t *testing.T) {
	c := NewCompound(nil)
	assert.True(t, c.IsNull())
	assert.Nil(t, c.Values())
	assert.Nil(t, c.CompoundTag())
	assert.Nil(t, c.Get("a"))

	dst := nbt.FromMap(map[string]*nbt.Node{"k": nbt.NewCompound()})
	c.ApplyToCompound(dst, "k")
	assert.False(t, dst.Contains("k"))

	assert.False(t, c.Set(nbt.FromInt(1)))
	assert.False(t, c.Set(42))
	assert.True(t, c.IsNull())
}

func TestListDuality(t *testing.T) {
	src := nbt.FromSlice([]*nbt.Node{nbt.FromInt(1), nbt.FromSlice([]*nbt.Node{nbt.FromString("in")})})
	l := NewList(src)
	require.True(t, l.IsRef())
	assert.Equal(t, 2, l.Len())

	inner, ok := l.Get(1).(*List)
	require.True(t, ok)
	assert.True(t, inner.IsRef())
	assert.Equal(t, "in", inner.Get(0).Any())
	assert.True(t, l.IsRef())
	assert.Nil(t, l.Get(2))
	assert.Nil(t, l.Get(-1))

	items := l.Values()
	require.Len(t, items, 2)
	assert.False(t, l.IsRef())

	src.Set(0, nbt.FromInt(7))
	assert.Equal(t, int32(1), l.Get(0).Any())

	l.Append(NewString("end"))
	out := l.ListTag()
	assert.Equal(t, 3, out.Len())
	assert.Equal(t, "end", out.At(2).AsString())
}

func TestListFromTree(t *testing.T) {
	root := nbt.FromMap(map[string]*nbt.Node{
		"l": nbt.FromSlice([]*nbt.Node{nbt.FromByte(1)}),
		"c": nbt.NewCompound(),
	})
	l := NewList(nil)
	l.FromCompound(root, "l")
	assert.True(t, l.IsRef())
	l.FromCompound(root, "c")
	assert.True(t, l.IsNull())

	parent := nbt.FromSlice([]*nbt.Node{root.Get("l")})
	l.FromList(parent, 0)
	assert.Equal(t, int8(1), l.Get(0).Any())

	dst := nbt.FromSlice([]*nbt.Node{nbt.FromInt(0)})
	l.ApplyToList(dst, 5)
	require.Equal(t, 2, dst.Len())
	assert.Equal(t, nbt.ListKind, dst.KindAt(1))
	assert.NotSame(t, root.Get("l"), dst.At(1))
}

func TestUnknownKindWarnsOnce(t *testing.T) {
	w := captureWarnings(t)
	root := nbt.FromKeyVals([]nbt.KeyVal{
		{Key: "arr", Val: nbt.FromIntArray([]int32{1, 2})},
		{Key: "i", Val: nbt.FromInt(1)},
	})

	assert.Nil(t, FromCompoundKey(root, "arr"))
	assert.Equal(t, 1, w.count())

	assert.Nil(t, FromCompoundKey(root, "missing"))
	assert.Equal(t, 1, w.count())

	assert.Nil(t, New(nbt.IntArrayKind, nil))
	assert.Equal(t, 1, w.count())

	c := NewCompound(root)
	assert.Len(t, c.Values(), 1)
	assert.Equal(t, 2, w.count())
}

func TestListHoles(t *testing.T) {
	w := captureWarnings(t)
	src := nbt.FromSlice([]*nbt.Node{
		nbt.FromInt(1),
		nbt.FromByteArray([]byte{1}),
		nbt.FromInt(3),
	})
	l := NewList(src)
	items := l.Values()
	require.Len(t, items, 3)
	assert.Nil(t, items[1])
	assert.Equal(t, 1, w.count())

	out := l.ListTag()
	require.Equal(t, 2, out.Len())
	assert.Equal(t, int32(3), out.At(1).AsInt())
}

func TestListAppendKeepsCallerSlice(t *testing.T) {
	items := make([]Value, 1, 4)
	items[0] = NewInt(1)
	l := NewList(items)
	l.Append(NewInt(2))

	assert.Equal(t, 2, l.Len())
	assert.Nil(t, items[:2][1])
	assert.Equal(t, int32(2), l.Get(1).Any())
}
