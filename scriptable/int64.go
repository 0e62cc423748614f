package scriptable

import (
	"math"
	"math/big"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

var int64Codec = tagCodec[int64]{kind: nbt.Int64Kind, read: (*nbt.Node).AsInt64, write: nbt.FromInt64}

// Int64 is an int64 tag. Besides plain numbers, Set accepts *big.Int and
// json.Number, which are clamped without going through float64, so values
// near the ends of the range survive exactly. Plain float input is floored
// and clamped with float64 precision.
type Int64 struct {
	scalar[int64]
}

func NewInt64(v any) *Int64 {
	i := &Int64{}
	i.Set(v)
	return i
}

func (*Int64) Kind() nbt.Kind { return nbt.Int64Kind }

func (i *Int64) Set(v any) bool {
	if v == nil {
		i.value = nil
		return true
	}
	n, ok := toInt(v, math.MinInt64, math.MaxInt64)
	if !ok {
		return false
	}
	i.store(n)
	return true
}

// Big returns the value as a new *big.Int, or nil when absent.
func (i *Int64) Big() *big.Int {
	v, ok := i.Get()
	if !ok {
		return nil
	}
	return big.NewInt(v)
}

func (i *Int64) FromCompound(c *nbt.Node, key string)    { i.fromCompound(int64Codec, c, key) }
func (i *Int64) ApplyToCompound(c *nbt.Node, key string) { i.applyToCompound(int64Codec, c, key) }
func (i *Int64) FromList(l *nbt.Node, index int)         { i.fromList(int64Codec, l, index) }
func (i *Int64) ApplyToList(l *nbt.Node, index int)      { i.applyToList(int64Codec, l, index) }
