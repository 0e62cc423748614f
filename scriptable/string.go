package scriptable

import (
	"fmt"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

var stringCodec = tagCodec[string]{kind: nbt.StringKind, read: (*nbt.Node).AsString, write: nbt.FromString}

// String is a string tag. Set accepts anything and stores its fmt.Sprint
// form.
type String struct {
	scalar[string]
}

func NewString(v any) *String {
	s := &String{}
	s.Set(v)
	return s
}

func (*String) Kind() nbt.Kind { return nbt.StringKind }

func (s *String) Set(v any) bool {
	switch x := v.(type) {
	case nil:
		s.value = nil
	case string:
		s.store(x)
	default:
		s.store(fmt.Sprint(x))
	}
	return true
}

func (s *String) FromCompound(c *nbt.Node, key string)    { s.fromCompound(stringCodec, c, key) }
func (s *String) ApplyToCompound(c *nbt.Node, key string) { s.applyToCompound(stringCodec, c, key) }
func (s *String) FromList(l *nbt.Node, index int)         { s.fromList(stringCodec, l, index) }
func (s *String) ApplyToList(l *nbt.Node, index int)      { s.applyToList(stringCodec, l, index) }
