package nbt

import "fmt"

// Kind is the NBT tag id of a node.
type Kind int

const (
	EndKind Kind = iota
	ByteKind
	ShortKind
	IntKind
	Int64Kind
	FloatKind
	DoubleKind
	ByteArrayKind
	StringKind
	ListKind
	CompoundKind
	IntArrayKind
	Int64ArrayKind
)

var kindNames = map[Kind]string{
	EndKind:        "end",
	ByteKind:       "byte",
	ShortKind:      "short",
	IntKind:        "int",
	Int64Kind:      "int64",
	FloatKind:      "float",
	DoubleKind:     "double",
	ByteArrayKind:  "byte_array",
	StringKind:     "string",
	ListKind:       "list",
	CompoundKind:   "compound",
	IntArrayKind:   "int_array",
	Int64ArrayKind: "int64_array",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, name := range kindNames {
		if name == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, d)
}

// Kinds returns every kind the tag tree knows about, in id order.
func Kinds() []Kind {
	return []Kind{
		EndKind,
		ByteKind,
		ShortKind,
		IntKind,
		Int64Kind,
		FloatKind,
		DoubleKind,
		ByteArrayKind,
		StringKind,
		ListKind,
		CompoundKind,
		IntArrayKind,
		Int64ArrayKind,
	}
}

func (k Kind) IsContainer() bool {
	switch k {
	case ListKind, CompoundKind:
		return true
	default:
		return false
	}
}
