package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

type EncState struct {
	depth, indent int
	wire          bool

	Color func(nbt.Kind, ColorAttr, string) string
}

// Encode writes node as text followed by a newline.
//
// Scalars carry their kind as a suffix (1b, 2s, 3, 4L, 1.5f, 2.5d), arrays
// carry it as a prefix ([B; 1b, 2b]) and strings are double quoted.
func Encode(node *nbt.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func applyColor(es *EncState, kind nbt.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(kind, attr, v)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func encode(node *nbt.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return writeString(w, applyColor(es, nbt.EndKind, ValueColor, "null"))
	}
	switch node.Kind {
	case nbt.CompoundKind:
		return encodeCompound(node, w, es)
	case nbt.ListKind:
		return encodeList(node, w, es)
	case nbt.ByteArrayKind:
		parts := make([]string, len(node.Bytes))
		for i, b := range node.Bytes {
			parts[i] = scalarText(es, nbt.ByteKind, strconv.Itoa(int(int8(b))), "b")
		}
		return encodeArray(node.Kind, "B", parts, w, es)
	case nbt.IntArrayKind:
		parts := make([]string, len(node.Ints))
		for i, v := range node.Ints {
			parts[i] = scalarText(es, nbt.IntKind, strconv.FormatInt(int64(v), 10), "")
		}
		return encodeArray(node.Kind, "I", parts, w, es)
	case nbt.Int64ArrayKind:
		parts := make([]string, len(node.Longs))
		for i, v := range node.Longs {
			parts[i] = scalarText(es, nbt.Int64Kind, strconv.FormatInt(v, 10), "L")
		}
		return encodeArray(node.Kind, "L", parts, w, es)
	default:
		return writeString(w, leafText(node, es))
	}
}

func leafText(node *nbt.Node, es *EncState) string {
	switch node.Kind {
	case nbt.ByteKind:
		return scalarText(es, node.Kind, strconv.FormatInt(node.Int, 10), "b")
	case nbt.ShortKind:
		return scalarText(es, node.Kind, strconv.FormatInt(node.Int, 10), "s")
	case nbt.IntKind:
		return scalarText(es, node.Kind, strconv.FormatInt(node.Int, 10), "")
	case nbt.Int64Kind:
		return scalarText(es, node.Kind, strconv.FormatInt(node.Int, 10), "L")
	case nbt.FloatKind:
		return scalarText(es, node.Kind, strconv.FormatFloat(node.Float, 'g', -1, 32), "f")
	case nbt.DoubleKind:
		return scalarText(es, node.Kind, strconv.FormatFloat(node.Float, 'g', -1, 64), "d")
	case nbt.StringKind:
		return applyColor(es, node.Kind, ValueColor, strconv.Quote(node.String))
	default:
		return applyColor(es, node.Kind, ValueColor, fmt.Sprintf("<%s>", node.Kind))
	}
}

func scalarText(es *EncState, kind nbt.Kind, digits, suffix string) string {
	res := applyColor(es, kind, ValueColor, digits)
	if suffix != "" {
		res += applyColor(es, kind, SuffixColor, suffix)
	}
	return res
}

func encodeArray(kind nbt.Kind, prefix string, parts []string, w io.Writer, es *EncState) error {
	s := applyColor(es, kind, SepColor, "[") + applyColor(es, kind, SuffixColor, prefix+";")
	if len(parts) > 0 {
		s += " " + strings.Join(parts, applyColor(es, kind, SepColor, ",")+" ")
	}
	return writeString(w, s+applyColor(es, kind, SepColor, "]"))
}

func encodeList(node *nbt.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if err := writeString(w, applyColor(es, nbt.ListKind, SepColor, "[")); err != nil {
		return err
	}
	if n == 0 {
		return writeString(w, applyColor(es, nbt.ListKind, SepColor, "]"))
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, nbt.ListKind); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, nbt.ListKind, SepColor, "]"))
}

func encodeCompound(node *nbt.Node, w io.Writer, es *EncState) error {
	n := len(node.Keys)
	if err := writeString(w, applyColor(es, nbt.CompoundKind, SepColor, "{")); err != nil {
		return err
	}
	if n == 0 {
		return writeString(w, applyColor(es, nbt.CompoundKind, SepColor, "}"))
	}
	es.depth++
	for i, key := range node.Keys {
		if err := writeNL(w, es); err != nil {
			return err
		}
		field := applyColor(es, nbt.CompoundKind, KeyColor, quoteKey(key)) +
			applyColor(es, nbt.CompoundKind, SepColor, ":") + " "
		if err := writeString(w, field); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, nbt.CompoundKind); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, nbt.CompoundKind, SepColor, "}"))
}

func writeSep(w io.Writer, es *EncState, kind nbt.Kind) error {
	sep := applyColor(es, kind, SepColor, ",")
	if es.wire {
		sep += " "
	}
	return writeString(w, sep)
}

func quoteKey(k string) string {
	if k == "" {
		return `""`
	}
	for _, c := range k {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '-', c == '.', c == '+':
		default:
			return strconv.Quote(k)
		}
	}
	return k
}
