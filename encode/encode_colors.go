package encode

import (
	"github.com/CuiZhenhang/scriptable-nbt/nbt"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind nbt.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SuffixColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range nbt.Kinds() {
		able := Colorable{Kind: k, Attr: SuffixColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = ValueColor
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	colors.Map[Colorable{Kind: nbt.CompoundKind, Attr: KeyColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Kind: nbt.CompoundKind, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[Colorable{Kind: nbt.StringKind, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Kind: nbt.FloatKind, Attr: ValueColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: nbt.DoubleKind, Attr: ValueColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: nbt.EndKind, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	return colors
}

func (c *Colors) Color(k nbt.Kind, attr ColorAttr, v string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if !ok {
		return c.Default(v)
	}
	return f(v)
}

func colorDefault(v string, _ ...any) string {
	return v
}
