package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire renders everything on one line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
