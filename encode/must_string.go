package encode

import (
	"bytes"
	"strings"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

// MustString renders node on one line. It panics if encoding fails.
func MustString(node *nbt.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append(opts, EncodeWire(true))
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
