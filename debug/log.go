package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/CuiZhenhang/scriptable-nbt/encode"
	"github.com/CuiZhenhang/scriptable-nbt/nbt"

	"github.com/goccy/go-json"
)

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *nbt.Node:
			args[i] = encode.MustString(x)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
