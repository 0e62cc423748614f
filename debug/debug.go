package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Materialize bool
	Path        bool
}

var d *debug

func init() {
	d = &debug{}
	d.Materialize = boolEnv("SNBT_DEBUG_MATERIALIZE")
	d.Path = boolEnv("SNBT_DEBUG_PATH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Materialize reports whether container materialization is traced.
func Materialize() bool {
	return d.Materialize
}

// Path reports whether failed path navigation is traced.
func Path() bool {
	return d.Path
}
