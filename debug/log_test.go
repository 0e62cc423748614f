package debug

import (
	"bytes"
	"testing"

	"github.com/CuiZhenhang/scriptable-nbt/nbt"
)

func TestLogfRendersNodes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	Logf("got %v at %d\n", nbt.FromSlice([]*nbt.Node{nbt.FromShort(3)}), 2)
	if got, want := buf.String(), "got [3s] at 2\n"; got != want {
		t.Errorf("Logf() wrote %q, want %q", got, want)
	}
}
