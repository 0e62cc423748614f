package main

import (
	"bytes"
	"testing"

	"github.com/CuiZhenhang/scriptable-nbt/kpath"
	"github.com/CuiZhenhang/scriptable-nbt/scriptable"
)

func findDoc(t *testing.T) scriptable.Container {
	t.Helper()
	c, err := scriptable.ParseJSON([]byte(`{
		"name": {"t": 8, "v": "chest"},
		"items": {"t": 9, "v": [
			{"t": 10, "v": {"count": {"t": 1, "v": 3}, "id": {"t": 8, "v": "stone"}}},
			{"t": 0, "v": null},
			{"t": 10, "v": {"count": {"t": 1, "v": 64}}}
		]},
		"gone": {"t": 10, "v": null}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestWalkLeaves(t *testing.T) {
	var paths []string
	err := walkLeaves(findDoc(t), nil, func(p *kpath.KPath, _ scriptable.Value) error {
		paths = append(paths, p.String())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"items[0].count", "items[0].id", "items[2].count", "name"}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestFindExpr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: `kind == "byte" && value > 10`, want: "items[2].count\n"},
		{src: `value == "stone"`, want: "items[0].id\n"},
		{src: `path startsWith "name"`, want: "name\n"},
		{src: `false`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prg, err := compileFind(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			buf := bytes.NewBuffer(nil)
			err = walkLeaves(findDoc(t), nil, func(p *kpath.KPath, v scriptable.Value) error {
				ok, err := matchLeaf(prg, p, v)
				if err != nil || !ok {
					return err
				}
				return printLeaf(buf, p, v, false)
			})
			if err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompileFindRejectsNonBool(t *testing.T) {
	if _, err := compileFind(`path + "x"`); err == nil {
		t.Errorf("expected an error for a non-boolean expression")
	}
}
