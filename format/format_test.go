package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "yml", want: YAMLFormat},
		{in: "snbt", want: SNBTFormat},
		{in: "toml", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("%s round tripped to %s", f, back)
		}
	}
	if _, err := Format(42).MarshalText(); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]struct {
		want Format
		ok   bool
	}{
		"level.json":     {want: JSONFormat, ok: true},
		"a/b/player.YML": {want: YAMLFormat, ok: true},
		"dump.snbt":      {want: SNBTFormat, ok: true},
		"noext":          {},
		"x.dat":          {},
	}
	for path, tt := range tests {
		got, ok := FromPath(path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromPath(%q) = %s, %v", path, got, ok)
		}
	}
	if SNBTFormat.Readable() || !YAMLFormat.Readable() {
		t.Errorf("Readable mismatch")
	}
}
