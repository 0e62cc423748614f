package main

import (
	"fmt"
	"io"
	"os"

	"github.com/CuiZhenhang/scriptable-nbt/encode"
	"github.com/CuiZhenhang/scriptable-nbt/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output snbt on one line'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return 0, false
}

// inFormat picks the format for reading file: -I, then -j/-y, then the
// file extension, then json.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if f, ok := format.FromPath(file); ok && f.Readable() {
		return f
	}
	return format.JSONFormat
}

// outFormat picks the output format: -O, then -j/-y, then def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.optSet("color") {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// optSet reports whether the main command option name was given.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

type ViewConfig struct {
	*MainConfig

	Indent int `cli:"name=indent desc='spaces per indentation level'"`
	View   *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.MainConfig.encOpts(w)
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Lenient bool `cli:"name=lenient desc='ignore values the kind refuses'"`
	Set     *cli.Command
}

type FindConfig struct {
	*MainConfig

	Kind  string `cli:"name=k aliases=kind desc='only consider scalars of this kind'"`
	Value bool   `cli:"name=value desc='print the value next to each path'"`
	Find  *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}
