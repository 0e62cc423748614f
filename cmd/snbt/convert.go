package main

import (
	"github.com/CuiZhenhang/scriptable-nbt/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readArgs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, docs, cfg.outFormat(format.JSONFormat))
}
