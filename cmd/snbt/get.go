package main

import (
	"fmt"

	"github.com/CuiZhenhang/scriptable-nbt/format"
	"github.com/CuiZhenhang/scriptable-nbt/kpath"
	"github.com/CuiZhenhang/scriptable-nbt/scriptable"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a kpath", cli.ErrUsage)
	}
	path, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs, err := readArgs(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	fmat := cfg.outFormat(format.JSONFormat)
	for _, doc := range docs {
		root := nodeOf(doc)
		var v scriptable.Value = doc
		if path != nil {
			v = scriptable.GetByPath(root, path)
		}
		if v == nil {
			// nothing there, and nothing to complain about
			theLog.Debug("no value", "path", path.String())
			continue
		}
		if err := writeValue(cfg.MainConfig, cc.Out, v, fmat); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
