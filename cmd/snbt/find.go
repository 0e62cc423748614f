package main

import (
	"fmt"
	"io"

	"github.com/CuiZhenhang/scriptable-nbt/kpath"
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
	"github.com/CuiZhenhang/scriptable-nbt/scriptable"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	var only nbt.Kind
	if cfg.Kind != "" {
		if only, err = parseKind(cfg.Kind); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	prg, err := compileFind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs, err := readArgs(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	for _, doc := range docs {
		err := walkLeaves(doc, nil, func(p *kpath.KPath, v scriptable.Value) error {
			if only != nbt.EndKind && v.Kind() != only {
				return nil
			}
			ok, err := matchLeaf(prg, p, v)
			if err != nil || !ok {
				return err
			}
			return printLeaf(cc.Out, p, v, cfg.Value)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// leaf is the environment of a find expression.
type leaf struct {
	Path  string `expr:"path"`
	Kind  string `expr:"kind"`
	Value any    `expr:"value"`
}

func leafEnv(p *kpath.KPath, v scriptable.Value) leaf {
	return leaf{
		Path:  p.String(),
		Kind:  v.Kind().String(),
		Value: v.Any(),
	}
}

func compileFind(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(leaf{}), expr.AsBool())
}

func matchLeaf(prg *vm.Program, p *kpath.KPath, v scriptable.Value) (bool, error) {
	res, err := expr.Run(prg, leafEnv(p, v))
	if err != nil {
		return false, fmt.Errorf("error evaluating at %s: %w", p, err)
	}
	ok, _ := res.(bool)
	return ok, nil
}

func printLeaf(w io.Writer, p *kpath.KPath, v scriptable.Value, withValue bool) error {
	if !withValue {
		_, err := fmt.Fprintln(w, p)
		return err
	}
	d, err := scriptable.MarshalEntry(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", p, d)
	return err
}

// walkLeaves calls fn for each present scalar below c, in key or index
// order. It reads children one at a time, so borrowed containers stay
// borrowed.
func walkLeaves(c scriptable.Container, at *kpath.KPath, fn func(*kpath.KPath, scriptable.Value) error) error {
	visit := func(p *kpath.KPath, v scriptable.Value) error {
		switch x := v.(type) {
		case nil:
			return nil
		case scriptable.Container:
			return walkLeaves(x, p, fn)
		}
		if v.Any() == nil {
			return nil
		}
		return fn(p, v)
	}
	switch x := c.(type) {
	case *scriptable.List:
		for i := 0; i < x.Len(); i++ {
			if err := visit(at.Append(kpath.Index(i)), x.Get(i)); err != nil {
				return err
			}
		}
	case *scriptable.Compound:
		for _, key := range x.Keys() {
			if err := visit(at.Append(kpath.Field(key)), x.Get(key)); err != nil {
				return err
			}
		}
	}
	return nil
}
