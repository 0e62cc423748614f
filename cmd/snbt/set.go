package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/CuiZhenhang/scriptable-nbt/kpath"
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
	"github.com/CuiZhenhang/scriptable-nbt/scriptable"

	"github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
)

var errRefused = errors.New("value refused")

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: set requires a kpath, a kind, a value and at most one file", cli.ErrUsage)
	}
	path, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if path == nil {
		return fmt.Errorf("%w: set requires a non-empty kpath", cli.ErrUsage)
	}
	k, err := parseKind(args[1])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	v, err := parseValue(k, args[2])
	if err != nil {
		if !cfg.Lenient || !errors.Is(err, errRefused) {
			return err
		}
		theLog.Warn("ignoring value", "kind", k.String(), "value", args[2])
		v = nil
	}
	docs, err := readArgs(cfg.MainConfig, args[3:])
	if err != nil {
		return err
	}
	for i, doc := range docs {
		root := nodeOf(doc)
		if v != nil && !scriptable.SetByPath(root, v, path) {
			return fmt.Errorf("document %d: no list or compound to hold %s", i, path)
		}
		if docs[i], err = wrap(root); err != nil {
			return err
		}
	}
	fmat := cfg.outFormat(cfg.inFormat(firstArg(args[3:])))
	return writeDocs(cfg.MainConfig, cc.Out, docs, fmat)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// parseKind accepts a kind name or number.
func parseKind(s string) (nbt.Kind, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return nbt.Kind(n), nil
	}
	var k nbt.Kind
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return k, nil
}

// parseValue builds a wrapper of kind k from its command line form.
func parseValue(k nbt.Kind, s string) (scriptable.Value, error) {
	if k.IsContainer() {
		c, err := scriptable.ParseJSON([]byte(s))
		if err != nil {
			return nil, err
		}
		if c.Kind() != k {
			return nil, fmt.Errorf("%w: %s given for %s", errRefused, c.Kind(), k)
		}
		return c, nil
	}
	v := scriptable.New(k, nil)
	if v == nil {
		return nil, fmt.Errorf("%w: no wrapper for kind %s", nbt.ErrUnknownKind, k)
	}
	var raw any = s
	if k != nbt.StringKind {
		raw = json.Number(s)
		if b, err := strconv.ParseBool(s); err == nil && k == nbt.ByteKind {
			raw = b
		}
	}
	if !v.Set(raw) {
		return nil, fmt.Errorf("%w: %q is not a %s", errRefused, s, k)
	}
	return v, nil
}
