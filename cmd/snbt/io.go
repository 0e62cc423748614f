package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/CuiZhenhang/scriptable-nbt/encode"
	"github.com/CuiZhenhang/scriptable-nbt/format"
	"github.com/CuiZhenhang/scriptable-nbt/nbt"
	"github.com/CuiZhenhang/scriptable-nbt/scriptable"

	"github.com/goccy/go-yaml"
)

var docSep = []byte("\n---\n")

// readArgs reads the documents of every file in args, or of stdin when
// args is empty. A file named "-" is stdin.
func readArgs(cfg *MainConfig, args []string) ([]scriptable.Container, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var res []scriptable.Container
	for _, arg := range args {
		docs, err := readFile(cfg, arg)
		if err != nil {
			return nil, err
		}
		res = append(res, docs...)
	}
	return res, nil
}

func readFile(cfg *MainConfig, file string) ([]scriptable.Container, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	fmat := cfg.inFormat(file)
	theLog.Debug("reading", "file", file, "format", fmat.String(), "bytes", len(in))
	docs, err := decodeDocs(in, fmat)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return docs, nil
}

func decodeDocs(in []byte, fmat format.Format) ([]scriptable.Container, error) {
	var res []scriptable.Container
	for i, doc := range bytes.Split(in, docSep) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		var (
			c   scriptable.Container
			err error
		)
		switch fmat {
		case format.YAMLFormat:
			c, err = scriptable.ParseYAML(doc)
		case format.JSONFormat:
			c, err = scriptable.ParseJSON(doc)
		default:
			return nil, fmt.Errorf("cannot decode %s", fmat)
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, c)
	}
	return res, nil
}

// writeDocs writes docs in fmat, separated by "---" lines.
func writeDocs(cfg *MainConfig, w io.Writer, docs []scriptable.Container, fmat format.Format, opts ...encode.EncodeOption) error {
	for i, doc := range docs {
		if i > 0 {
			if _, err := w.Write(docSep[1:]); err != nil {
				return err
			}
		}
		if err := writeValue(cfg, w, doc, fmat, opts...); err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
	}
	return nil
}

// writeValue writes v on its own. Containers are written as documents;
// scalars as a single {t, v} entry, or as snbt text.
func writeValue(cfg *MainConfig, w io.Writer, v scriptable.Value, fmat format.Format, opts ...encode.EncodeOption) error {
	if fmat == format.SNBTFormat {
		if len(opts) == 0 {
			opts = cfg.encOpts(w)
		}
		return encode.Encode(nodeOf(v), w, opts...)
	}
	var (
		d   []byte
		err error
	)
	if c, ok := v.(scriptable.Container); ok {
		d, err = scriptable.ToJSON(c)
	} else {
		d, err = scriptable.MarshalEntry(v)
	}
	if err != nil {
		return err
	}
	if fmat == format.YAMLFormat {
		d, err = yaml.JSONToYAML(d)
		if err != nil {
			return err
		}
	} else {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// nodeOf returns v as a tag tree. Absent containers become empty ones.
func nodeOf(v scriptable.Value) *nbt.Node {
	n := scriptable.ToNode(v)
	if n != nil {
		return n
	}
	switch v.Kind() {
	case nbt.ListKind:
		return nbt.NewList()
	case nbt.CompoundKind:
		return nbt.NewCompound()
	}
	return nil
}

// wrap returns n as a borrowed container.
func wrap(n *nbt.Node) (scriptable.Container, error) {
	switch n.Kind {
	case nbt.ListKind:
		return scriptable.NewList(n), nil
	case nbt.CompoundKind:
		return scriptable.NewCompound(n), nil
	}
	return nil, fmt.Errorf("%w: %s", scriptable.ErrNotContainer, n.Kind)
}
