// Package format names the document formats read and written by snbt.
//
// JSON and YAML carry the {t, v} entry form of
// github.com/CuiZhenhang/scriptable-nbt/scriptable. SNBT is the text
// rendering of github.com/CuiZhenhang/scriptable-nbt/encode and is
// output only.
package format
