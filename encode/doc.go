// Package encode renders nbt trees as human readable text.
//
// # Usage
//
//	node := nbt.FromKeyVals([]nbt.KeyVal{
//	    {Key: "burn", Val: nbt.FromShort(200)},
//	    {Key: "name", Val: nbt.FromString("coal")},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// One line, with colors
//	s := encode.MustString(node, encode.EncodeColors(encode.NewColors()))
//
// The output is for people. It is not parsed back by this module.
//
// # Related Packages
//
//   - github.com/CuiZhenhang/scriptable-nbt/nbt - tag tree
package encode
